/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package constants holds names shared by the portal's system packages.
package constants

// Logging.
const (
	LogLevelEnvironmentVariable  = "LOG_LEVEL"
	DefaultLogLevel              = "info"
	LogFormatEnvironmentVariable = "LOG_FORMAT"
	DefaultLogFormat             = "console"
)

// HTTP header names.
const (
	AcceptHeaderName        = "Accept"
	ContentTypeHeaderName   = "Content-Type"
	// CorrelationIDHeaderName ties a portal request to the identity server calls it triggers.
	CorrelationIDHeaderName = "X-Correlation-ID"
)

// Content types produced or consumed by the portal.
const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)
