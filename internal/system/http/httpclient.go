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

// Package http provides the client used for calls from the portal to backend services.
package http

import (
	"net/http"
	"time"
)

const (
	defaultTimeout         = 30 * time.Second
	maxIdleConnsPerBackend = 16
	userAgent              = "thunder-portal"
)

// HTTPClientInterface is the subset of *http.Client the portal services depend on.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient sends requests to backend services over a pooled transport.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns a client with the default timeout.
func NewHTTPClient() HTTPClientInterface {
	return NewHTTPClientWithTimeout(defaultTimeout)
}

// NewHTTPClientWithTimeout returns a client bounding each call by timeout.
// A non positive timeout falls back to the default.
func NewHTTPClientWithTimeout(timeout time.Duration) HTTPClientInterface {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdleConnsPerBackend

	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// NewHTTPClientWithConfig wraps an already configured client.
func NewHTTPClientWithConfig(client *http.Client) HTTPClientInterface {
	return &HTTPClient{client: client}
}

// Do sends the request, identifying the portal unless the caller set a User-Agent.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return c.client.Do(req)
}
