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

package selfsignup

const loggerComponentName = "SelfSignUpService"

// UsernameClaimURI is the claim holding the username of a user.
const UsernameClaimURI = "http://wso2.org/claims/username"

// PropertyKeyCallback is the property carrying the callback URL embedded in the confirmation email.
const PropertyKeyCallback = "callback"

// DefaultUserDomain is the user store domain used when none is given.
const DefaultUserDomain = "PRIMARY"

const (
	validateCodePath = "/api/identity/user/v1.0/validate-code"
	resendCodePath   = "/api/identity/user/v1.0/resend-code"
	scimUsersPath    = "/scim2/Users/"

	contentTypeSCIMJSON = "application/scim+json"
)
