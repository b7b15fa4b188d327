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

// property is a key value pair forwarded to the identity server.
type property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// validateCodeRequest is the body of a confirmation code validation call.
type validateCodeRequest struct {
	Code       string     `json:"code"`
	Properties []property `json:"properties"`
}

// resendUser identifies the user to whom a confirmation code is resent.
type resendUser struct {
	Username string `json:"username"`
	Realm    string `json:"realm"`
}

// resendCodeRequest is the body of a confirmation code resend call.
type resendCodeRequest struct {
	User       resendUser `json:"user"`
	Properties []property `json:"properties"`
}

// errorResponse is the error body returned by the identity server.
type errorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// scimUser holds the attributes of a SCIM user needed to resend a confirmation code.
type scimUser struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
}
