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

package confirmation

// ConfirmationRequest holds the query parameters of a confirmation page visit.
type ConfirmationRequest struct {
	ConfirmationCode string
	UserID           string
	Callback         string
}

// RequestOrigin describes where a request was received, used to build a default callback URL.
type RequestOrigin struct {
	Scheme      string
	Host        string
	ContextPath string
}

// ResendRequest holds the form parameters of a confirmation resend submission.
type ResendRequest struct {
	UserID   string
	Username string
	Domain   string
	Callback string
	Origin   RequestOrigin
}

// ResendTarget identifies the user whose confirmation code is resent.
// It is either a ResendByID or a ResendByClaims.
type ResendTarget interface {
	isResendTarget()
}

// ResendByID targets a user by the unique user id.
type ResendByID struct {
	UserID string
}

// ResendByClaims targets a user through identity claims within a user store domain.
type ResendByClaims struct {
	Claims map[string]string
	Domain string
}

func (ResendByID) isResendTarget()     {}
func (ResendByClaims) isResendTarget() {}

// ViewModel is the data handed to the rendering layer. Empty fields are omitted so that the
// presence of a field selects the page state to render.
type ViewModel struct {
	ErrorMessage             string `json:"errorMessage,omitempty"`
	ErrorDescription         string `json:"errorDescription,omitempty"`
	Message                  string `json:"message,omitempty"`
	Description              string `json:"description,omitempty"`
	IsConfirmationCodeValid  bool   `json:"isConfirmationCodeValid,omitempty"`
	HasConfirmationCodeSent  bool   `json:"hasConfirmationCodeSent,omitempty"`
	IsReconfirmationRequired bool   `json:"isReconfirmationRequired,omitempty"`
	Resend                   bool   `json:"resend,omitempty"`
	Callback                 string `json:"callback,omitempty"`
	ID                       string `json:"id,omitempty"`
}
