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

const loggerComponentName = "ConfirmationController"

// Request parameter names of the confirmation page.
const (
	queryParamConfirmationCode = "confirmation"
	queryParamUserID           = "id"
	paramCallback              = "callback"
	formParamUserID            = "uid"
	formParamUsername          = "unconfirmed-user"
	formParamDomain            = "unconfirmed-domain"
)

// Message keys rendered by the confirmation page.
const (
	MessageKeyUserConfirmationError            = "user.confirmation.error"
	MessageKeyUserConfirmationErrorDescription = "user.confirmation.error.description"
	MessageKeyConfirmationInvalid              = "confirmation.invalid"
	MessageKeyConfirmationInvalidDescription   = "confirmation.invalid.description"
	MessageKeyConfirmationExpired              = "confirmation.expired"
	MessageKeyConfirmationExpiredDescription   = "confirmation.expired.description"
	MessageKeyConfirmationExpiredResendDesc    = "confirmation.expired.resend.description"
	MessageKeyConfirmationCodeMissingDesc      = "confirmation.code.missing.description"
	MessageKeyResendFailed                     = "failed.confirmation.mail.resend"
	MessageKeyResendFailedDescription          = "resend.failed.description"
)

// confirmationPath is the path of the confirmation page relative to the portal context path.
const confirmationPath = "/signup/confirm"
