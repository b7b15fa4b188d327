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

import "github.com/asgardeo/thunder-portal/internal/system/error/serviceerror"

// Error codes reported by the identity server for confirmation codes.
const (
	// InvalidCodeErrorCode is the identity server error code for an unknown or already used code.
	InvalidCodeErrorCode = "18001"
	// ExpiredCodeErrorCode is the identity server error code for an expired code.
	ExpiredCodeErrorCode = "18002"
)

// Client errors for self sign-up operations.
var (
	// ErrorInvalidConfirmationCode is the error returned when the confirmation code is invalid.
	ErrorInvalidConfirmationCode = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             InvalidCodeErrorCode,
		Error:            "Invalid confirmation code",
		ErrorDescription: "The provided confirmation code is invalid or has already been used",
	}
	// ErrorExpiredConfirmationCode is the error returned when the confirmation code has expired.
	ErrorExpiredConfirmationCode = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             ExpiredCodeErrorCode,
		Error:            "Expired confirmation code",
		ErrorDescription: "The provided confirmation code has expired",
	}
	// ErrorInvalidRequest is the error returned when a required input is missing.
	ErrorInvalidRequest = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SSU-1001",
		Error:            "Invalid request",
		ErrorDescription: "A required input for the self sign-up operation is missing",
	}
	// ErrorUserNotFound is the error returned when the user cannot be found in the identity server.
	ErrorUserNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SSU-1002",
		Error:            "User not found",
		ErrorDescription: "The user could not be found",
	}
	// ErrorUsernameClaimNotFound is the error returned when the username claim is not present.
	ErrorUsernameClaimNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SSU-1003",
		Error:            "Username not found",
		ErrorDescription: "The username claim is required to resend the confirmation code",
	}
	// ErrorClientErrorFromIdentityServer is the error returned when the identity server rejects a request.
	ErrorClientErrorFromIdentityServer = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SSU-1004",
		Error:            "Request rejected",
		ErrorDescription: "The identity server rejected the request",
	}
)

// Server errors for self sign-up operations.
var (
	// ErrorInternalServerError is the error returned when the identity server cannot be reached or fails.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SSU-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
