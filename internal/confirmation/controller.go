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

// Package confirmation implements the self sign-up confirmation page of the portal.
package confirmation

import (
	"context"

	"github.com/asgardeo/thunder-portal/internal/selfsignup"
	"github.com/asgardeo/thunder-portal/internal/system/error/serviceerror"
	"github.com/asgardeo/thunder-portal/internal/system/log"
)

// ControllerConfig holds the deployment settings the confirmation controller depends on.
type ControllerConfig struct {
	// NotificationInternallyManaged is true when the identity server sends confirmation emails itself.
	NotificationInternallyManaged bool
	// LoginRedirectURI is appended to the portal context path to build the default callback URL.
	LoginRedirectURI string
}

// ConfirmationControllerInterface defines the decisions behind the confirmation page.
type ConfirmationControllerInterface interface {
	HandleConfirmation(ctx context.Context, request ConfirmationRequest) ViewModel
	HandleResend(ctx context.Context, request ResendRequest) ViewModel
}

// confirmationController is the default implementation of ConfirmationControllerInterface.
type confirmationController struct {
	selfSignUpService selfsignup.SelfSignUpServiceInterface
	config            ControllerConfig
}

// NewConfirmationController creates a new confirmation controller.
func NewConfirmationController(selfSignUpSvc selfsignup.SelfSignUpServiceInterface,
	cfg ControllerConfig) ConfirmationControllerInterface {
	return &confirmationController{
		selfSignUpService: selfSignUpSvc,
		config:            cfg,
	}
}

// HandleConfirmation validates the confirmation code of the request and decides the page state.
func (c *confirmationController) HandleConfirmation(ctx context.Context, request ConfirmationRequest) ViewModel {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.ConfirmationCode == "" {
		logger.Debug("Confirmation code is missing in the request")
		return ViewModel{
			ErrorMessage:     MessageKeyUserConfirmationError,
			ErrorDescription: MessageKeyConfirmationCodeMissingDesc,
		}
	}

	svcErr := c.selfSignUpService.ConfirmSelfSignUp(ctx, request.ConfirmationCode)
	if svcErr == nil {
		return ViewModel{IsConfirmationCodeValid: true}
	}

	switch svcErr.Code {
	case selfsignup.ErrorInvalidConfirmationCode.Code, selfsignup.ErrorExpiredConfirmationCode.Code:
		if request.UserID == "" {
			return ViewModel{
				ErrorMessage:     MessageKeyUserConfirmationError,
				ErrorDescription: MessageKeyConfirmationInvalidDescription,
			}
		}
		return c.buildReconfirmationView(request, svcErr.Code)
	default:
		logConfirmationError(logger, svcErr)
		return ViewModel{
			ErrorMessage:     MessageKeyUserConfirmationError,
			ErrorDescription: MessageKeyUserConfirmationErrorDescription,
		}
	}
}

// buildReconfirmationView builds the view that offers the user a new confirmation code.
func (c *confirmationController) buildReconfirmationView(request ConfirmationRequest, code string) ViewModel {
	view := ViewModel{
		ID:                       request.UserID,
		Callback:                 request.Callback,
		IsReconfirmationRequired: true,
	}

	if code == selfsignup.ErrorInvalidConfirmationCode.Code {
		view.Message = MessageKeyConfirmationInvalid
		view.Description = MessageKeyConfirmationInvalidDescription
		return view
	}

	view.Resend = true
	view.Message = MessageKeyConfirmationExpired
	if c.config.NotificationInternallyManaged {
		view.Description = MessageKeyConfirmationExpiredResendDesc
	} else {
		view.Description = MessageKeyConfirmationExpiredDescription
	}
	return view
}

// HandleResend resends the confirmation code to the user identified by the request.
func (c *confirmationController) HandleResend(ctx context.Context, request ResendRequest) ViewModel {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	callback := c.resolveCallback(request, logger)

	target := resolveResendTarget(request)
	if target == nil {
		logger.Debug("Cannot send confirmation email. Missing user info.")
		return resendFailedView()
	}

	properties := map[string]string{selfsignup.PropertyKeyCallback: callback}

	var svcErr *serviceerror.ServiceError
	switch t := target.(type) {
	case ResendByID:
		svcErr = c.selfSignUpService.ResendConfirmationByUserID(ctx, t.UserID, properties)
	case ResendByClaims:
		svcErr = c.selfSignUpService.ResendConfirmationByClaims(ctx, t.Claims, t.Domain, properties)
	}
	if svcErr != nil {
		logConfirmationError(logger, svcErr)
		return resendFailedView()
	}

	return ViewModel{
		HasConfirmationCodeSent: true,
		Callback:                callback,
	}
}

// resolveCallback returns the supplied callback or the login page of the portal the request arrived at.
func (c *confirmationController) resolveCallback(request ResendRequest, logger *log.Logger) string {
	if request.Callback != "" {
		return request.Callback
	}

	origin := request.Origin
	callback := origin.Scheme + "://" + origin.Host + origin.ContextPath + c.config.LoginRedirectURI
	logger.Debug("Missing callback URL in the request. Using the default callback.",
		log.String("callback", callback))
	return callback
}

// resolveResendTarget picks the user identification used for a resend, or nil when there is none.
func resolveResendTarget(request ResendRequest) ResendTarget {
	if request.UserID != "" {
		return ResendByID{UserID: request.UserID}
	}
	if request.Username != "" {
		return ResendByClaims{
			Claims: map[string]string{selfsignup.UsernameClaimURI: request.Username},
			Domain: request.Domain,
		}
	}
	return nil
}

func resendFailedView() ViewModel {
	return ViewModel{
		ErrorMessage:     MessageKeyResendFailed,
		ErrorDescription: MessageKeyResendFailedDescription,
	}
}

// logConfirmationError logs server errors at error level and client errors at debug level.
func logConfirmationError(logger *log.Logger, svcErr *serviceerror.ServiceError) {
	if svcErr.Type == serviceerror.ServerErrorType {
		logger.Error("Self sign-up service failed", log.String("code", svcErr.Code),
			log.String("description", svcErr.ErrorDescription))
		return
	}
	logger.Debug("Self sign-up service rejected the request", log.String("code", svcErr.Code),
		log.String("description", svcErr.ErrorDescription))
}
