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

import (
	"net/http"

	"github.com/asgardeo/thunder-portal/internal/selfsignup"
	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/i18n"
	"github.com/asgardeo/thunder-portal/internal/system/middleware"
	"github.com/asgardeo/thunder-portal/internal/system/utils"
)

// Initialize creates the confirmation controller and registers the confirmation page routes.
// The returned rate limiter guards resend requests and must be stopped by the caller on shutdown.
func Initialize(mux *http.ServeMux, cfg *config.Config, selfSignUpSvc selfsignup.SelfSignUpServiceInterface,
	bundle *i18n.Bundle) (ConfirmationControllerInterface, *middleware.RateLimiter, error) {
	trustedProxies, err := utils.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, nil, err
	}

	controller := NewConfirmationController(selfSignUpSvc, ControllerConfig{
		NotificationInternallyManaged: cfg.Portal.IsNotificationInternallyManaged(),
		LoginRedirectURI:              cfg.Portal.LoginRedirectURI,
	})
	handler := newConfirmationHandler(controller, bundle, cfg.Portal.ContextPath)
	resendLimiter := middleware.NewRateLimiter(cfg.Portal.ResendRateLimit.RequestsPerMinute, trustedProxies)
	registerRoutes(mux, cfg.Portal.ContextPath, handler, resendLimiter)
	return controller, resendLimiter, nil
}

func registerRoutes(mux *http.ServeMux, contextPath string, handler *confirmationHandler,
	resendLimiter *middleware.RateLimiter) {
	pagePath := contextPath + confirmationPath
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Accept",
		AllowCredentials: true,
		MaxAgeSeconds:    600,
	}

	mux.HandleFunc(middleware.WithCORS("GET "+pagePath,
		handler.HandleConfirmationRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST "+pagePath,
		middleware.WithRateLimit(handler.HandleResendRequest, resendLimiter), opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS "+pagePath,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
