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

// Package managers provides functionality for managing and registering portal services.
package managers

import (
	"errors"
	"net/http"

	"github.com/asgardeo/thunder-portal/internal/confirmation"
	"github.com/asgardeo/thunder-portal/internal/selfsignup"
	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/i18n"
	"github.com/asgardeo/thunder-portal/internal/system/log"
	"github.com/asgardeo/thunder-portal/internal/system/middleware"
)

// ServiceManagerInterface defines the registration of the portal services.
type ServiceManagerInterface interface {
	RegisterServices() error
	Close()
}

// ServiceManager registers the portal services with a multiplexer.
type ServiceManager struct {
	mux           *http.ServeMux
	config        *config.Config
	portalHome    string
	resendLimiter *middleware.RateLimiter
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, cfg *config.Config, portalHome string) ServiceManagerInterface {
	return &ServiceManager{
		mux:        mux,
		config:     cfg,
		portalHome: portalHome,
	}
}

// RegisterServices registers the self sign-up confirmation page and its dependencies.
func (sm *ServiceManager) RegisterServices() error {
	if sm.mux == nil || sm.config == nil {
		return errors.New("multiplexer and configuration are required to register services")
	}

	bundle, err := sm.loadMessageBundle()
	if err != nil {
		return err
	}

	selfSignUpService := selfsignup.NewSelfSignUpService(sm.config.IdentityServer, nil)
	_, resendLimiter, err := confirmation.Initialize(sm.mux, sm.config, selfSignUpService, bundle)
	if err != nil {
		return err
	}
	sm.resendLimiter = resendLimiter

	return nil
}

// Close releases the background resources held by the registered services.
func (sm *ServiceManager) Close() {
	if sm.resendLimiter != nil {
		sm.resendLimiter.Stop()
	}
}

// loadMessageBundle loads the configured message bundle, falling back to the built-in messages.
func (sm *ServiceManager) loadMessageBundle() (*i18n.Bundle, error) {
	if sm.config.Portal.I18nFile == "" {
		return i18n.DefaultBundle(), nil
	}

	bundlePath := config.ResolvePath(sm.portalHome, sm.config.Portal.I18nFile)
	log.GetLogger().Debug("Loading message bundle", log.String("path", bundlePath))
	return i18n.LoadBundle(bundlePath)
}
