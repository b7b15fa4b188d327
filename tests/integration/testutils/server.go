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

package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/asgardeo/thunder-portal/internal/managers"
	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/log"
)

// PortalServer is an in-process portal server wired the same way as the server binary.
type PortalServer struct {
	server         *httptest.Server
	serviceManager managers.ServiceManagerInterface
}

// StartPortalServer registers the portal services for the given configuration and starts serving them.
func StartPortalServer(cfg *config.Config, portalHome string) (*PortalServer, error) {
	config.ResetPortalRuntime()
	if err := config.InitializePortalRuntime(portalHome, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize portal runtime: %w", err)
	}

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, cfg, portalHome)
	if err := serviceManager.RegisterServices(); err != nil {
		return nil, fmt.Errorf("failed to register portal services: %w", err)
	}

	return &PortalServer{
		server:         httptest.NewServer(log.AccessLogHandler(log.GetLogger(), mux)),
		serviceManager: serviceManager,
	}, nil
}

// GetURL returns the base URL of the portal server.
func (p *PortalServer) GetURL() string {
	return p.server.URL
}

// Stop stops the portal server, releases the portal services and resets the runtime configuration.
func (p *PortalServer) Stop() {
	p.server.Close()
	p.serviceManager.Close()
	config.ResetPortalRuntime()
}
