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

// Package main is the entry point for starting the user portal server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/asgardeo/thunder-portal/internal/managers"
	"github.com/asgardeo/thunder-portal/internal/system/cert"
	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/log"
)

const shutdownGracePeriod = 15 * time.Second

func main() {
	logger := log.GetLogger()
	defer log.Sync()

	portalHome := resolvePortalHome(logger)
	cfg := loadConfigurations(logger, portalHome)

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, cfg, portalHome)
	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}
	defer serviceManager.Close()

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port),
		Handler:           log.AccessLogHandler(logger, mux),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      40 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ln := listen(logger, cfg, server.Addr, portalHome)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down the user portal server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", log.Error(err))
		}
	}
}

// resolvePortalHome returns the -portalHome flag value or the working directory.
func resolvePortalHome(logger *log.Logger) string {
	homeFlag := flag.String("portalHome", "", "Path to the user portal home directory")
	flag.Parse()

	if *homeFlag != "" {
		logger.Info("Using portalHome from command line argument", log.String("portalHome", *homeFlag))
		return *homeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// loadConfigurations reads repository/conf/deployment.yaml and initializes the portal runtime.
func loadConfigurations(logger *log.Logger, portalHome string) *config.Config {
	cfg, err := config.LoadConfig(path.Join(portalHome, "repository/conf/deployment.yaml"))
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}
	if err := config.InitializePortalRuntime(portalHome, cfg); err != nil {
		logger.Fatal("Failed to initialize portal runtime", log.Error(err))
	}
	return cfg
}

// listen opens a plain TCP listener when http_only is set and a TLS listener otherwise.
func listen(logger *log.Logger, cfg *config.Config, addr, portalHome string) net.Listener {
	if cfg.Server.HTTPOnly {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Fatal("Failed to start HTTP listener", log.Error(err))
		}
		logger.Info("User portal server started (HTTP)...", log.String("address", addr))
		return ln
	}

	tlsConfig, err := cert.NewSystemCertificateService().GetTLSConfig(cfg, portalHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}
	ln, err := tls.Listen("tcp", addr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}
	logger.Info("User portal server started (HTTPS)...", log.String("address", addr))
	return ln
}
