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

// Package config provides structures and functions for loading and managing portal configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asgardeo/thunder-portal/internal/system/log"
	"github.com/asgardeo/thunder-portal/internal/system/utils"

	yaml "gopkg.in/yaml.v3"
)

const (
	defaultLoginRedirectURI        = "/login"
	defaultIdentityServerTimeout   = 30
	defaultResendRequestsPerMinute = 5
	defaultNotificationManaged     = true
)

// ServerConfig holds the server configuration details.
// TrustedProxies lists the addresses or CIDR ranges whose forwarding headers identify the client.
type ServerConfig struct {
	Hostname       string   `yaml:"hostname"`
	Port           int      `yaml:"port"`
	HTTPOnly       bool     `yaml:"http_only"`
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// IdentityServerConfig holds the connection details of the identity server that owns self sign-up.
type IdentityServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RateLimitConfig holds the rate limit applied to confirmation resend requests.
// Zero or an absent value selects the default, a negative value disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// PortalConfig holds the configuration of the self sign-up confirmation pages.
// NotificationInternallyManaged is a pointer so that an absent key keeps the default.
type PortalConfig struct {
	ContextPath                   string          `yaml:"context_path"`
	LoginRedirectURI              string          `yaml:"login_redirect_uri"`
	NotificationInternallyManaged *bool           `yaml:"notification_internally_managed"`
	I18nFile                      string          `yaml:"i18n_file"`
	ResendRateLimit               RateLimitConfig `yaml:"resend_rate_limit"`
}

// IsNotificationInternallyManaged reports whether confirmation notifications are sent by the identity server.
func (p PortalConfig) IsNotificationInternallyManaged() bool {
	if p.NotificationInternallyManaged == nil {
		return defaultNotificationManaged
	}
	return *p.NotificationInternallyManaged
}

// Config holds the complete configuration details of the portal server.
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Security       SecurityConfig       `yaml:"security"`
	CORS           CORSConfig           `yaml:"cors"`
	IdentityServer IdentityServerConfig `yaml:"identity_server"`
	Portal         PortalConfig         `yaml:"portal"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills optional values that are not present in the deployment file.
func applyDefaults(cfg *Config) {
	cfg.Portal.ContextPath = strings.TrimSuffix(cfg.Portal.ContextPath, "/")
	if cfg.Portal.LoginRedirectURI == "" {
		cfg.Portal.LoginRedirectURI = defaultLoginRedirectURI
	}
	if cfg.Portal.ResendRateLimit.RequestsPerMinute == 0 {
		cfg.Portal.ResendRateLimit.RequestsPerMinute = defaultResendRequestsPerMinute
	}
	if cfg.IdentityServer.TimeoutSeconds == 0 {
		cfg.IdentityServer.TimeoutSeconds = defaultIdentityServerTimeout
	}
	cfg.IdentityServer.BaseURL = strings.TrimSuffix(cfg.IdentityServer.BaseURL, "/")
}

func validate(cfg *Config) error {
	if cfg.IdentityServer.BaseURL == "" {
		return errors.New("identity_server.base_url is required")
	}
	if cfg.Portal.ContextPath != "" && !strings.HasPrefix(cfg.Portal.ContextPath, "/") {
		return errors.New("portal.context_path must start with '/'")
	}
	if _, err := utils.ParseTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}
	return nil
}
