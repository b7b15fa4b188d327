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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testResourceDir = "../../../tests/resources"

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) getFilePath(filename string) string {
	return filepath.Join(testResourceDir, filename)
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	config, err := LoadConfig(suite.getFilePath("deployment.yaml"))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "localhost", config.Server.Hostname)
	assert.Equal(suite.T(), 9443, config.Server.Port)
	assert.True(suite.T(), config.Server.HTTPOnly)

	assert.Equal(suite.T(), "repository/resources/security/server.cert", config.Security.CertFile)
	assert.Equal(suite.T(), []string{"https://localhost:3000"}, config.CORS.AllowedOrigins)

	// Trailing slashes are trimmed.
	assert.Equal(suite.T(), "https://localhost:9443", config.IdentityServer.BaseURL)
	assert.Equal(suite.T(), "admin", config.IdentityServer.Username)
	assert.Equal(suite.T(), 10, config.IdentityServer.TimeoutSeconds)

	assert.Equal(suite.T(), "/user-portal", config.Portal.ContextPath)
	assert.Equal(suite.T(), "/login", config.Portal.LoginRedirectURI)
	assert.False(suite.T(), config.Portal.IsNotificationInternallyManaged())
	assert.Equal(suite.T(), 3, config.Portal.ResendRateLimit.RequestsPerMinute)
}

func (suite *ConfigTestSuite) TestLoadConfigDefaults() {
	config, err := LoadConfig(suite.getFilePath("minimal_deployment.yaml"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "", config.Portal.ContextPath)
	assert.Equal(suite.T(), defaultLoginRedirectURI, config.Portal.LoginRedirectURI)
	assert.True(suite.T(), config.Portal.IsNotificationInternallyManaged())
	assert.Equal(suite.T(), defaultResendRequestsPerMinute, config.Portal.ResendRateLimit.RequestsPerMinute)
	assert.Equal(suite.T(), defaultIdentityServerTimeout, config.IdentityServer.TimeoutSeconds)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingIdentityServer() {
	config, err := LoadConfig(suite.getFilePath("missing_identity_deployment.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "identity_server.base_url")
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(suite.getFilePath("non_existent_config.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	config, err := LoadConfig(suite.getFilePath("invalid_deployment.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}

func (suite *ConfigTestSuite) TestValidateContextPath() {
	cfg := &Config{
		IdentityServer: IdentityServerConfig{BaseURL: "http://idp.local"},
		Portal:         PortalConfig{ContextPath: "user-portal"},
	}

	err := validate(cfg)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "context_path")
}

func (suite *ConfigTestSuite) TestLoadConfigNegativeRateLimitDisablesLimiting() {
	config, err := LoadConfig(suite.getFilePath("ratelimit_disabled_deployment.yaml"))

	suite.Require().NoError(err)
	assert.Equal(suite.T(), -1, config.Portal.ResendRateLimit.RequestsPerMinute)
	assert.Equal(suite.T(), []string{"127.0.0.1", "10.0.0.0/8"}, config.Server.TrustedProxies)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidTrustedProxy() {
	config, err := LoadConfig(suite.getFilePath("invalid_proxy_deployment.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "server.trusted_proxies")
}
