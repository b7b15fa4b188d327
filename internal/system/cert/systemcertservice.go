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

// Package cert loads the TLS material used by the portal server.
package cert

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/log"
)

// expiryWarningWindow is how long before expiry the server certificate starts being reported.
const expiryWarningWindow = 30 * 24 * time.Hour

// SystemCertificateServiceInterface provides the TLS configuration of the portal server.
type SystemCertificateServiceInterface interface {
	GetTLSConfig(cfg *config.Config, portalHome string) (*tls.Config, error)
}

// SystemCertificateService reads the server certificate configured under security.
type SystemCertificateService struct {
	now func() time.Time
}

// NewSystemCertificateService creates a new instance of SystemCertificateService.
func NewSystemCertificateService() SystemCertificateServiceInterface {
	return &SystemCertificateService{now: time.Now}
}

// GetTLSConfig loads the configured key pair. Relative paths are resolved against the portal home.
// An expired certificate is rejected.
func (c *SystemCertificateService) GetTLSConfig(cfg *config.Config, portalHome string) (*tls.Config, error) {
	certFilePath := config.ResolvePath(portalHome, cfg.Security.CertFile)
	keyFilePath := config.ResolvePath(portalHome, cfg.Security.KeyFile)

	if _, err := os.Stat(certFilePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("certificate file not found at %s", certFilePath)
	}
	if _, err := os.Stat(keyFilePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("key file not found at %s", keyFilePath)
	}

	keyPair, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load the server key pair: %w", err)
	}
	if err := c.checkValidity(keyPair); err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func (c *SystemCertificateService) checkValidity(keyPair tls.Certificate) error {
	leaf := keyPair.Leaf
	if leaf == nil {
		parsed, err := x509.ParseCertificate(keyPair.Certificate[0])
		if err != nil {
			return fmt.Errorf("failed to parse the server certificate: %w", err)
		}
		leaf = parsed
	}

	now := c.now()
	if now.After(leaf.NotAfter) {
		return fmt.Errorf("server certificate expired at %s", leaf.NotAfter.Format(time.RFC3339))
	}
	if leaf.NotAfter.Sub(now) < expiryWarningWindow {
		log.GetLogger().Warn("Server certificate expires soon",
			log.String(log.LoggerKeyComponentName, "SystemCertificateService"),
			log.String("notAfter", leaf.NotAfter.Format(time.RFC3339)))
	}
	return nil
}
