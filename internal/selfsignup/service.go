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

// Package selfsignup provides the client of the identity server self sign-up operations.
package selfsignup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/constants"
	"github.com/asgardeo/thunder-portal/internal/system/error/serviceerror"
	syshttp "github.com/asgardeo/thunder-portal/internal/system/http"
	"github.com/asgardeo/thunder-portal/internal/system/log"
	sysutils "github.com/asgardeo/thunder-portal/internal/system/utils"
)

// maxErrorBodySize bounds how much of an error response is read from the identity server.
const maxErrorBodySize = 64 * 1024

// SelfSignUpServiceInterface defines the self sign-up operations of the identity server.
type SelfSignUpServiceInterface interface {
	ConfirmSelfSignUp(ctx context.Context, code string) *serviceerror.ServiceError
	ResendConfirmationByUserID(ctx context.Context, userID string,
		properties map[string]string) *serviceerror.ServiceError
	ResendConfirmationByClaims(ctx context.Context, claims map[string]string, domain string,
		properties map[string]string) *serviceerror.ServiceError
}

// selfSignUpService is the default implementation of SelfSignUpServiceInterface.
type selfSignUpService struct {
	httpClient syshttp.HTTPClientInterface
	baseURL    string
	username   string
	password   string
}

// NewSelfSignUpService creates a new self sign-up client for the configured identity server.
// When httpClient is nil a client honouring the configured timeout is created.
func NewSelfSignUpService(cfg config.IdentityServerConfig,
	httpClient syshttp.HTTPClientInterface) SelfSignUpServiceInterface {
	if httpClient == nil {
		httpClient = syshttp.NewHTTPClientWithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}
	return &selfSignUpService{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
	}
}

// ConfirmSelfSignUp validates the given confirmation code and confirms the pending registration.
func (s *selfSignUpService) ConfirmSelfSignUp(ctx context.Context, code string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(code) == "" {
		return serviceerror.CustomServiceError(ErrorInvalidRequest, "Confirmation code is required")
	}
	logger.Debug("Confirming self sign-up", log.String("code", log.MaskString(code)))

	body := validateCodeRequest{
		Code:       code,
		Properties: []property{},
	}
	svcErr := s.post(ctx, validateCodePath, body, logger)
	if svcErr != nil {
		if svcErr.Code == ErrorInvalidConfirmationCode.Code {
			logger.Debug("Self sign-up confirmation code is invalid")
		} else if svcErr.Code == ErrorExpiredConfirmationCode.Code {
			logger.Debug("Self sign-up confirmation code is expired")
		}
		return svcErr
	}

	logger.Debug("Self sign-up confirmed successfully")
	return nil
}

// ResendConfirmationByUserID resolves the user with the given id and resends the confirmation code.
func (s *selfSignUpService) ResendConfirmationByUserID(ctx context.Context, userID string,
	properties map[string]string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return serviceerror.CustomServiceError(ErrorInvalidRequest, "User ID is required")
	}

	user, svcErr := s.getUser(ctx, userID, logger)
	if svcErr != nil {
		return svcErr
	}

	domain, username := splitDomainQualifiedName(user.UserName)
	if username == "" {
		logger.Error("Username cannot be found for user", log.String("userId", userID))
		return &ErrorUsernameClaimNotFound
	}

	return s.resend(ctx, username, domain, properties, logger)
}

// ResendConfirmationByClaims resends the confirmation code to the user identified by the username claim.
func (s *selfSignUpService) ResendConfirmationByClaims(ctx context.Context, claims map[string]string,
	domain string, properties map[string]string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	username := strings.TrimSpace(claims[UsernameClaimURI])
	if username == "" {
		return &ErrorUsernameClaimNotFound
	}
	if domain == "" {
		domain = DefaultUserDomain
	}

	return s.resend(ctx, username, domain, properties, logger)
}

// resend issues the resend-code call for the given user.
func (s *selfSignUpService) resend(ctx context.Context, username, domain string, properties map[string]string,
	logger *log.Logger) *serviceerror.ServiceError {
	logger.Debug("Resending confirmation code", log.String("username", log.MaskString(username)),
		log.String("domain", domain))

	body := resendCodeRequest{
		User: resendUser{
			Username: username,
			Realm:    domain,
		},
		Properties: toProperties(properties),
	}
	if svcErr := s.post(ctx, resendCodePath, body, logger); svcErr != nil {
		return svcErr
	}

	logger.Debug("Confirmation code resent successfully")
	return nil
}

// getUser fetches the SCIM representation of the user with the given id.
func (s *selfSignUpService) getUser(ctx context.Context, userID string,
	logger *log.Logger) (*scimUser, *serviceerror.ServiceError) {
	endpoint := s.baseURL + scimUsersPath + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Error("Failed to create user lookup request", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	req.Header.Set(constants.AcceptHeaderName, contentTypeSCIMJSON)

	resp, svcErr := s.send(req, logger)
	if svcErr != nil {
		return nil, svcErr
	}
	defer closeBody(resp, logger)

	if resp.StatusCode == http.StatusNotFound {
		logger.Debug("User not found for ID", log.String("userId", userID))
		return nil, &ErrorUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, s.handleErrorResponse(resp, logger)
	}

	var user scimUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		logger.Error("Failed to decode user lookup response", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return &user, nil
}

// post sends the given body as JSON to the identity server and maps a non 2xx answer to a service error.
func (s *selfSignUpService) post(ctx context.Context, path string, body interface{},
	logger *log.Logger) *serviceerror.ServiceError {
	payload, err := json.Marshal(body)
	if err != nil {
		logger.Error("Failed to marshal request body", log.Error(err))
		return &ErrorInternalServerError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		logger.Error("Failed to create request", log.String("path", path), log.Error(err))
		return &ErrorInternalServerError
	}
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)

	resp, svcErr := s.send(req, logger)
	if svcErr != nil {
		return svcErr
	}
	defer closeBody(resp, logger)

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	return s.handleErrorResponse(resp, logger)
}

// send authenticates and executes the request against the identity server.
func (s *selfSignUpService) send(req *http.Request, logger *log.Logger) (*http.Response,
	*serviceerror.ServiceError) {
	if s.username != "" {
		req.SetBasicAuth(s.username, s.password)
	}
	correlationID := log.GetCorrelationID(req.Context())
	if correlationID == "" {
		correlationID = sysutils.GenerateUUID()
	}
	req.Header.Set(constants.CorrelationIDHeaderName, correlationID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to reach the identity server", log.String(log.LoggerKeyCorrelationID, correlationID),
			log.String("path", req.URL.Path), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return resp, nil
}

// handleErrorResponse maps an error answer of the identity server to a service error.
func (s *selfSignUpService) handleErrorResponse(resp *http.Response,
	logger *log.Logger) *serviceerror.ServiceError {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		logger.Error("Failed to read error response", log.Int("status", resp.StatusCode), log.Error(err))
		return &ErrorInternalServerError
	}

	var errResp errorResponse
	if len(data) > 0 {
		if err := json.Unmarshal(data, &errResp); err != nil {
			logger.Debug("Identity server returned a non JSON error body", log.Int("status", resp.StatusCode))
		}
	}

	switch errResp.Code {
	case InvalidCodeErrorCode:
		return &ErrorInvalidConfirmationCode
	case ExpiredCodeErrorCode:
		return &ErrorExpiredConfirmationCode
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode < http.StatusBadRequest {
		logger.Error("Identity server returned an unexpected response", log.Int("status", resp.StatusCode),
			log.String("errorCode", errResp.Code), log.String("message", errResp.Message))
		return &ErrorInternalServerError
	}

	description := errResp.Description
	if description == "" {
		description = errResp.Message
	}
	if description == "" {
		description = fmt.Sprintf("Identity server responded with status %d", resp.StatusCode)
	}
	logger.Debug("Identity server rejected the request", log.Int("status", resp.StatusCode),
		log.String("errorCode", errResp.Code))
	return serviceerror.CustomServiceError(ErrorClientErrorFromIdentityServer, description)
}

// toProperties converts the given map into the property list expected by the identity server.
// Keys are sorted so that the request body is deterministic.
func toProperties(properties map[string]string) []property {
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	props := make([]property, 0, len(keys))
	for _, key := range keys {
		props = append(props, property{Key: key, Value: properties[key]})
	}
	return props
}

// splitDomainQualifiedName splits a "DOMAIN/name" user name into its domain and name.
func splitDomainQualifiedName(qualified string) (string, string) {
	domain, name, found := strings.Cut(qualified, "/")
	if !found {
		return DefaultUserDomain, qualified
	}
	return domain, name
}

func closeBody(resp *http.Response, logger *log.Logger) {
	if err := resp.Body.Close(); err != nil {
		logger.Error("Failed to close response body", log.Error(err))
	}
}
