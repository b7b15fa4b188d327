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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/thunder-portal/internal/selfsignup"
	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/constants"
	"github.com/asgardeo/thunder-portal/internal/system/i18n"
	"github.com/asgardeo/thunder-portal/tests/mocks/selfsignupmock"
)

const testContextPath = "/user-portal"

type ConfirmationHandlerTestSuite struct {
	suite.Suite
	mockService *selfsignupmock.SelfSignUpServiceInterfaceMock
	handler     *confirmationHandler
}

func TestConfirmationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConfirmationHandlerTestSuite))
}

func (suite *ConfirmationHandlerTestSuite) SetupTest() {
	suite.mockService = selfsignupmock.NewSelfSignUpServiceInterfaceMock(suite.T())
	controller := NewConfirmationController(suite.mockService, ControllerConfig{
		NotificationInternallyManaged: true,
		LoginRedirectURI:              "/login",
	})
	suite.handler = newConfirmationHandler(controller, i18n.DefaultBundle(), testContextPath)
}

func (suite *ConfirmationHandlerTestSuite) decodeView(rr *httptest.ResponseRecorder) ViewModel {
	var view ViewModel
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &view))
	return view
}

func (suite *ConfirmationHandlerTestSuite) TestConfirmationRequestRendersJSON() {
	suite.mockService.On("ConfirmSelfSignUp", mock.Anything, "abc").Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, testContextPath+"/signup/confirm?confirmation=abc", nil)
	rr := httptest.NewRecorder()
	suite.handler.HandleConfirmationRequest(rr, req)

	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal(constants.ContentTypeJSON, rr.Header().Get(constants.ContentTypeHeaderName))
	suite.JSONEq(`{"isConfirmationCodeValid":true}`, rr.Body.String())
}

func (suite *ConfirmationHandlerTestSuite) TestConfirmationRequestPassesQueryParams() {
	suite.mockService.On("ConfirmSelfSignUp", mock.Anything, "abc").
		Return(&selfsignup.ErrorExpiredConfirmationCode).Once()

	query := url.Values{}
	query.Set("confirmation", "abc")
	query.Set("id", "u1")
	query.Set("callback", "https://app.example.com")
	req := httptest.NewRequest(http.MethodGet, testContextPath+"/signup/confirm?"+query.Encode(), nil)
	rr := httptest.NewRecorder()
	suite.handler.HandleConfirmationRequest(rr, req)

	suite.Equal(http.StatusOK, rr.Code)
	view := suite.decodeView(rr)
	suite.Equal("u1", view.ID)
	suite.Equal("https://app.example.com", view.Callback)
	suite.True(view.Resend)
	suite.Equal("confirmation.expired.resend.description", view.Description)
}

func (suite *ConfirmationHandlerTestSuite) TestConfirmationRequestRendersHTML() {
	suite.mockService.On("ConfirmSelfSignUp", mock.Anything, "abc").Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, testContextPath+"/signup/confirm?confirmation=abc", nil)
	req.Header.Set(constants.AcceptHeaderName, "text/html,application/xhtml+xml")
	rr := httptest.NewRecorder()
	suite.handler.HandleConfirmationRequest(rr, req)

	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal(constants.ContentTypeHTML, rr.Header().Get(constants.ContentTypeHeaderName))
	suite.Contains(rr.Body.String(), "Your account has been confirmed")
	suite.NotContains(rr.Body.String(), "confirmation.success")
}

func (suite *ConfirmationHandlerTestSuite) TestExpiredCodeRendersResendForm() {
	suite.mockService.On("ConfirmSelfSignUp", mock.Anything, "abc").
		Return(&selfsignup.ErrorExpiredConfirmationCode).Once()

	req := httptest.NewRequest(http.MethodGet, testContextPath+"/signup/confirm?confirmation=abc&id=u1", nil)
	req.Header.Set(constants.AcceptHeaderName, "text/html")
	rr := httptest.NewRecorder()
	suite.handler.HandleConfirmationRequest(rr, req)

	body := rr.Body.String()
	suite.Contains(body, "Confirmation code expired")
	suite.Contains(body, `action="/user-portal/signup/confirm"`)
	suite.Contains(body, `name="uid" value="u1"`)
	suite.NotContains(body, `name="callback"`)
}

func (suite *ConfirmationHandlerTestSuite) TestMissingCodeRendersErrorPage() {
	req := httptest.NewRequest(http.MethodGet, testContextPath+"/signup/confirm", nil)
	req.Header.Set(constants.AcceptHeaderName, "text/html")
	rr := httptest.NewRecorder()
	suite.handler.HandleConfirmationRequest(rr, req)

	suite.Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), "User confirmation failed")
	suite.Contains(rr.Body.String(), "The confirmation link is incomplete.")
	suite.mockService.AssertNotCalled(suite.T(), "ConfirmSelfSignUp", mock.Anything, mock.Anything)
}

func (suite *ConfirmationHandlerTestSuite) TestResendRequestUsesDefaultCallback() {
	suite.mockService.On("ResendConfirmationByUserID", mock.Anything, "u1",
		map[string]string{"callback": "http://portal.example.com/user-portal/login"}).Return(nil).Once()

	form := url.Values{}
	form.Set("uid", "u1")
	req := httptest.NewRequest(http.MethodPost, "http://portal.example.com"+testContextPath+"/signup/confirm",
		strings.NewReader(form.Encode()))
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
	rr := httptest.NewRecorder()
	suite.handler.HandleResendRequest(rr, req)

	suite.Equal(http.StatusOK, rr.Code)
	suite.JSONEq(`{"hasConfirmationCodeSent":true,"callback":"http://portal.example.com/user-portal/login"}`,
		rr.Body.String())
}

func (suite *ConfirmationHandlerTestSuite) TestResendRequestByUsername() {
	suite.mockService.On("ResendConfirmationByClaims", mock.Anything,
		map[string]string{selfsignup.UsernameClaimURI: "alice"}, "PRIMARY",
		map[string]string{"callback": "https://app.example.com"}).Return(nil).Once()

	form := url.Values{}
	form.Set("unconfirmed-user", "alice")
	form.Set("unconfirmed-domain", "PRIMARY")
	form.Set("callback", "https://app.example.com")
	req := httptest.NewRequest(http.MethodPost, testContextPath+"/signup/confirm", strings.NewReader(form.Encode()))
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
	rr := httptest.NewRecorder()
	suite.handler.HandleResendRequest(rr, req)

	view := suite.decodeView(rr)
	suite.True(view.HasConfirmationCodeSent)
	suite.Equal("https://app.example.com", view.Callback)
}

func (suite *ConfirmationHandlerTestSuite) TestResendRequestWithMalformedForm() {
	req := httptest.NewRequest(http.MethodPost, testContextPath+"/signup/confirm", strings.NewReader("uid=%zz"))
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
	rr := httptest.NewRecorder()
	suite.handler.HandleResendRequest(rr, req)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.JSONEq(`{"error":"invalid_request","error_description":"Failed to parse form data"}`, rr.Body.String())
}

func (suite *ConfirmationHandlerTestSuite) TestInitializeRegistersRoutes() {
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"https://portal.example.com"}},
		Portal: config.PortalConfig{
			ContextPath:      testContextPath,
			LoginRedirectURI: "/login",
			ResendRateLimit:  config.RateLimitConfig{RequestsPerMinute: 1},
		},
	}
	config.ResetPortalRuntime()
	suite.Require().NoError(config.InitializePortalRuntime("/tmp/portal", cfg))
	defer config.ResetPortalRuntime()

	suite.mockService.On("ConfirmSelfSignUp", mock.Anything, "abc").Return(nil).Once()
	suite.mockService.On("ResendConfirmationByUserID", mock.Anything, "u1", mock.Anything).Return(nil).Once()

	mux := http.NewServeMux()
	controller, resendLimiter, err := Initialize(mux, cfg, suite.mockService, i18n.DefaultBundle())
	suite.Require().NoError(err)
	suite.NotNil(controller)
	defer resendLimiter.Stop()

	getReq := httptest.NewRequest(http.MethodGet, testContextPath+"/signup/confirm?confirmation=abc", nil)
	getReq.Header.Set("Origin", "https://portal.example.com")
	getRR := httptest.NewRecorder()
	mux.ServeHTTP(getRR, getReq)
	suite.Equal(http.StatusOK, getRR.Code)
	suite.Equal("https://portal.example.com", getRR.Header().Get("Access-Control-Allow-Origin"))

	newResendRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, testContextPath+"/signup/confirm", strings.NewReader("uid=u1"))
		req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
		return req
	}

	firstRR := httptest.NewRecorder()
	mux.ServeHTTP(firstRR, newResendRequest())
	suite.Equal(http.StatusOK, firstRR.Code)

	secondRR := httptest.NewRecorder()
	mux.ServeHTTP(secondRR, newResendRequest())
	suite.Equal(http.StatusTooManyRequests, secondRR.Code)

	optionsRR := httptest.NewRecorder()
	mux.ServeHTTP(optionsRR, httptest.NewRequest(http.MethodOptions, testContextPath+"/signup/confirm", nil))
	suite.Equal(http.StatusNoContent, optionsRR.Code)
}

func (suite *ConfirmationHandlerTestSuite) TestInitializeRejectsInvalidTrustedProxy() {
	cfg := &config.Config{
		Server: config.ServerConfig{TrustedProxies: []string{"proxy.local"}},
		Portal: config.PortalConfig{ContextPath: testContextPath},
	}

	controller, resendLimiter, err := Initialize(http.NewServeMux(), cfg, suite.mockService, i18n.DefaultBundle())
	suite.Error(err)
	suite.Nil(controller)
	suite.Nil(resendLimiter)
}
