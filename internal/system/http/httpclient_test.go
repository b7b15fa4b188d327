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

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HTTPClientTestSuite struct {
	suite.Suite
}

func TestHTTPClientSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientTestSuite))
}

func (suite *HTTPClientTestSuite) TestNewHTTPClient() {
	client := NewHTTPClient()
	assert.NotNil(suite.T(), client)
	assert.Equal(suite.T(), defaultTimeout, client.(*HTTPClient).client.Timeout)
}

func (suite *HTTPClientTestSuite) TestNewHTTPClientWithTimeout() {
	client := NewHTTPClientWithTimeout(5 * time.Second)
	assert.Equal(suite.T(), 5*time.Second, client.(*HTTPClient).client.Timeout)

	transport, ok := client.(*HTTPClient).client.Transport.(*http.Transport)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), maxIdleConnsPerBackend, transport.MaxIdleConnsPerHost)

	client = NewHTTPClientWithTimeout(0)
	assert.Equal(suite.T(), defaultTimeout, client.(*HTTPClient).client.Timeout)
}

func (suite *HTTPClientTestSuite) TestNewHTTPClientWithConfig() {
	custom := &http.Client{Timeout: 7 * time.Second}
	client := NewHTTPClientWithConfig(custom)
	assert.Same(suite.T(), custom, client.(*HTTPClient).client)
}

func (suite *HTTPClientTestSuite) TestDo() {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.Equal(suite.T(), "thunder-portal", r.UserAgent())
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("accepted"))
	}))
	defer testServer.Close()

	client := NewHTTPClient()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, testServer.URL, nil)
	assert.NoError(suite.T(), err)

	resp, err := client.Do(req)
	assert.NoError(suite.T(), err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusAccepted, resp.StatusCode)
	assert.Equal(suite.T(), "accepted", string(body))
}

func (suite *HTTPClientTestSuite) TestDoKeepsCallerUserAgent() {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "custom-agent", r.UserAgent())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer testServer.Close()

	req, err := http.NewRequest(http.MethodGet, testServer.URL, nil)
	assert.NoError(suite.T(), err)
	req.Header.Set("User-Agent", "custom-agent")

	resp, err := NewHTTPClient().Do(req)
	assert.NoError(suite.T(), err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(suite.T(), http.StatusNoContent, resp.StatusCode)
}

func (suite *HTTPClientTestSuite) TestDoTimeout() {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	client := NewHTTPClientWithTimeout(20 * time.Millisecond)
	req, err := http.NewRequest(http.MethodGet, testServer.URL, nil)
	assert.NoError(suite.T(), err)

	resp, err := client.Do(req)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
}
