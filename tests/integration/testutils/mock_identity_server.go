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
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
)

// Confirmation codes understood by the mock identity server.
const (
	ValidConfirmationCode   = "valid-code"
	ExpiredConfirmationCode = "expired-code"
)

// MockIdentityServer provides a mock identity server exposing the self sign-up REST API.
type MockIdentityServer struct {
	server   *http.Server
	listener net.Listener
	users    map[string]string
	resends  []ResendCall
	mutex    sync.RWMutex
}

// ResendCall represents a received resend-code request.
type ResendCall struct {
	Username   string
	Realm      string
	Properties map[string]string
}

type mockProperty struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type mockResendRequest struct {
	User struct {
		Username string `json:"username"`
		Realm    string `json:"realm"`
	} `json:"user"`
	Properties []mockProperty `json:"properties"`
}

// NewMockIdentityServer creates a new mock identity server knowing the given users.
// Users map a user id to the domain qualified user name.
func NewMockIdentityServer(users map[string]string) *MockIdentityServer {
	return &MockIdentityServer{
		users:   users,
		resends: make([]ResendCall, 0),
	}
}

// Start starts the mock identity server on a free local port.
func (m *MockIdentityServer) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/identity/user/v1.0/validate-code", m.handleValidateCode)
	mux.HandleFunc("POST /api/identity/user/v1.0/resend-code", m.handleResendCode)
	mux.HandleFunc("GET /scim2/Users/{id}", m.handleGetUser)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("failed to listen for the mock identity server: %w", err)
	}
	m.listener = ln
	m.server = &http.Server{Handler: mux}

	go func() {
		log.Printf("Starting mock identity server on %s", ln.Addr().String())
		if err := m.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("Mock identity server error: %v", err)
		}
	}()

	return nil
}

// Stop stops the mock identity server.
func (m *MockIdentityServer) Stop() error {
	if m.server != nil {
		return m.server.Close()
	}
	return nil
}

// GetURL returns the base URL of the mock server.
func (m *MockIdentityServer) GetURL() string {
	return "http://" + m.listener.Addr().String()
}

// GetResendCalls returns the resend-code requests received so far.
func (m *MockIdentityServer) GetResendCalls() []ResendCall {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	calls := make([]ResendCall, len(m.resends))
	copy(calls, m.resends)
	return calls
}

// ClearResendCalls forgets the recorded resend-code requests.
func (m *MockIdentityServer) ClearResendCalls() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.resends = make([]ResendCall, 0)
}

func (m *MockIdentityServer) handleValidateCode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMockError(w, http.StatusBadRequest, "10001", "Invalid request body")
		return
	}

	switch body.Code {
	case ValidConfirmationCode:
		w.WriteHeader(http.StatusAccepted)
	case ExpiredConfirmationCode:
		writeMockError(w, http.StatusBadRequest, "18002", "Expired code")
	default:
		writeMockError(w, http.StatusBadRequest, "18001", "Invalid code")
	}
}

func (m *MockIdentityServer) handleResendCode(w http.ResponseWriter, r *http.Request) {
	var body mockResendRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMockError(w, http.StatusBadRequest, "10001", "Invalid request body")
		return
	}

	call := ResendCall{
		Username:   body.User.Username,
		Realm:      body.User.Realm,
		Properties: make(map[string]string, len(body.Properties)),
	}
	for _, prop := range body.Properties {
		call.Properties[prop.Key] = prop.Value
	}

	m.mutex.Lock()
	m.resends = append(m.resends, call)
	m.mutex.Unlock()

	w.WriteHeader(http.StatusCreated)
}

func (m *MockIdentityServer) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	userName, ok := m.users[id]
	if !ok {
		writeMockError(w, http.StatusNotFound, "20002", "User not found")
		return
	}

	w.Header().Set("Content-Type", "application/scim+json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"id":       id,
		"userName": userName,
	})
}

func writeMockError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":        code,
		"message":     message,
		"description": strings.ToLower(message),
	})
}
