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

// Package middleware provides HTTP middleware shared by the portal routes.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/asgardeo/thunder-portal/internal/system/config"
	"github.com/asgardeo/thunder-portal/internal/system/log"
	"github.com/asgardeo/thunder-portal/internal/system/utils"
)

// CORSOptions describes what a cross origin caller may do on a route.
type CORSOptions struct {
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
	// MaxAgeSeconds lets browsers cache preflight answers. Zero omits the header.
	MaxAgeSeconds int
}

// WithCORS wraps an HTTP handler with CORS headers based on the provided options.
// It returns the pattern and wrapped handler that can be registered with http.ServeMux.
func WithCORS(pattern string, handler http.HandlerFunc, opts CORSOptions) (string, http.HandlerFunc) {
	return pattern, func(w http.ResponseWriter, r *http.Request) {
		applyCORSHeaders(w, r, opts)
		handler(w, r)
	}
}

// applyCORSHeaders echoes an allowed request origin together with the route's CORS options.
// Responses always vary on Origin once the request carries one.
func applyCORSHeaders(w http.ResponseWriter, r *http.Request, opts CORSOptions) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}
	header := w.Header()
	header.Add("Vary", "Origin")

	if utils.GetAllowedOrigin(getAllowedOrigins(), origin) == "" {
		return
	}

	header.Set("Access-Control-Allow-Origin", origin)
	if opts.AllowCredentials {
		header.Set("Access-Control-Allow-Credentials", "true")
	}
	if opts.AllowedMethods != "" {
		header.Set("Access-Control-Allow-Methods", opts.AllowedMethods)
	}
	if opts.AllowedHeaders != "" {
		header.Set("Access-Control-Allow-Headers", opts.AllowedHeaders)
	}
	if r.Method == http.MethodOptions && opts.MaxAgeSeconds > 0 {
		header.Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAgeSeconds))
	}
}

func getAllowedOrigins() []string {
	origins := config.GetPortalRuntime().Config.CORS.AllowedOrigins
	if len(origins) == 0 {
		log.GetLogger().Debug("No allowed origins configured in deployment.yaml",
			log.String(log.LoggerKeyComponentName, "CORSMiddleware"))
	}
	return origins
}
