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

package log

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/asgardeo/thunder-portal/internal/system/constants"
)

// clfTimeLayout is the timestamp layout of the Apache common log format.
const clfTimeLayout = "02/Jan/2006:15:04:05 -0700"

// AccessLogHandler tags each request with a correlation id and logs it in Apache CLF
// followed by the response time in milliseconds.
func AccessLogHandler(logger *Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received := time.Now()

		correlationID := resolveCorrelationID(r.Header.Get(constants.CorrelationIDHeaderName))
		w.Header().Set(constants.CorrelationIDHeaderName, correlationID)
		r = r.WithContext(WithCorrelationID(r.Context(), correlationID))

		recorder := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		logger.Info(formatAccessLine(r, received, recorder),
			String(LoggerKeyCorrelationID, correlationID),
			String("userAgent", r.UserAgent()))
	})
}

func formatAccessLine(r *http.Request, received time.Time, recorder *loggingResponseWriter) string {
	client, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		client = r.RemoteAddr
	}

	return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d %d`,
		client, received.Format(clfTimeLayout), r.Method, r.RequestURI, r.Proto,
		recorder.statusCode, recorder.size, time.Since(received).Milliseconds())
}

// loggingResponseWriter records the status and body size written by the wrapped handler.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}
