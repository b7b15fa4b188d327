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

package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/asgardeo/thunder-portal/internal/system/log"
	"github.com/asgardeo/thunder-portal/internal/system/utils"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = 10 * time.Minute
)

// rateLimiterEntry holds the limiter of a single client together with its last access time.
type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter enforces a per client IP request budget.
type RateLimiter struct {
	requestsPerMinute int
	trustedProxies    []*net.IPNet
	limiters          map[string]*rateLimiterEntry
	mu                sync.Mutex
	cleanup           *time.Ticker
	done              chan struct{}
	stopOnce          sync.Once
	now               func() time.Time
}

// NewRateLimiter creates a rate limiter allowing the given number of requests per minute per client IP.
// A non positive value disables limiting. Forwarding headers are only used to identify the client
// when the request comes from one of the trusted proxies.
func NewRateLimiter(requestsPerMinute int, trustedProxies []*net.IPNet) *RateLimiter {
	rl := &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		trustedProxies:    trustedProxies,
		limiters:          make(map[string]*rateLimiterEntry),
		cleanup:           time.NewTicker(limiterCleanupInterval),
		done:              make(chan struct{}),
		now:               time.Now,
	}
	go rl.cleanupLoop()
	return rl
}

// Stop stops the background cleanup of idle limiters. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		rl.cleanup.Stop()
		close(rl.done)
	})
}

// Done returns a channel that is closed once the limiter is stopped.
func (rl *RateLimiter) Done() <-chan struct{} {
	return rl.done
}

// Allow reports whether a request from the given client may proceed.
func (rl *RateLimiter) Allow(clientIP string) bool {
	if rl.requestsPerMinute <= 0 {
		return true
	}
	return rl.getLimiter(clientIP).Allow()
}

// WithRateLimit wraps an HTTP handler so that over budget requests are rejected with 429.
func WithRateLimit(handler http.HandlerFunc, rl *RateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientIP := utils.GetClientIP(r, rl.trustedProxies)
		if !rl.Allow(clientIP) {
			log.GetLogger().Debug("Rate limit exceeded", log.String(log.LoggerKeyComponentName, "RateLimiter"),
				log.String("client", log.MaskString(clientIP)))
			retryAfter := strconv.Itoa(rl.retryAfterSeconds())
			utils.WriteJSONError(w, "too_many_requests", "Rate limit exceeded. Please try again later.",
				http.StatusTooManyRequests, []map[string]string{{"Retry-After": retryAfter}})
			return
		}
		handler(w, r)
	}
}

// retryAfterSeconds returns the wait until the next request is admitted, rounded up to a whole second.
func (rl *RateLimiter) retryAfterSeconds() int {
	return max(1, int(math.Ceil(time.Minute.Seconds()/float64(rl.requestsPerMinute))))
}

// getLimiter returns or creates the limiter of the given client.
func (rl *RateLimiter) getLimiter(clientIP string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[clientIP]
	if !exists {
		interval := time.Minute / time.Duration(rl.requestsPerMinute)
		entry = &rateLimiterEntry{
			limiter: rate.NewLimiter(rate.Every(interval), rl.requestsPerMinute),
		}
		rl.limiters[clientIP] = entry
	}
	entry.lastSeen = rl.now()
	return entry.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	for {
		select {
		case <-rl.cleanup.C:
			rl.removeIdle()
		case <-rl.done:
			return
		}
	}
}

// removeIdle drops limiters that have not been used within the idle timeout.
func (rl *RateLimiter) removeIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTimeout {
			delete(rl.limiters, ip)
		}
	}
}
