package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	last  time.Time
	count int
}

var rlMu sync.Mutex
var clients = make(map[string]*clientInfo)

// memoryAllow is the in-process fixed-window limiter used when Redis is
// not configured. One window per client IP.
func memoryAllow(ip string, maxRequests int, window time.Duration) bool {
	rlMu.Lock()
	defer rlMu.Unlock()

	ci, ok := clients[ip]
	if !ok {
		clients[ip] = &clientInfo{last: time.Now(), count: 1}
		return true
	}

	now := time.Now()
	if now.Sub(ci.last) > window {
		ci.last = now
		ci.count = 1
		return true
	}

	ci.count++
	return ci.count <= maxRequests
}

// SimpleRateLimit blocks clients that send more than maxRequests per window.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !memoryAllow(c.ClientIP(), maxRequests, window) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
