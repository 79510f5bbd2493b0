package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/ratelimit"
)

// KeyFunc picks the bucket a request is counted in.
type KeyFunc func(c *gin.Context) string

func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByUser counts per authenticated user, falling back to the client IP.
func KeyByUser(c *gin.Context) string {
	if uid := c.GetUint(ContextUserID); uid != 0 {
		return "user:" + strconv.FormatUint(uint64(uid), 10)
	}
	return c.ClientIP()
}

// RateLimit rejects with 429 once rule is exhausted. Limiter errors let the
// request through.
func RateLimit(l ratelimit.Limiter, rule ratelimit.Rule, key KeyFunc, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := l.Allow(c.Request.Context(), rule, key(c))
		if err != nil {
			log.WithError(err).WithField("rule", rule.Name).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", rule.Message)
			c.Abort()
			return
		}

		c.Next()
	}
}
