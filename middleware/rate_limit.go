package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5 // per client IP
)

// RateLimiter throttles a route per client IP using redis INCR + EXPIRE.
// A nil client disables limiting; a redis failure lets the request through.
func RateLimiter(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			client.Expire(c.Request.Context(), key, rateLimitPeriod)
		}

		if count > rateLimitCount {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		c.Next()
	}
}
