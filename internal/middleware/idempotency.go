package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyReplayTTL = 10 * time.Minute
)

type bodyCaptureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated mutation
// carrying the same Idempotency-Key, and rejects a concurrent duplicate
// while the first attempt is still in flight. Keys are scoped per route
// and user. Requests without the header pass through untouched.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			c.Header("Content-Type", "application/json")
			c.Header("Idempotency-Replay", "true")
			c.String(http.StatusOK, cached)
			c.Abort()
			return
		}

		// Short-lived lock so a crashed attempt self-clears.
		isNew, _ := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is already being processed",
			})
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			rdb.Set(ctx, cacheKey, writer.buf.String(), idempotencyReplayTTL)
		}
		rdb.Del(ctx, lockKey)
	}
}
