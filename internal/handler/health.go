package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/PrManiezzo/marmo/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger checks the storage backend; gorm and supabase each get an adapter in
// the composition root.
type Pinger func(ctx context.Context) error

// Health returns a JSON health check response.
// Checks storage and Redis connectivity; never exposes credentials or internals.
// Redis is optional: a nil client reports "disabled" and keeps the service healthy.
func Health(storage Pinger, rdb *redis.Client, mailer *infra.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		if storage(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		smtpStatus := "disabled"
		if mailer.Ativo() {
			smtpStatus = mailer.Estado().String()
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
			"smtp":  smtpStatus,
		})
	}
}
