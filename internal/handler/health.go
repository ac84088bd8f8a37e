package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type healthResponse struct {
	OK     bool   `json:"ok"`
	DB     string `json:"db"`
	Redis  string `json:"redis"`
	Schema *int64 `json:"schema_version,omitempty"`
}

// Health reports database and Redis connectivity plus the applied migration
// version. Redis only backs rate limiting, so its loss degrades the response
// without failing it; the database is required.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		resp := healthResponse{DB: "connected", Redis: "connected"}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			resp.DB = "error"
		} else {
			var version int64
			if db.WithContext(ctx).Raw("SELECT version FROM schema_migrations LIMIT 1").Scan(&version).Error == nil {
				resp.Schema = &version
			}
		}

		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			resp.Redis = "error"
		}

		status := http.StatusOK
		if resp.DB != "connected" {
			status = http.StatusServiceUnavailable
		}
		resp.OK = status == http.StatusOK
		c.JSON(status, resp)
	}
}
