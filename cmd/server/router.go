package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/healthguide/internal/api"
	"github.com/Skufu/healthguide/internal/assistant"
	"github.com/Skufu/healthguide/internal/dashboard"
	"github.com/Skufu/healthguide/internal/guidance"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type routerDeps struct {
	db         HealthChecker
	dashboards dashboard.Source
	assembler  *guidance.Assembler
	stubs      *assistant.Stubs
	logger     *zap.Logger
}

func setupRouter(cfg *Config, deps routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		api.RequestID(),
		api.RequestLogger(deps.logger),
		api.Recovery(deps.logger),
		limitBodySize(cfg.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", api.RequestIDHeader},
			ExposeHeaders: []string{api.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if deps.db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := deps.db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	})

	api.NewHandler(cfg.ServiceName, deps.assembler, deps.stubs, deps.dashboards, deps.logger).Register(router)

	return router
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
