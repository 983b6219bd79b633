package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reward-gateway/config"
	"reward-gateway/internal/adapter/http/middleware"
	"reward-gateway/internal/core/ports"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Events         *EventHandler
	Ops            *OpsHandler
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Config         *config.Config
	Logger         zerolog.Logger
}

// SetupRouter configures the gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.MaxBodySize(1 << 20)) // 1 MB

	router.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := router.Group("/api/v1")

	events := v1.Group("/events")
	{
		events.POST("/reward-payment", deps.Events.RewardPayment)
		events.POST("/faucet-transfer", deps.Events.FaucetTransfer)
		events.POST("/test-decrypt", deps.Events.TestDecrypt)
	}

	// Operator surface is disabled entirely when no username is configured.
	if deps.Config.Ops.Username != "" {
		ops := v1.Group("/ops")
		ops.POST("/login", deps.Ops.Login)

		protected := ops.Group("")
		protected.Use(middleware.JWTAuth(deps.TokenSvc, deps.Logger))
		{
			protected.GET("/rewards", deps.Ops.ListRewards)
			protected.GET("/rewards/:id", deps.Ops.GetReward)
			protected.GET("/stats", deps.Ops.Stats)
			protected.GET("/pool", deps.Ops.Pool)
			protected.POST("/reprocess", deps.Ops.Reprocess)
		}
	}

	return router
}
