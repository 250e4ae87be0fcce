package handler

import (
	"dashqard-redemption/internal/adapter/http/middleware"
	redisStore "dashqard-redemption/internal/adapter/storage/redis"
	"dashqard-redemption/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RedemptionSvc  ports.RedemptionService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	v1 := r.Group("/api/v1")
	v1.GET("/mobile-money/provider", rl("lookups"), DetectProvider)

	h := NewRedemptionHandler(deps.RedemptionSvc)
	sessions := v1.Group("/redemptions/sessions",
		middleware.OptionalJWT(deps.TokenSvc, deps.Logger),
		middleware.RequireJSON(),
	)
	{
		sessions.POST("", rl("sessions"), h.Start)
		sessions.GET("/:id", rl("inputs"), h.Get)
		sessions.DELETE("/:id", rl("inputs"), h.Discard)
		sessions.GET("/:id/events", rl("inputs"), h.Events)

		sessions.POST("/:id/method", rl("inputs"), h.SelectMethod)
		sessions.POST("/:id/back", rl("inputs"), h.BackToMethod)
		sessions.PUT("/:id/vendor-phone", rl("inputs"), h.EnterVendorPhone)
		sessions.PUT("/:id/vendor-search", rl("inputs"), h.EnterVendorSearch)
		sessions.POST("/:id/vendor", rl("inputs"), h.SelectVendor)
		sessions.POST("/:id/branch", rl("inputs"), h.SelectBranch)
		sessions.POST("/:id/card-type", rl("inputs"), h.SelectCardType)
		sessions.POST("/:id/card", rl("inputs"), h.SelectCard)
		sessions.PUT("/:id/amount", rl("inputs"), h.EnterAmount)
		sessions.PUT("/:id/guest-phone", rl("inputs"), h.EnterGuestPhone)
		sessions.POST("/:id/balance/refresh", rl("lookups"), h.RefreshBalance)

		sessions.POST("/:id/submit", rl("submit"), h.Submit)
		sessions.POST("/:id/rating/start", rl("inputs"), h.StartRating)
		sessions.POST("/:id/rating", rl("submit"), h.SubmitRating)
		sessions.POST("/:id/rating/skip", rl("inputs"), h.SkipRating)
		sessions.POST("/:id/reset", rl("inputs"), h.Reset)
	}

	return r
}
