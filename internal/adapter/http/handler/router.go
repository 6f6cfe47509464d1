package handler

import (
	"hemstore-gateway/internal/adapter/http/middleware"
	redisStore "hemstore-gateway/internal/adapter/storage/redis"
	"hemstore-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OrderSvc       ports.OrderService
	TradeBuilder   ports.TradeBuilder
	Verifier       ports.CallbackVerifier
	Settlement     ports.SettlementService
	StoreRelay     ports.StoreRelay
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Diag           DiagConfig
	ClientBaseURL  string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	api := r.Group("/api")

	// --- Storefront order routes ---
	orderHandler := NewOrderHandler(deps.OrderSvc)
	orders := api.Group("/orders")
	{
		orders.POST("", rl("orders_create"), orderHandler.Create)
		orders.POST("/lookup", rl("order_lookup"), orderHandler.Lookup)
		orders.GET("/:orderNo", orderHandler.Get)
	}

	// --- Payment leg: outbound form plus provider callbacks ---
	paymentHandler := NewPaymentHandler(deps.TradeBuilder, deps.Verifier, deps.Settlement, deps.ClientBaseURL, deps.Logger)
	pay := api.Group("/pay")
	{
		pay.POST("/start", rl("pay_start"), paymentHandler.Start)
		pay.POST("/notify", paymentHandler.Notify)
		pay.POST("/return", paymentHandler.Return)
		pay.GET("/return", paymentHandler.Return)
	}

	// --- Store pickup leg: picker map plus selection relay ---
	logisticsHandler := NewLogisticsHandler(deps.TradeBuilder, deps.Verifier, deps.StoreRelay, deps.ClientBaseURL, deps.Logger)
	cvs := api.Group("/cvs")
	{
		cvs.GET("/start", rl("cvs_start"), logisticsHandler.StartMap)
		cvs.POST("/callback", logisticsHandler.Callback)
		cvs.GET("/selected", logisticsHandler.Selected)
	}

	// --- Operator diagnostics ---
	api.GET("/gateway/diag", GatewayDiag(deps.Diag))

	return r
}
