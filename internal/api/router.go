package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"shareit/internal/booking"
	bookingHttp "shareit/internal/booking/http"
	"shareit/internal/identity"
	"shareit/internal/item"
	itemHttp "shareit/internal/item/http"
	"shareit/internal/itemrequest"
	requestHttp "shareit/internal/itemrequest/http"
	"shareit/internal/pkg/metrics"
)

// Config holds everything the router needs.
type Config struct {
	BookingService booking.Service
	ItemService    item.Service
	RequestService itemrequest.Service
	Logger         zerolog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter initializes the HTTP router engine: middleware assembly
// (recovery, request id, access log, metrics, CORS, rate limit) and
// route registration for every module.
func NewRouter(cfg Config) *gin.Engine {
	metrics.Register()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		RequestID(),
		AccessLog(cfg.Logger),
		Metrics(),
		RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Every caller-facing route requires the identity header.
	identityMiddleware := identity.Required()

	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		bookingHttp.RegisterRoutes(root, bookingHandler, identityMiddleware)
		itemHttp.RegisterRoutes(root, itemHandler, identityMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, identityMiddleware)
	}

	return r
}
