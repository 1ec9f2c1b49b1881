package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shareit/internal/api"
	"shareit/internal/booking"
	"shareit/internal/item"
	"shareit/internal/itemrequest"
	"shareit/internal/pkg/clock"
	"shareit/internal/user"
)

// Config holds the dependencies and settings required to assemble the
// application.
type Config struct {
	DBPool         *pgxpool.Pool
	Redis          *redis.Client // nil disables the user cache
	UserCacheTTL   time.Duration
	Clock          clock.Clock // nil means system clock
	Logger         zerolog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.System()
	}

	// User directory
	userRepo := user.NewPgxRepository(cfg.DBPool)
	if cfg.Redis != nil {
		userRepo = user.NewCachedRepository(cfg.Redis, userRepo, cfg.UserCacheTTL)
	}
	userService := user.NewService(userRepo)

	// Item catalog
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo)

	// Booking core
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, userService, itemService, clk, cfg.Logger)

	// Item requests
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	requestService := itemrequest.NewService(requestRepo, userService, clk, cfg.Logger)

	router := api.NewRouter(api.Config{
		BookingService: bookingService,
		ItemService:    itemService,
		RequestService: requestService,
		Logger:         cfg.Logger,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	return &Container{Router: router}
}
