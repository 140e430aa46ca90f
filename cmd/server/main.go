package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-reservation/internal/database"   // MySQL connection helper
	"github.com/iliyamo/hotel-reservation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-reservation/internal/middleware" // Rate limiting middleware
	"github.com/iliyamo/hotel-reservation/internal/queue"      // booking.confirmed consumer
	"github.com/iliyamo/hotel-reservation/internal/repository" // Data access layer
	"github.com/iliyamo/hotel-reservation/internal/router"     // Internal router setup
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter.  A nil client
	// disables both; the server still works without Redis.
	rdb := config.NewRedisClient()

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	periodRepo := repository.NewPricePeriodRepo(db)
	packageRepo := repository.NewHolidayPackageRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	roomHandler := handler.NewRoomHandler(roomRepo, bookingRepo, periodRepo, packageRepo)
	periodHandler := handler.NewPricePeriodHandler(periodRepo)
	packageHandler := handler.NewHolidayPackageHandler(packageRepo)
	bookingHandler := handler.NewBookingHandler(cfg, bookingRepo, roomRepo, periodRepo, packageRepo)

	e := echo.New() // Create Echo instance

	// The token bucket applies to every route, cached or not.
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e) // Health check
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, roomHandler, packageHandler, bookingHandler, config.LoadCacheConfig(), rdb)
	router.RegisterBooking(e, bookingHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, roomHandler, periodHandler, packageHandler, bookingHandler, cfg.JWTSecret)

	// Consume booking.confirmed in the background; the consumer has its
	// own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
