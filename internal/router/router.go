package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-reservation/internal/config"     // cache middleware configuration
	"github.com/iliyamo/hotel-reservation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/hotel-reservation/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication‑related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Create a route group under the /v1/auth prefix for operations that do
	// not require an existing session (register, login, refresh).  Each of
	// these handlers is responsible for generating or exchanging tokens.
	g := e.Group("/v1/auth")
	// Register a POST endpoint to handle user registration at /v1/auth/register.
	g.POST("/register", a.Register)
	// Register a POST endpoint to handle user login at /v1/auth/login.
	g.POST("/login", a.Login)
	// Register a POST endpoint to refresh access tokens at /v1/auth/refresh. This rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Register a POST endpoint to issue a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Register a POST endpoint to log out using a refresh token.  Logout does
	// not require JWT authentication; the handler accepts a JSON body
	// containing a `refresh_token`, or an Authorization header to revoke all
	// sessions of the current user.
	g.POST("/logout", a.Logout)

	// Create another group for routes that require a valid access token.  All
	// handlers registered on this group will execute the JWTAuth middleware
	// before being invoked.  Protected endpoints live under /v1.
	auth := e.Group("/v1")
	// Apply the JWTAuth middleware to the protected group using the provided secret.
	auth.Use(middleware.JWTAuth(jwtSecret))
	// Both roles can reach the generic authenticated endpoints; the
	// middleware rejects requests with missing or unknown roles.
	auth.Use(middleware.RequireRole("ADMIN", "CUSTOMER"))
	// Register a GET endpoint at /v1/me that returns the authenticated user's information.
	auth.GET("/me", a.Me)

	// Additionally map POST /v1/logout to the same handler so clients can
	// call either /v1/auth/logout or /v1/logout to terminate a session.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated browse endpoints: room
// listings, room type discovery, availability search, stay pricing,
// active holiday packages and confirmation code lookup.  The redis
// response cache is applied only here; everything below is a pure read
// and safe to serve from cache.
func RegisterPublic(e *echo.Echo, rooms *handler.RoomHandler, packages *handler.HolidayPackageHandler, bookings *handler.BookingHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	pub := e.Group("/v1")
	pub.Use(middleware.NewRedisCache(cacheCfg, rdb))

	// Room browsing and search.
	pub.GET("/rooms", rooms.List)
	pub.GET("/rooms/types", rooms.Types)
	pub.GET("/rooms/available", rooms.Available)
	pub.GET("/rooms/:id", rooms.Get)
	pub.GET("/rooms/:id/price", rooms.Price)

	// Active holiday packages.
	pub.GET("/packages", packages.ListActive)

	// Guests can retrieve their booking with the confirmation code alone.
	pub.GET("/bookings/code/:code", bookings.FindByCode)
}

// RegisterBooking registers the authenticated booking endpoint.  Both
// customers and admins can create bookings.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN", "CUSTOMER"))
	g.POST("/bookings", b.Create)
}

// RegisterAdmin registers the management surface: room CRUD, price
// period CRUD, holiday package CRUD and booking oversight.  Every
// route requires a valid access token with the ADMIN role.
func RegisterAdmin(e *echo.Echo, rooms *handler.RoomHandler, periods *handler.PricePeriodHandler, packages *handler.HolidayPackageHandler, bookings *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	g.POST("/rooms", rooms.Create)
	g.PUT("/rooms/:id", rooms.Update)
	g.DELETE("/rooms/:id", rooms.Delete)

	g.GET("/price-periods", periods.List)
	g.GET("/price-periods/:id", periods.Get)
	g.POST("/price-periods", periods.Create)
	g.PUT("/price-periods/:id", periods.Update)
	g.DELETE("/price-periods/:id", periods.Delete)

	g.GET("/packages", packages.List)
	g.GET("/packages/:id", packages.Get)
	g.POST("/packages", packages.Create)
	g.PUT("/packages/:id", packages.Update)
	g.DELETE("/packages/:id", packages.Delete)

	g.GET("/bookings", bookings.List)
	g.DELETE("/bookings/:id", bookings.Delete)
}
