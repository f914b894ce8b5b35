package handler

import "github.com/labstack/echo/v4"

// Register mounts the API. Middleware in apiMiddleware applies to /api only.
func Register(e *echo.Echo, search *SearchHandler, bookings *BookingHandler, apiMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", HealthHandler)

	api := e.Group("/api", apiMiddleware...)
	api.GET("/search", search.Search)
	api.GET("/search/results", search.Results)
	api.GET("/catalog/:type", search.Catalog)

	api.GET("/bookings", bookings.List)
	api.POST("/bookings", bookings.Create)
	api.GET("/bookings/quote", bookings.Quote)
	api.GET("/bookings/:reference/itinerary", bookings.Itinerary)
}
