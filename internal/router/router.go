// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/handler"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the global middleware chain, the error handler,
// and every route group onto the echo instance.
func RegisterRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the context
	// enhancer builds the logger, which must exist before anything logs.
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())

	registerSystemRoutes(e, h)

	api := e.Group("/api/v1", m.RateLimit.Limit())
	registerBookingRoutes(api, h)
}
