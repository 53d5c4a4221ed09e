package router

import (
	"net/http"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/handler"

	"github.com/labstack/echo/v4"
)

// registerBookingRoutes maps the booking CRUD surface, the search
// endpoint, the package catalog, and the destructive schema reset.
func registerBookingRoutes(g *echo.Group, h *handler.Handlers) {
	base := h.Bookings.Handler

	g.GET("/bookings", handler.Handle[handler.EmptyRequest](base, h.Bookings.List, http.StatusOK))
	g.POST("/bookings", handler.Handle[handler.CreateBookingRequest](base, h.Bookings.Create, http.StatusCreated))
	g.POST("/bookings/search", handler.Handle[handler.SearchBookingsRequest](base, h.Bookings.Search, http.StatusOK))
	g.GET("/bookings/picker", handler.Handle[handler.EmptyRequest](base, h.Bookings.ListPicker, http.StatusOK))
	g.GET("/bookings/:id", handler.Handle[handler.GetBookingRequest](base, h.Bookings.Get, http.StatusOK))
	g.PUT("/bookings/:id", handler.HandleNoContent[handler.UpdateBookingRequest](base, h.Bookings.Update, http.StatusNoContent))
	g.DELETE("/bookings/:id", handler.HandleNoContent[handler.DeleteBookingRequest](base, h.Bookings.Delete, http.StatusNoContent))

	g.GET("/catalog", handler.Handle[handler.EmptyRequest](base, h.Catalog.List, http.StatusOK))

	g.POST("/admin/reset", handler.Handle[handler.EmptyRequest](base, h.Admin.Reset, http.StatusOK))
}
