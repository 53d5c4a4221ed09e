package handler

import (
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/service"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the package catalog used when creating bookings.
type CatalogHandler struct {
	Handler
	bookings *service.BookingService
}

func NewCatalogHandler(s *server.Server, bookings *service.BookingService) *CatalogHandler {
	return &CatalogHandler{
		Handler:  NewHandler(s),
		bookings: bookings,
	}
}

// List returns every package with its destination, ordered by package
// name.
func (h *CatalogHandler) List(c echo.Context, req *EmptyRequest) ([]model.CatalogEntry, error) {
	return h.bookings.Catalog(c.Request().Context())
}
