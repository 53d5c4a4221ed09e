package handler

import (
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/service"

	"github.com/labstack/echo/v4"
)

// AdminHandler exposes destructive maintenance endpoints.
type AdminHandler struct {
	Handler
	bookings *service.BookingService
}

func NewAdminHandler(s *server.Server, bookings *service.BookingService) *AdminHandler {
	return &AdminHandler{
		Handler:  NewHandler(s),
		bookings: bookings,
	}
}

// ResetResponse reports the outcome of a schema reset.
type ResetResponse struct {
	Status string `json:"status"`
}

// Reset drops and recreates the whole schema with seed data. Everything
// previously stored is gone afterwards; there is no undo.
func (h *AdminHandler) Reset(c echo.Context, req *EmptyRequest) (*ResetResponse, error) {
	if err := h.bookings.ResetSchema(c.Request().Context()); err != nil {
		return nil, err
	}
	return &ResetResponse{Status: "schema reset complete"}, nil
}
