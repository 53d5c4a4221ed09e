package handler

import (
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/service"
)

// Handlers is a container that groups all HTTP handlers so router setup
// passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler
	Bookings *BookingHandler
	Catalog  *CatalogHandler
	Admin    *AdminHandler
}

// NewHandlers constructs the handler container on top of the service
// layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Bookings: NewBookingHandler(s, services.Booking),
		Catalog:  NewCatalogHandler(s, services.Booking),
		Admin:    NewAdminHandler(s, services.Booking),
	}
}
