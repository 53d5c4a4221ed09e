package repository

import (
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"
)

// Repositories is a container for all repository instances, initialized
// once at startup and handed to the service layer.
type Repositories struct {
	Users    *UserRepository
	Bookings *BookingRepository
	Catalog  *CatalogRepository
}

// NewRepositories constructs the repository container on top of the
// shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(s.DB.Pool),
		Bookings: NewBookingRepository(s.DB.Pool),
		Catalog:  NewCatalogRepository(s.DB.Pool),
	}
}
