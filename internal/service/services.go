package service

import (
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/repository"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Booking *BookingService
}

// NewServices constructs the service container from the application
// container and the repository layer.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Booking: NewBookingService(
			s.DB.Pool,
			repos.Users,
			repos.Bookings,
			repos.Catalog,
			s.DB,
			s.Job,
			s.Logger,
		),
	}
}
