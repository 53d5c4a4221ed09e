package handler

import (
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/repository"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/service"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BookingHandler exposes the booking CRUD and search endpoints.
type BookingHandler struct {
	Handler
	bookings *service.BookingService
}

func NewBookingHandler(s *server.Server, bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler:  NewHandler(s),
		bookings: bookings,
	}
}

// EmptyRequest is the payload type for endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// CreateBookingRequest books a package for a customer. The customer is
// identified by email: an existing user (matched case-insensitively) is
// reused, otherwise a new one is created.
type CreateBookingRequest struct {
	FirstName   string     `json:"first_name" validate:"required,max=50"`
	LastName    string     `json:"last_name" validate:"required,max=50"`
	Email       string     `json:"email" validate:"required,max=100,contains=@"`
	PackageID   int64      `json:"package_id" validate:"required,gt=0"`
	BookingDate model.Date `json:"booking_date"`
}

func (r *CreateBookingRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	if r.BookingDate.IsZero() {
		custom = append(custom, validation.CustomValidationError{
			Field:   "booking_date",
			Message: "is required",
		})
	} else if r.BookingDate.Before(model.Today()) {
		custom = append(custom, validation.CustomValidationError{
			Field:   "booking_date",
			Message: "must not be in the past",
		})
	}

	if len(custom) > 0 {
		return custom
	}
	return nil
}

// UpdateBookingRequest rewrites a booking and its owning user's details.
// Unlike creation, past dates are allowed so historical bookings can be
// corrected.
type UpdateBookingRequest struct {
	ID          int64      `param:"id" validate:"required,gt=0"`
	FirstName   string     `json:"first_name" validate:"required,max=50"`
	LastName    string     `json:"last_name" validate:"required,max=50"`
	Email       string     `json:"email" validate:"required,max=100,contains=@"`
	PackageID   int64      `json:"package_id" validate:"required,gt=0"`
	BookingDate model.Date `json:"booking_date"`
}

func (r *UpdateBookingRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if r.BookingDate.IsZero() {
		return validation.CustomValidationErrors{{
			Field:   "booking_date",
			Message: "is required",
		}}
	}
	return nil
}

// GetBookingRequest addresses one booking by id.
type GetBookingRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetBookingRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteBookingRequest addresses one booking by id.
type DeleteBookingRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *DeleteBookingRequest) Validate() error {
	return validation.Struct(r)
}

// SearchBookingsRequest selects one search mode and its parameters.
// Fields outside the active mode are ignored.
type SearchBookingsRequest struct {
	Mode        string           `json:"mode" validate:"required,oneof=none customer destination date_range price_range"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Destination string           `json:"destination"`
	DateFrom    *model.Date      `json:"date_from"`
	DateTo      *model.Date      `json:"date_to"`
	PriceMin    *decimal.Decimal `json:"price_min"`
	PriceMax    *decimal.Decimal `json:"price_max"`
}

func (r *SearchBookingsRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors

	switch repository.SearchMode(r.Mode) {
	case repository.SearchModeDateRange:
		if r.DateFrom == nil || r.DateFrom.IsZero() {
			custom = append(custom, validation.CustomValidationError{Field: "date_from", Message: "is required"})
		}
		if r.DateTo == nil || r.DateTo.IsZero() {
			custom = append(custom, validation.CustomValidationError{Field: "date_to", Message: "is required"})
		}
		if len(custom) == 0 && r.DateTo.Before(*r.DateFrom) {
			custom = append(custom, validation.CustomValidationError{Field: "date_to", Message: "must not be before date_from"})
		}

	case repository.SearchModePriceRange:
		if r.PriceMin == nil {
			custom = append(custom, validation.CustomValidationError{Field: "price_min", Message: "is required"})
		} else if r.PriceMin.IsNegative() {
			custom = append(custom, validation.CustomValidationError{Field: "price_min", Message: "must not be negative"})
		}
		if r.PriceMax == nil {
			custom = append(custom, validation.CustomValidationError{Field: "price_max", Message: "is required"})
		}
		if r.PriceMin != nil && r.PriceMax != nil && r.PriceMax.LessThan(*r.PriceMin) {
			custom = append(custom, validation.CustomValidationError{Field: "price_max", Message: "must not be less than price_min"})
		}

	case repository.SearchModeDestination:
		if r.Destination == "" {
			custom = append(custom, validation.CustomValidationError{Field: "destination", Message: "is required"})
		}
	}

	if len(custom) > 0 {
		return custom
	}
	return nil
}

// ToFilter converts the validated request into a repository filter.
func (r *SearchBookingsRequest) ToFilter() repository.BookingFilter {
	f := repository.BookingFilter{
		Mode:        repository.SearchMode(r.Mode),
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Destination: r.Destination,
	}
	if r.DateFrom != nil {
		f.DateFrom = *r.DateFrom
	}
	if r.DateTo != nil {
		f.DateTo = *r.DateTo
	}
	if r.PriceMin != nil {
		f.PriceMin = *r.PriceMin
	}
	if r.PriceMax != nil {
		f.PriceMax = *r.PriceMax
	}
	return f
}

// List returns every booking with its joined detail, first booking first.
func (h *BookingHandler) List(c echo.Context, req *EmptyRequest) ([]model.BookingDetail, error) {
	return h.bookings.List(c.Request().Context())
}

// ListPicker returns the compact picker rows, newest date first.
func (h *BookingHandler) ListPicker(c echo.Context, req *EmptyRequest) ([]model.BookingPickerItem, error) {
	return h.bookings.ListPicker(c.Request().Context())
}

// Get returns one booking shaped for the edit form.
func (h *BookingHandler) Get(c echo.Context, req *GetBookingRequest) (*model.BookingEditView, error) {
	return h.bookings.Get(c.Request().Context(), req.ID)
}

// Create books a package and reports the new booking.
func (h *BookingHandler) Create(c echo.Context, req *CreateBookingRequest) (*model.Booking, error) {
	return h.bookings.Create(c.Request().Context(), service.CreateBookingInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PackageID: req.PackageID,
		Date:      req.BookingDate,
	})
}

// Update rewrites a booking and its owner's details.
func (h *BookingHandler) Update(c echo.Context, req *UpdateBookingRequest) error {
	return h.bookings.Update(c.Request().Context(), service.UpdateBookingInput{
		BookingID: req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PackageID: req.PackageID,
		Date:      req.BookingDate,
	})
}

// Delete removes a booking.
func (h *BookingHandler) Delete(c echo.Context, req *DeleteBookingRequest) error {
	return h.bookings.Delete(c.Request().Context(), req.ID)
}

// Search returns the bookings matching the request's filter.
func (h *BookingHandler) Search(c echo.Context, req *SearchBookingsRequest) ([]model.BookingDetail, error) {
	return h.bookings.Search(c.Request().Context(), req.ToFilter())
}
