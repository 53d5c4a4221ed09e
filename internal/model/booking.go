package model

import "github.com/shopspring/decimal"

// Booking links a user to a package on a date. The id comes from the
// bookings_seq sequence.
type Booking struct {
	ID        int64 `json:"booking_id"`
	UserID    int64 `json:"user_id"`
	PackageID int64 `json:"package_id"`
	Date      Date  `json:"booking_date"`
}

// BookingDetail is the joined projection shown in booking lists and
// search results.
//
// RowNumber is a presentation-only 1-based position derived at read time.
// It is never persisted and must not be used to address a booking in
// later operations; BookingID is the stable identifier.
type BookingDetail struct {
	RowNumber       int             `json:"row_number,omitempty"`
	BookingID       int64           `json:"booking_id"`
	CustomerName    string          `json:"customer_name"`
	PackageName     string          `json:"package_name"`
	DestinationName string          `json:"destination_name"`
	Country         string          `json:"country"`
	Price           decimal.Decimal `json:"price"`
	BookingDate     Date            `json:"booking_date"`
}

// BookingPickerItem is the compact row shown in the update/delete
// pickers, listed newest booking date first.
type BookingPickerItem struct {
	BookingID    int64  `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	PackageName  string `json:"package_name"`
	BookingDate  Date   `json:"booking_date"`
}

// BookingEditView carries the current state of a booking and its owning
// user, used to pre-fill the edit form.
type BookingEditView struct {
	BookingID   int64  `json:"booking_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PackageID   int64  `json:"package_id"`
	BookingDate Date   `json:"booking_date"`
}
