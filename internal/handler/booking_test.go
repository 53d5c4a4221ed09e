package handler

import (
	"testing"
	"time"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/repository"

	"github.com/shopspring/decimal"
)

func futureDate() model.Date {
	return model.Date{Time: model.Today().AddDate(0, 1, 0)}
}

func validCreate() CreateBookingRequest {
	return CreateBookingRequest{
		FirstName:   "Alice",
		LastName:    "Johnson",
		Email:       "alice.johnson@example.com",
		PackageID:   1,
		BookingDate: futureDate(),
	}
}

func TestCreateBookingRequestValid(t *testing.T) {
	req := validCreate()
	if err := req.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestCreateBookingRequestRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"missing first name", func(r *CreateBookingRequest) { r.FirstName = "" }},
		{"missing last name", func(r *CreateBookingRequest) { r.LastName = "" }},
		{"missing email", func(r *CreateBookingRequest) { r.Email = "" }},
		{"email without at sign", func(r *CreateBookingRequest) { r.Email = "alice.example.com" }},
		{"zero package id", func(r *CreateBookingRequest) { r.PackageID = 0 }},
		{"negative package id", func(r *CreateBookingRequest) { r.PackageID = -1 }},
		{"missing booking date", func(r *CreateBookingRequest) { r.BookingDate = model.Date{} }},
		{"past booking date", func(r *CreateBookingRequest) {
			r.BookingDate = model.Date{Time: model.Today().AddDate(0, 0, -1)}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)
			if err := req.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreateBookingRequestTodayIsAllowed(t *testing.T) {
	req := validCreate()
	req.BookingDate = model.Today()
	if err := req.Validate(); err != nil {
		t.Errorf("same-day bookings should be allowed: %v", err)
	}
}

func TestUpdateBookingRequestAllowsPastDates(t *testing.T) {
	req := UpdateBookingRequest{
		ID:          3,
		FirstName:   "Bob",
		LastName:    "Smith",
		Email:       "bob.smith@example.com",
		PackageID:   2,
		BookingDate: model.Date{Time: model.Today().AddDate(-1, 0, 0)},
	}
	if err := req.Validate(); err != nil {
		t.Errorf("past dates on update should be allowed: %v", err)
	}

	req.BookingDate = model.Date{}
	if err := req.Validate(); err == nil {
		t.Error("missing date should be rejected")
	}
}

func TestSearchBookingsRequestModes(t *testing.T) {
	from := model.NewDate(2026, time.September, 1)
	to := model.NewDate(2026, time.September, 30)
	lo := decimal.RequireFromString("1400")
	hi := decimal.RequireFromString("1800")

	cases := []struct {
		name    string
		req     SearchBookingsRequest
		wantErr bool
	}{
		{"none mode", SearchBookingsRequest{Mode: "none"}, false},
		{"unknown mode", SearchBookingsRequest{Mode: "by_moon_phase"}, true},
		{"customer with blanks", SearchBookingsRequest{Mode: "customer"}, false},
		{"destination with term", SearchBookingsRequest{Mode: "destination", Destination: "fra"}, false},
		{"destination without term", SearchBookingsRequest{Mode: "destination"}, true},
		{"date range", SearchBookingsRequest{Mode: "date_range", DateFrom: &from, DateTo: &to}, false},
		{"date range missing end", SearchBookingsRequest{Mode: "date_range", DateFrom: &from}, true},
		{"date range reversed", SearchBookingsRequest{Mode: "date_range", DateFrom: &to, DateTo: &from}, true},
		{"price range", SearchBookingsRequest{Mode: "price_range", PriceMin: &lo, PriceMax: &hi}, false},
		{"price range missing min", SearchBookingsRequest{Mode: "price_range", PriceMax: &hi}, true},
		{"price range reversed", SearchBookingsRequest{Mode: "price_range", PriceMin: &hi, PriceMax: &lo}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSearchBookingsRequestNegativePrice(t *testing.T) {
	neg := decimal.RequireFromString("-1")
	hi := decimal.RequireFromString("100")
	req := SearchBookingsRequest{Mode: "price_range", PriceMin: &neg, PriceMax: &hi}
	if err := req.Validate(); err == nil {
		t.Error("negative prices should be rejected")
	}
}

func TestSearchBookingsRequestToFilter(t *testing.T) {
	from := model.NewDate(2026, time.October, 1)
	to := model.NewDate(2026, time.October, 15)

	req := SearchBookingsRequest{
		Mode:     "date_range",
		DateFrom: &from,
		DateTo:   &to,
	}

	f := req.ToFilter()
	if f.Mode != repository.SearchModeDateRange {
		t.Errorf("mode = %q", f.Mode)
	}
	if f.DateFrom != from || f.DateTo != to {
		t.Errorf("dates = %v..%v", f.DateFrom, f.DateTo)
	}
}
