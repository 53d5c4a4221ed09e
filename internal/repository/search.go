package repository

import (
	"fmt"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"

	"github.com/shopspring/decimal"
)

// SearchMode selects which booking filter applies. Exactly one mode is
// active per search; "none" returns every booking.
type SearchMode string

const (
	SearchModeNone        SearchMode = "none"
	SearchModeCustomer    SearchMode = "customer"
	SearchModeDestination SearchMode = "destination"
	SearchModeDateRange   SearchMode = "date_range"
	SearchModePriceRange  SearchMode = "price_range"
)

// BookingFilter carries the parameters for one search. Only the fields
// belonging to the active Mode are consulted.
type BookingFilter struct {
	Mode SearchMode

	FirstName string
	LastName  string

	Destination string

	DateFrom model.Date
	DateTo   model.Date

	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
}

// predicate builds the WHERE clause and bind arguments for the filter.
// An empty clause means no filtering.
func (f BookingFilter) predicate() (string, []any) {
	switch f.Mode {
	case SearchModeCustomer:
		// Substring match on both name parts; either may be blank, in
		// which case its pattern degenerates to match-all.
		return "WHERE u.first_name ILIKE $1 AND u.last_name ILIKE $2",
			[]any{contains(f.FirstName), contains(f.LastName)}

	case SearchModeDestination:
		return "WHERE (d.destination_name ILIKE $1 OR d.country ILIKE $1)",
			[]any{contains(f.Destination)}

	case SearchModeDateRange:
		return "WHERE b.booking_date BETWEEN $1 AND $2",
			[]any{f.DateFrom, f.DateTo}

	case SearchModePriceRange:
		return "WHERE p.price BETWEEN $1 AND $2",
			[]any{f.PriceMin, f.PriceMax}

	default:
		return "", nil
	}
}

func contains(s string) string {
	return fmt.Sprintf("%%%s%%", s)
}
