package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"

	"github.com/shopspring/decimal"
)

func TestPredicateNone(t *testing.T) {
	clause, args := BookingFilter{Mode: SearchModeNone}.predicate()
	if clause != "" || args != nil {
		t.Errorf("none mode should not filter, got %q %v", clause, args)
	}
}

func TestPredicateCustomer(t *testing.T) {
	f := BookingFilter{Mode: SearchModeCustomer, FirstName: "Ali", LastName: "John"}
	clause, args := f.predicate()

	if clause != "WHERE u.first_name ILIKE $1 AND u.last_name ILIKE $2" {
		t.Errorf("clause = %q", clause)
	}
	if !reflect.DeepEqual(args, []any{"%Ali%", "%John%"}) {
		t.Errorf("args = %v", args)
	}
}

func TestPredicateCustomerBlankNamesMatchAll(t *testing.T) {
	_, args := BookingFilter{Mode: SearchModeCustomer}.predicate()
	if !reflect.DeepEqual(args, []any{"%%", "%%"}) {
		t.Errorf("blank names should produce match-all patterns, got %v", args)
	}
}

func TestPredicateDestination(t *testing.T) {
	f := BookingFilter{Mode: SearchModeDestination, Destination: "fran"}
	clause, args := f.predicate()

	if clause != "WHERE (d.destination_name ILIKE $1 OR d.country ILIKE $1)" {
		t.Errorf("clause = %q", clause)
	}
	if !reflect.DeepEqual(args, []any{"%fran%"}) {
		t.Errorf("args = %v", args)
	}
}

func TestPredicateDateRange(t *testing.T) {
	from := model.NewDate(2026, time.September, 1)
	to := model.NewDate(2026, time.September, 30)
	clause, args := BookingFilter{Mode: SearchModeDateRange, DateFrom: from, DateTo: to}.predicate()

	if clause != "WHERE b.booking_date BETWEEN $1 AND $2" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 2 || args[0] != from || args[1] != to {
		t.Errorf("args = %v", args)
	}
}

func TestPredicatePriceRange(t *testing.T) {
	lo := decimal.RequireFromString("1400")
	hi := decimal.RequireFromString("1800")
	clause, args := BookingFilter{Mode: SearchModePriceRange, PriceMin: lo, PriceMax: hi}.predicate()

	if clause != "WHERE p.price BETWEEN $1 AND $2" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 2 {
		t.Fatalf("args = %v", args)
	}
	if !args[0].(decimal.Decimal).Equal(lo) || !args[1].(decimal.Decimal).Equal(hi) {
		t.Errorf("args = %v", args)
	}
}
