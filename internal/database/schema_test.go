package database

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// Bookings depend on packages and users, and packages depend on
// destinations, so drops must run child-first and creates parent-first.
func TestDropOrderIsChildFirst(t *testing.T) {
	wantOrder := []string{"bookings", "packages", "destinations", "users"}

	var got []string
	for _, stmt := range dropStatements {
		if !strings.HasPrefix(stmt, "DROP TABLE") {
			continue
		}
		for _, table := range wantOrder {
			if strings.Contains(stmt, table) {
				got = append(got, table)
			}
		}
	}

	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d table drops, got %d", len(wantOrder), len(got))
	}
	for i, table := range wantOrder {
		if got[i] != table {
			t.Errorf("drop %d: got %q, want %q", i, got[i], table)
		}
	}
}

func TestCreateOrderIsParentFirst(t *testing.T) {
	pos := func(table string) int {
		for i, stmt := range createStatements {
			if strings.Contains(stmt, "CREATE TABLE "+table) {
				return i
			}
		}
		t.Fatalf("no CREATE TABLE statement for %q", table)
		return -1
	}

	if pos("users") > pos("bookings") || pos("packages") > pos("bookings") {
		t.Error("bookings must be created after users and packages")
	}
	if pos("destinations") > pos("packages") {
		t.Error("packages must be created after destinations")
	}
}

func TestSequencesCreatedBeforeTables(t *testing.T) {
	seenTable := false
	for _, stmt := range createStatements {
		if strings.HasPrefix(stmt, "CREATE TABLE") {
			seenTable = true
		}
		if strings.HasPrefix(stmt, "CREATE SEQUENCE") && seenTable {
			t.Fatal("sequences must be created before tables")
		}
	}
}

func TestSeedDataShape(t *testing.T) {
	if len(seedUsers) != 5 {
		t.Errorf("seed users: got %d, want 5", len(seedUsers))
	}
	if len(seedDestinations) != 5 {
		t.Errorf("seed destinations: got %d, want 5", len(seedDestinations))
	}
	if len(seedPackages) != 10 {
		t.Errorf("seed packages: got %d, want 10", len(seedPackages))
	}

	destIDs := make(map[int64]bool, len(seedDestinations))
	for i, d := range seedDestinations {
		if d.id != int64(i+1) {
			t.Errorf("destination %d: caller-assigned id %d, want %d", i, d.id, i+1)
		}
		destIDs[d.id] = true
	}

	emails := make(map[string]bool, len(seedUsers))
	for _, u := range seedUsers {
		if emails[u.email] {
			t.Errorf("duplicate seed email %q", u.email)
		}
		emails[u.email] = true
	}

	for i, p := range seedPackages {
		if p.id != int64(i+1) {
			t.Errorf("package %d: caller-assigned id %d, want %d", i, p.id, i+1)
		}
		if !destIDs[p.destinationID] {
			t.Errorf("package %q references unknown destination %d", p.name, p.destinationID)
		}
		if p.price.Exponent() < -2 {
			t.Errorf("package %q price %s has more than 2 decimal places", p.name, p.price)
		}
	}
}

// A price range of [1400, 1800] against the seeded catalog matches
// exactly these six packages, both endpoints included.
func TestSeedPriceRangeProperty(t *testing.T) {
	min := decimal.RequireFromString("1400.00")
	max := decimal.RequireFromString("1800.00")

	want := map[string]bool{
		"NYC City Break":             true,
		"NYC Shopping Special":       true,
		"Paris Budget Tour":          true,
		"Rome Cultural Experience":   true,
		"Toronto City Discovery":     true,
		"Toronto Niagara Falls Tour": true,
	}

	got := make(map[string]bool)
	for _, p := range seedPackages {
		if p.price.GreaterThanOrEqual(min) && p.price.LessThanOrEqual(max) {
			got[p.name] = true
		}
	}

	if len(got) != len(want) {
		t.Fatalf("got %d packages in range, want %d: %v", len(got), len(want), got)
	}
	for name := range want {
		if !got[name] {
			t.Errorf("expected %q in price range", name)
		}
	}
}
