package database

import (
	"context"

	"github.com/shopspring/decimal"
)

// dropStatements tear the schema down in dependency order: bookings
// reference packages and users, packages reference destinations. IF EXISTS
// keeps the reset runnable against an empty database.
var dropStatements = []string{
	`DROP TABLE IF EXISTS bookings CASCADE`,
	`DROP TABLE IF EXISTS packages CASCADE`,
	`DROP TABLE IF EXISTS destinations CASCADE`,
	`DROP TABLE IF EXISTS users CASCADE`,
	`DROP SEQUENCE IF EXISTS users_seq`,
	`DROP SEQUENCE IF EXISTS bookings_seq`,
}

// createStatements rebuild the schema in reverse dependency order.
var createStatements = []string{
	`CREATE SEQUENCE users_seq
		START WITH 1
		INCREMENT BY 1
		MINVALUE 1
		MAXVALUE 9999999999
		CACHE 20
		NO CYCLE`,
	`CREATE SEQUENCE bookings_seq
		START WITH 1
		INCREMENT BY 1
		MINVALUE 1
		MAXVALUE 9999999999
		CACHE 20
		NO CYCLE`,
	`CREATE TABLE users (
		id bigint PRIMARY KEY,
		first_name varchar(50),
		last_name varchar(50),
		email varchar(100) UNIQUE
	)`,
	`CREATE TABLE destinations (
		destination_id bigint PRIMARY KEY,
		destination_name varchar(100),
		country varchar(100)
	)`,
	`CREATE TABLE packages (
		package_id bigint PRIMARY KEY,
		package_name varchar(100),
		price numeric(10,2),
		destination_id bigint REFERENCES destinations(destination_id)
	)`,
	`CREATE TABLE bookings (
		booking_id bigint PRIMARY KEY,
		user_id bigint REFERENCES users(id),
		package_id bigint REFERENCES packages(package_id),
		booking_date date
	)`,
}

type seedUser struct {
	firstName string
	lastName  string
	email     string
}

type seedDestination struct {
	id      int64
	name    string
	country string
}

type seedPackage struct {
	id            int64
	name          string
	price         decimal.Decimal
	destinationID int64
}

var seedUsers = []seedUser{
	{"Alice", "Johnson", "alice.johnson@example.com"},
	{"Bob", "Smith", "bob.smith@example.com"},
	{"Charlie", "Brown", "charlie.brown@example.com"},
	{"Diana", "Miller", "diana.miller@example.com"},
	{"Edward", "Wilson", "edward.wilson@example.com"},
}

var seedDestinations = []seedDestination{
	{1, "New York", "USA"},
	{2, "Paris", "France"},
	{3, "Rome", "Italy"},
	{4, "Tokyo", "Japan"},
	{5, "Toronto", "Canada"},
}

var seedPackages = []seedPackage{
	{1, "NYC City Break", decimal.RequireFromString("1500.00"), 1},
	{2, "NYC Shopping Special", decimal.RequireFromString("1700.00"), 1},
	{3, "Paris Budget Tour", decimal.RequireFromString("1400.00"), 2},
	{4, "Paris Luxury Tour", decimal.RequireFromString("2500.00"), 2},
	{5, "Rome Cultural Experience", decimal.RequireFromString("1800.00"), 3},
	{6, "Rome Family Package", decimal.RequireFromString("2300.00"), 3},
	{7, "Tokyo Adventure", decimal.RequireFromString("3000.00"), 4},
	{8, "Tokyo Traditional Tour", decimal.RequireFromString("2600.00"), 4},
	{9, "Toronto City Discovery", decimal.RequireFromString("1600.00"), 5},
	{10, "Toronto Niagara Falls Tour", decimal.RequireFromString("1800.00"), 5},
}

// Reset destructively replaces the whole schema and reseeds it.
//
// Drops, creates, and seed inserts run in a single transaction with one
// commit point: any failure rolls the entire reset back, so no partial
// schema is ever left committed. Running it twice leaves the same 5 users,
// 5 destinations, 10 packages, and 0 bookings.
func (db *Database) Reset(ctx context.Context) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, stmt := range dropStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	for _, stmt := range createStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	for _, u := range seedUsers {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, first_name, last_name, email)
			 VALUES (nextval('users_seq'), $1, $2, $3)`,
			u.firstName, u.lastName, u.email,
		)
		if err != nil {
			return err
		}
	}

	for _, d := range seedDestinations {
		_, err := tx.Exec(ctx,
			`INSERT INTO destinations (destination_id, destination_name, country)
			 VALUES ($1, $2, $3)`,
			d.id, d.name, d.country,
		)
		if err != nil {
			return err
		}
	}

	for _, p := range seedPackages {
		_, err := tx.Exec(ctx,
			`INSERT INTO packages (package_id, package_name, price, destination_id)
			 VALUES ($1, $2, $3, $4)`,
			p.id, p.name, p.price, p.destinationID,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	db.log.Info().
		Int("users", len(seedUsers)).
		Int("destinations", len(seedDestinations)).
		Int("packages", len(seedPackages)).
		Msg("schema reset complete")

	return nil
}
