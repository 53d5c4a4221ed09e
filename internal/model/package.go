package model

import "github.com/shopspring/decimal"

// Package is a bookable tour package. Like destinations it is seeded
// reference data with a caller-assigned id. Price is fixed-point currency
// with two decimal places.
type Package struct {
	ID            int64           `json:"package_id"`
	Name          string          `json:"package_name"`
	Price         decimal.Decimal `json:"price"`
	DestinationID int64           `json:"destination_id"`
}

// CatalogEntry is a package joined to its destination: the shopping list
// shown when creating a booking, ordered by package name.
type CatalogEntry struct {
	PackageID       int64           `json:"package_id"`
	PackageName     string          `json:"package_name"`
	DestinationName string          `json:"destination_name"`
	Country         string          `json:"country"`
	Price           decimal.Decimal `json:"price"`
}
