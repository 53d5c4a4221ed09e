package repository

import (
	"context"
	"errors"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CatalogRepository reads the packages/destinations reference data.
type CatalogRepository struct {
	db DBTX
}

func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetPackage loads one package by id. Returns ErrNotFound when the id
// does not exist.
func (r *CatalogRepository) GetPackage(ctx context.Context, packageID int64) (*model.Package, error) {
	var p model.Package
	var price string
	err := r.db.QueryRow(ctx,
		`SELECT package_id, package_name, price::text, destination_id
		 FROM packages
		 WHERE package_id = $1`,
		packageID,
	).Scan(&p.ID, &p.Name, &price, &p.DestinationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every package joined to its destination, ordered by
// package name. The result is empty only right after a schema reset
// gone wrong; seeding always leaves ten packages.
func (r *CatalogRepository) List(ctx context.Context) ([]model.CatalogEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.package_id, p.package_name, d.destination_name, d.country, p.price::text
		 FROM packages p
		 JOIN destinations d ON p.destination_id = d.destination_id
		 ORDER BY p.package_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.CatalogEntry
	for rows.Next() {
		var e model.CatalogEntry
		var price string
		if err := rows.Scan(&e.PackageID, &e.PackageName, &e.DestinationName, &e.Country, &price); err != nil {
			return nil, err
		}
		e.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
