package repository

import (
	"context"
	"errors"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BookingRepository owns all queries against the bookings table and its
// joined projections.
type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// detailSelect is the joined projection behind lists and searches.
// Price is selected as text and parsed into decimal to avoid float
// rounding on the wire.
const detailSelect = `
	SELECT b.booking_id,
	       u.first_name || ' ' || u.last_name,
	       p.package_name,
	       d.destination_name,
	       d.country,
	       p.price::text,
	       b.booking_date
	FROM bookings b
	JOIN users u ON b.user_id = u.id
	JOIN packages p ON b.package_id = p.package_id
	JOIN destinations d ON p.destination_id = d.destination_id`

func scanDetails(rows pgx.Rows) ([]model.BookingDetail, error) {
	defer rows.Close()

	var details []model.BookingDetail
	for rows.Next() {
		var d model.BookingDetail
		var price string
		err := rows.Scan(&d.BookingID, &d.CustomerName, &d.PackageName,
			&d.DestinationName, &d.Country, &price, &d.BookingDate)
		if err != nil {
			return nil, err
		}
		d.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ListDetailed returns every booking, earliest booking date first. The
// id tie-break keeps the order stable for same-day bookings.
func (r *BookingRepository) ListDetailed(ctx context.Context) ([]model.BookingDetail, error) {
	rows, err := r.db.Query(ctx, detailSelect+` ORDER BY b.booking_date ASC, b.booking_id ASC`)
	if err != nil {
		return nil, err
	}
	return scanDetails(rows)
}

// Search returns the bookings matching the filter, ordered like
// ListDetailed.
func (r *BookingRepository) Search(ctx context.Context, filter BookingFilter) ([]model.BookingDetail, error) {
	clause, args := filter.predicate()
	q := detailSelect
	if clause != "" {
		q += "\n\t" + clause
	}
	q += ` ORDER BY b.booking_date ASC, b.booking_id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanDetails(rows)
}

// ListPicker returns compact booking rows for the update/delete pickers,
// newest booking date first.
func (r *BookingRepository) ListPicker(ctx context.Context) ([]model.BookingPickerItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.booking_id,
		        u.first_name || ' ' || u.last_name,
		        p.package_name,
		        b.booking_date
		 FROM bookings b
		 JOIN users u ON b.user_id = u.id
		 JOIN packages p ON b.package_id = p.package_id
		 ORDER BY b.booking_date DESC, b.booking_id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.BookingPickerItem
	for rows.Next() {
		var it model.BookingPickerItem
		if err := rows.Scan(&it.BookingID, &it.CustomerName, &it.PackageName, &it.BookingDate); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetEditView loads one booking together with its owning user, shaped
// for pre-filling the edit form. Returns ErrNotFound when the booking
// does not exist.
func (r *BookingRepository) GetEditView(ctx context.Context, bookingID int64) (*model.BookingEditView, error) {
	var v model.BookingEditView
	err := r.db.QueryRow(ctx,
		`SELECT b.booking_id, u.first_name, u.last_name, u.email, b.package_id, b.booking_date
		 FROM bookings b
		 JOIN users u ON b.user_id = u.id
		 WHERE b.booking_id = $1`,
		bookingID,
	).Scan(&v.BookingID, &v.FirstName, &v.LastName, &v.Email, &v.PackageID, &v.BookingDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// InsertTx creates a booking with an id from the sequence and reports
// the id back to the caller.
func (r *BookingRepository) InsertTx(ctx context.Context, tx pgx.Tx, userID, packageID int64, date model.Date) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO bookings (booking_id, user_id, package_id, booking_date)
		 VALUES (nextval('bookings_seq'), $1, $2, $3)
		 RETURNING booking_id`,
		userID, packageID, date,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateTx repoints a booking at a package and date. Returns ErrNotFound
// when the booking does not exist.
func (r *BookingRepository) UpdateTx(ctx context.Context, tx pgx.Tx, bookingID, packageID int64, date model.Date) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET package_id = $1, booking_date = $2 WHERE booking_id = $3`,
		packageID, date, bookingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a booking. The owning user stays; only the booking row
// goes. Returns ErrNotFound when the booking does not exist.
func (r *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM bookings WHERE booking_id = $1`, bookingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
