package repository

import (
	"context"
	"errors"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository owns all queries against the users table.
type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks a user up by email, case-insensitively. Returns
// ErrNotFound when no user has that email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email
		 FROM users
		 WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindOrCreateTx returns the id of the user with the given email,
// inserting a new row from the sequence if none exists yet.
//
// Lookup and insert happen in a single statement so two concurrent
// requests for the same new email cannot both pass a separate existence
// check. If both race past the CTE's existence probe, ON CONFLICT drops
// the loser's insert and a retry of the SELECT arm resolves the id.
func (r *UserRepository) FindOrCreateTx(ctx context.Context, tx pgx.Tx, firstName, lastName, email string) (int64, error) {
	const q = `
		WITH existing AS (
			SELECT id FROM users WHERE lower(email) = lower($3)
		), inserted AS (
			INSERT INTO users (id, first_name, last_name, email)
			SELECT nextval('users_seq'), $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM existing)
			ON CONFLICT (email) DO NOTHING
			RETURNING id
		)
		SELECT id FROM inserted
		UNION ALL
		SELECT id FROM existing
		LIMIT 1`

	var id int64
	err := tx.QueryRow(ctx, q, firstName, lastName, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Both arms empty: a concurrent insert won the conflict after our
		// existence probe. The row is there now, resolve it directly.
		err = tx.QueryRow(ctx,
			`SELECT id FROM users WHERE lower(email) = lower($1)`, email,
		).Scan(&id)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateOwnerTx rewrites the name and email of the user who owns the
// given booking. Returns ErrNotFound when the booking does not exist.
func (r *UserRepository) UpdateOwnerTx(ctx context.Context, tx pgx.Tx, firstName, lastName, email string, bookingID int64) error {
	tag, err := tx.Exec(ctx,
		`UPDATE users
		 SET first_name = $1, last_name = $2, email = $3
		 WHERE id = (SELECT user_id FROM bookings WHERE booking_id = $4)`,
		firstName, lastName, email, bookingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
