package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/errs"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/lib/job"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TxBeginner starts transactions. Satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type userStore interface {
	FindOrCreateTx(ctx context.Context, tx pgx.Tx, firstName, lastName, email string) (int64, error)
	UpdateOwnerTx(ctx context.Context, tx pgx.Tx, firstName, lastName, email string, bookingID int64) error
}

type bookingStore interface {
	ListDetailed(ctx context.Context) ([]model.BookingDetail, error)
	ListPicker(ctx context.Context) ([]model.BookingPickerItem, error)
	GetEditView(ctx context.Context, bookingID int64) (*model.BookingEditView, error)
	InsertTx(ctx context.Context, tx pgx.Tx, userID, packageID int64, date model.Date) (int64, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, bookingID, packageID int64, date model.Date) error
	Delete(ctx context.Context, bookingID int64) error
	Search(ctx context.Context, filter repository.BookingFilter) ([]model.BookingDetail, error)
}

type catalogStore interface {
	List(ctx context.Context) ([]model.CatalogEntry, error)
	GetPackage(ctx context.Context, packageID int64) (*model.Package, error)
}

type schemaResetter interface {
	Reset(ctx context.Context) error
}

// BookingService implements the booking business rules: customer
// find-or-create by email, transactional create/update, the joined read
// projections, and the destructive schema reset.
type BookingService struct {
	db       TxBeginner
	users    userStore
	bookings bookingStore
	catalog  catalogStore
	schema   schemaResetter
	jobs     *job.JobService
	logger   *zerolog.Logger
}

func NewBookingService(
	db TxBeginner,
	users userStore,
	bookings bookingStore,
	catalog catalogStore,
	schema schemaResetter,
	jobs *job.JobService,
	logger *zerolog.Logger,
) *BookingService {
	return &BookingService{
		db:       db,
		users:    users,
		bookings: bookings,
		catalog:  catalog,
		schema:   schema,
		jobs:     jobs,
		logger:   logger,
	}
}

// CreateBookingInput carries the validated fields for a new booking.
type CreateBookingInput struct {
	FirstName string
	LastName  string
	Email     string
	PackageID int64
	Date      model.Date
}

// UpdateBookingInput carries the validated fields for rewriting an
// existing booking and its owning user.
type UpdateBookingInput struct {
	BookingID int64
	FirstName string
	LastName  string
	Email     string
	PackageID int64
	Date      model.Date
}

// validateBookingFields guards the invariants handlers already enforce.
// The service is also driven by the reset CLI and by tests, so it cannot
// rely on the HTTP layer having run.
func validateBookingFields(firstName, lastName, email string, packageID int64, date model.Date) error {
	var fieldErrors []errs.FieldError

	if strings.TrimSpace(firstName) == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "first_name", Error: "is required"})
	}
	if strings.TrimSpace(lastName) == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "last_name", Error: "is required"})
	}
	if !strings.Contains(email, "@") {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "email", Error: "must contain \"@\""})
	}
	if packageID <= 0 {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "package_id", Error: "must be greater than 0"})
	}
	if date.IsZero() {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "booking_date", Error: "is required"})
	}

	if fieldErrors != nil {
		return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors)
	}
	return nil
}

// Create books a package for the customer identified by email.
//
// The user lookup/creation and the booking insert share one transaction:
// if the insert fails (say, an unknown package id) the freshly created
// user rolls back with it, so no orphan users accumulate. The
// confirmation email is enqueued only after commit and is best effort.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*model.Booking, error) {
	if err := validateBookingFields(input.FirstName, input.LastName, input.Email, input.PackageID, input.Date); err != nil {
		return nil, err
	}
	if input.Date.Before(model.Today()) {
		return nil, errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
			{Field: "booking_date", Error: "must not be in the past"},
		})
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	userID, err := s.users.FindOrCreateTx(ctx, tx, input.FirstName, input.LastName, input.Email)
	if err != nil {
		return nil, err
	}

	bookingID, err := s.bookings.InsertTx(ctx, tx, userID, input.PackageID, input.Date)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		ID:        bookingID,
		UserID:    userID,
		PackageID: input.PackageID,
		Date:      input.Date,
	}

	s.logger.Info().
		Int64("booking_id", bookingID).
		Int64("user_id", userID).
		Int64("package_id", input.PackageID).
		Msg("booking created")

	s.enqueueConfirmation(booking, input)

	return booking, nil
}

// enqueueConfirmation queues the confirmation email for a committed
// booking. Failures are logged and swallowed: the booking already
// exists, losing the email must not fail the request.
func (s *BookingService) enqueueConfirmation(booking *model.Booking, input CreateBookingInput) {
	if s.jobs == nil {
		return
	}

	// Detached context: the request may already be finishing.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pkg, err := s.catalog.GetPackage(ctx, booking.PackageID)
	if err != nil {
		s.logger.Warn().Err(err).
			Int64("booking_id", booking.ID).
			Msg("could not load package for confirmation email")
		return
	}

	task, err := job.NewBookingConfirmationTask(job.BookingConfirmationPayload{
		To:          input.Email,
		FirstName:   input.FirstName,
		PackageName: pkg.Name,
		BookingDate: booking.Date.String(),
		BookingID:   booking.ID,
	})
	if err != nil {
		s.logger.Warn().Err(err).
			Int64("booking_id", booking.ID).
			Msg("could not build confirmation email task")
		return
	}

	if _, err := s.jobs.Client.EnqueueContext(ctx, task); err != nil {
		s.logger.Warn().Err(err).
			Int64("booking_id", booking.ID).
			Msg("could not enqueue confirmation email")
	}
}

// Update rewrites a booking's package and date together with its owning
// user's name and email, all in one transaction.
func (s *BookingService) Update(ctx context.Context, input UpdateBookingInput) error {
	if err := validateBookingFields(input.FirstName, input.LastName, input.Email, input.PackageID, input.Date); err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.users.UpdateOwnerTx(ctx, tx, input.FirstName, input.LastName, input.Email, input.BookingID); err != nil {
		return s.mapNotFound(err)
	}

	if err := s.bookings.UpdateTx(ctx, tx, input.BookingID, input.PackageID, input.Date); err != nil {
		return s.mapNotFound(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.logger.Info().
		Int64("booking_id", input.BookingID).
		Int64("package_id", input.PackageID).
		Msg("booking updated")

	return nil
}

// Delete removes a booking. The customer record survives.
func (s *BookingService) Delete(ctx context.Context, bookingID int64) error {
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return s.mapNotFound(err)
	}

	s.logger.Info().
		Int64("booking_id", bookingID).
		Msg("booking deleted")

	return nil
}

// List returns all bookings with their joined detail, numbering the
// rows 1-based for display.
func (s *BookingService) List(ctx context.Context) ([]model.BookingDetail, error) {
	details, err := s.bookings.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i].RowNumber = i + 1
	}
	return details, nil
}

// ListPicker returns the compact picker rows, newest booking date first.
func (s *BookingService) ListPicker(ctx context.Context) ([]model.BookingPickerItem, error) {
	return s.bookings.ListPicker(ctx)
}

// Get returns one booking shaped for the edit form.
func (s *BookingService) Get(ctx context.Context, bookingID int64) (*model.BookingEditView, error) {
	view, err := s.bookings.GetEditView(ctx, bookingID)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return view, nil
}

// Search returns the bookings matching the filter, numbered like List.
func (s *BookingService) Search(ctx context.Context, filter repository.BookingFilter) ([]model.BookingDetail, error) {
	details, err := s.bookings.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i].RowNumber = i + 1
	}
	return details, nil
}

// Catalog returns the package catalog used by the booking form.
func (s *BookingService) Catalog(ctx context.Context) ([]model.CatalogEntry, error) {
	return s.catalog.List(ctx)
}

// ResetSchema destructively rebuilds the schema with seed data.
func (s *BookingService) ResetSchema(ctx context.Context) error {
	return s.schema.Reset(ctx)
}

func (s *BookingService) mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError("Booking not found", true, nil)
	}
	return err
}
