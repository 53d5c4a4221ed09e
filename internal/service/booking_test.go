package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/errs"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/model"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// fakeTx satisfies pgx.Tx and records commit/rollback calls. The query
// methods are never reached because the stores are faked too.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                              { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

type fakeUserStore struct {
	findOrCreateID  int64
	findOrCreateErr error
	updateOwnerErr  error

	createdEmails []string
}

func (f *fakeUserStore) FindOrCreateTx(ctx context.Context, tx pgx.Tx, firstName, lastName, email string) (int64, error) {
	if f.findOrCreateErr != nil {
		return 0, f.findOrCreateErr
	}
	f.createdEmails = append(f.createdEmails, email)
	return f.findOrCreateID, nil
}

func (f *fakeUserStore) UpdateOwnerTx(ctx context.Context, tx pgx.Tx, firstName, lastName, email string, bookingID int64) error {
	return f.updateOwnerErr
}

type fakeBookingStore struct {
	insertID  int64
	insertErr error
	updateErr error
	deleteErr error
	getView   *model.BookingEditView
	getErr    error
	details   []model.BookingDetail

	inserted bool
}

func (f *fakeBookingStore) ListDetailed(ctx context.Context) ([]model.BookingDetail, error) {
	return f.details, nil
}

func (f *fakeBookingStore) ListPicker(ctx context.Context) ([]model.BookingPickerItem, error) {
	return nil, nil
}

func (f *fakeBookingStore) GetEditView(ctx context.Context, bookingID int64) (*model.BookingEditView, error) {
	return f.getView, f.getErr
}

func (f *fakeBookingStore) InsertTx(ctx context.Context, tx pgx.Tx, userID, packageID int64, date model.Date) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = true
	return f.insertID, nil
}

func (f *fakeBookingStore) UpdateTx(ctx context.Context, tx pgx.Tx, bookingID, packageID int64, date model.Date) error {
	return f.updateErr
}

func (f *fakeBookingStore) Delete(ctx context.Context, bookingID int64) error {
	return f.deleteErr
}

func (f *fakeBookingStore) Search(ctx context.Context, filter repository.BookingFilter) ([]model.BookingDetail, error) {
	return f.details, nil
}

type fakeCatalogStore struct{}

func (f *fakeCatalogStore) List(ctx context.Context) ([]model.CatalogEntry, error) {
	return nil, nil
}

func (f *fakeCatalogStore) GetPackage(ctx context.Context, packageID int64) (*model.Package, error) {
	return nil, repository.ErrNotFound
}

type fakeSchema struct {
	resets int
}

func (f *fakeSchema) Reset(ctx context.Context) error {
	f.resets++
	return nil
}

func newTestService(tx *fakeTx, users *fakeUserStore, bookings *fakeBookingStore) *BookingService {
	logger := zerolog.Nop()
	return NewBookingService(
		&fakeBeginner{tx: tx},
		users,
		bookings,
		&fakeCatalogStore{},
		&fakeSchema{},
		nil,
		&logger,
	)
}

func tomorrow() model.Date {
	return model.Date{Time: model.Today().AddDate(0, 0, 1)}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		FirstName: "Alice",
		LastName:  "Johnson",
		Email:     "alice.johnson@example.com",
		PackageID: 3,
		Date:      tomorrow(),
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"blank first name", func(in *CreateBookingInput) { in.FirstName = "  " }},
		{"blank last name", func(in *CreateBookingInput) { in.LastName = "" }},
		{"email without at sign", func(in *CreateBookingInput) { in.Email = "alice.example.com" }},
		{"zero package id", func(in *CreateBookingInput) { in.PackageID = 0 }},
		{"negative package id", func(in *CreateBookingInput) { in.PackageID = -4 }},
		{"missing date", func(in *CreateBookingInput) { in.Date = model.Date{} }},
		{"past date", func(in *CreateBookingInput) {
			in.Date = model.Date{Time: model.Today().AddDate(0, 0, -1)}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := &fakeTx{}
			svc := newTestService(tx, &fakeUserStore{}, &fakeBookingStore{})

			input := validInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *errs.HTTPError, got %v", err)
			}
			if httpErr.Status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", httpErr.Status)
			}
			if tx.committed {
				t.Error("no transaction should commit for invalid input")
			}
		})
	}
}

func TestCreateBooksPackageForExistingUser(t *testing.T) {
	tx := &fakeTx{}
	users := &fakeUserStore{findOrCreateID: 7}
	bookings := &fakeBookingStore{insertID: 42}
	svc := newTestService(tx, users, bookings)

	input := validInput()
	booking, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.ID != 42 || booking.UserID != 7 || booking.PackageID != 3 {
		t.Errorf("booking = %+v", booking)
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
	if len(users.createdEmails) != 1 || users.createdEmails[0] != input.Email {
		t.Errorf("find-or-create calls = %v", users.createdEmails)
	}
}

func TestCreateRollsBackWhenInsertFails(t *testing.T) {
	tx := &fakeTx{}
	users := &fakeUserStore{findOrCreateID: 7}
	bookings := &fakeBookingStore{insertErr: errors.New("fk violation")}
	svc := newTestService(tx, users, bookings)

	_, err := svc.Create(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected error")
	}

	if tx.committed {
		t.Error("failed create must not commit")
	}
	if !tx.rolledBack {
		t.Error("failed create must roll back, or the new user row leaks")
	}
}

func TestUpdateMapsMissingBookingTo404(t *testing.T) {
	tx := &fakeTx{}
	users := &fakeUserStore{updateOwnerErr: repository.ErrNotFound}
	svc := newTestService(tx, users, &fakeBookingStore{})

	err := svc.Update(context.Background(), UpdateBookingInput{
		BookingID: 99,
		FirstName: "Bob",
		LastName:  "Smith",
		Email:     "bob.smith@example.com",
		PackageID: 1,
		Date:      tomorrow(),
	})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
	if tx.committed {
		t.Error("update of a missing booking must not commit")
	}
}

func TestUpdateAllowsPastDates(t *testing.T) {
	tx := &fakeTx{}
	svc := newTestService(tx, &fakeUserStore{}, &fakeBookingStore{})

	err := svc.Update(context.Background(), UpdateBookingInput{
		BookingID: 1,
		FirstName: "Bob",
		LastName:  "Smith",
		Email:     "bob.smith@example.com",
		PackageID: 1,
		Date:      model.Date{Time: model.Today().AddDate(0, 0, -30)},
	})
	if err != nil {
		t.Fatalf("historical corrections should be allowed: %v", err)
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
}

func TestDeleteMapsMissingBookingTo404(t *testing.T) {
	svc := newTestService(&fakeTx{}, &fakeUserStore{}, &fakeBookingStore{deleteErr: repository.ErrNotFound})

	err := svc.Delete(context.Background(), 123)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
}

func TestGetMapsMissingBookingTo404(t *testing.T) {
	svc := newTestService(&fakeTx{}, &fakeUserStore{}, &fakeBookingStore{getErr: repository.ErrNotFound})

	_, err := svc.Get(context.Background(), 5)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
}

func TestListNumbersRowsFromOne(t *testing.T) {
	details := []model.BookingDetail{
		{BookingID: 10, CustomerName: "Alice Johnson"},
		{BookingID: 11, CustomerName: "Bob Smith"},
		{BookingID: 15, CustomerName: "Diana Miller"},
	}
	svc := newTestService(&fakeTx{}, &fakeUserStore{}, &fakeBookingStore{details: details})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	for i, d := range got {
		if d.RowNumber != i+1 {
			t.Errorf("row %d has RowNumber %d", i, d.RowNumber)
		}
	}
}

func TestResetSchemaDelegates(t *testing.T) {
	schema := &fakeSchema{}
	logger := zerolog.Nop()
	svc := NewBookingService(&fakeBeginner{tx: &fakeTx{}}, &fakeUserStore{}, &fakeBookingStore{}, &fakeCatalogStore{}, schema, nil, &logger)

	if err := svc.ResetSchema(context.Background()); err != nil {
		t.Fatalf("ResetSchema: %v", err)
	}
	if schema.resets != 1 {
		t.Errorf("resets = %d, want 1", schema.resets)
	}
}
