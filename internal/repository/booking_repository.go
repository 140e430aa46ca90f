package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// BookingRepo provides access to bookings. Writes that depend on the
// current set of a room's bookings (the availability check plus the
// insert) run inside a caller-owned transaction so the read-check-write
// sequence is serialized per room; the Tx variants exist for that.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for transaction management.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingColumns = "id, room_id, user_id, holiday_package_id, check_in_date, check_out_date, num_adults, num_children, confirmation_code, total_price_cents, created_at"

func scanBooking(row interface{ Scan(...any) error }) (model.Booking, error) {
	var m model.Booking
	var pkgID sql.NullInt64
	err := row.Scan(&m.ID, &m.RoomID, &m.UserID, &pkgID, &m.CheckInDate, &m.CheckOutDate,
		&m.NumAdults, &m.NumChildren, &m.ConfirmationCode, &m.TotalPriceCents, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	if pkgID.Valid {
		id := uint64(pkgID.Int64)
		m.HolidayPackageID = &id
	}
	return m, nil
}

// CreateTx inserts a booking within an existing transaction and
// populates its generated ID. The caller must commit or rollback.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, m *model.Booking) error {
	var pkgID any
	if m.HolidayPackageID != nil {
		pkgID = *m.HolidayPackageID
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings
		 (room_id, user_id, holiday_package_id, check_in_date, check_out_date, num_adults, num_children, confirmation_code, total_price_cents)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		m.RoomID, m.UserID, pkgID, m.CheckInDate, m.CheckOutDate,
		m.NumAdults, m.NumChildren, m.ConfirmationCode, m.TotalPriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// ListByRoomTx returns a room's bookings inside a transaction,
// locking the rows so a concurrent booking attempt for the same room
// waits until this transaction finishes.
func (r *BookingRepo) ListByRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) ([]model.Booking, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE room_id=? ORDER BY check_in_date FOR UPDATE", roomID)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListByRoom returns a room's bookings ordered by check-in date.
func (r *BookingRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE room_id=? ORDER BY check_in_date", roomID)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// GetByConfirmationCode returns the booking carrying the given code
// or sql.ErrNoRows. Confirmation codes are unique and opaque; this is
// the guest-facing lookup that requires no authentication.
func (r *BookingRepo) GetByConfirmationCode(ctx context.Context, code string) (model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE confirmation_code=? LIMIT 1", code)
	return scanBooking(row)
}

// CodeExistsTx reports whether a confirmation code is already taken.
// Used to retry generation on the unlikely collision.
func (r *BookingRepo) CodeExistsTx(ctx context.Context, tx *sql.Tx, code string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE confirmation_code=?", code).Scan(&n)
	return n > 0, err
}

// ListAll returns every booking, newest first.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// Delete cancels a booking by removing its row. Bookings are terminal
// records; cancellation is a hard delete, never a status flip.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func collectBookings(rows *sql.Rows) ([]model.Booking, error) {
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		m, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
