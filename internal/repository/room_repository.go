package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo provides CRUD operations for rooms. Rooms are grouped by
// their room_type column; price periods and package prices reference
// that string rather than individual room IDs, so the repository also
// exposes the set of distinct types in use.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning multiple repositories.
func (r *RoomRepo) DB() *sql.DB { return r.db }

const roomColumns = "id, room_type, base_price_cents, description, photo_url, created_at, updated_at"

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var m model.Room
	err := row.Scan(&m.ID, &m.RoomType, &m.BasePriceCents, &m.Description, &m.PhotoURL, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Create inserts a room and returns its generated ID.
func (r *RoomRepo) Create(ctx context.Context, m *model.Room) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO rooms (room_type, base_price_cents, description, photo_url) VALUES (?,?,?,?)",
		m.RoomType, m.BasePriceCents, m.Description, m.PhotoURL)
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

// Update replaces all mutable fields of a room. It returns
// sql.ErrNoRows when the room does not exist.
func (r *RoomRepo) Update(ctx context.Context, m *model.Room) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET room_type=?, base_price_cents=?, description=?, photo_url=? WHERE id=?",
		m.RoomType, m.BasePriceCents, m.Description, m.PhotoURL, m.ID)
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

// Delete removes a room. A room with existing bookings cannot be
// deleted; that case is reported as ErrConflict.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	var bookings int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE room_id=?", id).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
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

// GetByID returns a single room or sql.ErrNoRows.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+roomColumns+" FROM rooms WHERE id=?", id)
	return scanRoom(row)
}

// GetByIDTx is GetByID within an existing transaction.
func (r *RoomRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Room, error) {
	row := tx.QueryRowContext(ctx, "SELECT "+roomColumns+" FROM rooms WHERE id=?", id)
	return scanRoom(row)
}

// ListAll returns every room ordered by ID.
func (r *RoomRepo) ListAll(ctx context.Context) ([]model.Room, error) {
	return r.list(ctx, "SELECT "+roomColumns+" FROM rooms ORDER BY id")
}

// ListByType returns rooms whose type matches exactly, ordered by ID.
func (r *RoomRepo) ListByType(ctx context.Context, roomType string) ([]model.Room, error) {
	return r.list(ctx, "SELECT "+roomColumns+" FROM rooms WHERE room_type=? ORDER BY id", roomType)
}

// DistinctRoomTypes returns the set of room type names currently in
// use, sorted alphabetically.
func (r *RoomRepo) DistinctRoomTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT room_type FROM rooms ORDER BY room_type")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	types := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *RoomRepo) list(ctx context.Context, query string, args ...any) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
