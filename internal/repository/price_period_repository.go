package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// PricePeriodRepo provides CRUD operations for room price periods.
// Overlap validation is not done here; handlers load the existing
// periods for a room type and run the engine's validation gate before
// calling Create or Update.
type PricePeriodRepo struct {
	db *sql.DB
}

// NewPricePeriodRepo returns a new PricePeriodRepo bound to the given database.
func NewPricePeriodRepo(db *sql.DB) *PricePeriodRepo { return &PricePeriodRepo{db: db} }

const periodColumns = "id, room_type, start_date, end_date, price_cents, description"

func scanPeriod(row interface{ Scan(...any) error }) (model.RoomPricePeriod, error) {
	var m model.RoomPricePeriod
	err := row.Scan(&m.ID, &m.RoomType, &m.StartDate, &m.EndDate, &m.PriceCents, &m.Description)
	return m, err
}

// Create inserts a period and populates its generated ID.
func (r *PricePeriodRepo) Create(ctx context.Context, m *model.RoomPricePeriod) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO room_price_periods (room_type, start_date, end_date, price_cents, description) VALUES (?,?,?,?,?)",
		m.RoomType, m.StartDate, m.EndDate, m.PriceCents, m.Description)
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

// Update replaces all fields of a period. Returns sql.ErrNoRows when
// the period does not exist.
func (r *PricePeriodRepo) Update(ctx context.Context, m *model.RoomPricePeriod) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE room_price_periods SET room_type=?, start_date=?, end_date=?, price_cents=?, description=? WHERE id=?",
		m.RoomType, m.StartDate, m.EndDate, m.PriceCents, m.Description, m.ID)
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

// Delete removes a period or returns sql.ErrNoRows.
func (r *PricePeriodRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM room_price_periods WHERE id=?", id)
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

// GetByID returns a single period or sql.ErrNoRows.
func (r *PricePeriodRepo) GetByID(ctx context.Context, id uint64) (model.RoomPricePeriod, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+periodColumns+" FROM room_price_periods WHERE id=?", id)
	return scanPeriod(row)
}

// ListAll returns every period ordered by room type and start date.
func (r *PricePeriodRepo) ListAll(ctx context.Context) ([]model.RoomPricePeriod, error) {
	return r.list(ctx, "SELECT "+periodColumns+" FROM room_price_periods ORDER BY room_type, start_date")
}

// ListByRoomType returns all periods for a room type ordered by start
// date ascending. The ordering matters: the engine's tie-break picks
// the earliest-starting period when corrupt data presents more than
// one match for a night.
func (r *PricePeriodRepo) ListByRoomType(ctx context.Context, roomType string) ([]model.RoomPricePeriod, error) {
	return r.list(ctx,
		"SELECT "+periodColumns+" FROM room_price_periods WHERE room_type=? ORDER BY start_date", roomType)
}

// ListIntersecting returns the periods for a room type whose inclusive
// [start_date, end_date] range touches any night of the half-open stay
// [checkIn, checkOut), ordered by start date.
func (r *PricePeriodRepo) ListIntersecting(ctx context.Context, roomType string, checkIn, checkOut time.Time) ([]model.RoomPricePeriod, error) {
	lastNight := checkOut.AddDate(0, 0, -1)
	return r.list(ctx,
		"SELECT "+periodColumns+" FROM room_price_periods WHERE room_type=? AND start_date<=? AND end_date>=? ORDER BY start_date",
		roomType, lastNight, checkIn)
}

func (r *PricePeriodRepo) list(ctx context.Context, query string, args ...any) ([]model.RoomPricePeriod, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.RoomPricePeriod, 0)
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
