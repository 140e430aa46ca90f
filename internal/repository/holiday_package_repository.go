package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// HolidayPackageRepo provides access to holiday packages and their
// per-room-type price rows. A package and its prices are written
// together in a transaction; on update the child rows are replaced
// wholesale when new prices are supplied.
type HolidayPackageRepo struct {
	db *sql.DB
}

// NewHolidayPackageRepo returns a new HolidayPackageRepo bound to the given database.
func NewHolidayPackageRepo(db *sql.DB) *HolidayPackageRepo { return &HolidayPackageRepo{db: db} }

const packageColumns = "id, name, start_date, end_date, description, photo_url, is_active, allow_partial_bookings, created_at, updated_at"

func scanPackage(row interface{ Scan(...any) error }) (model.HolidayPackage, error) {
	var m model.HolidayPackage
	err := row.Scan(&m.ID, &m.Name, &m.StartDate, &m.EndDate, &m.Description, &m.PhotoURL,
		&m.IsActive, &m.AllowPartialBookings, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Create inserts a package and its room type prices atomically and
// populates the generated ID.
func (r *HolidayPackageRepo) Create(ctx context.Context, m *model.HolidayPackage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO holiday_packages (name, start_date, end_date, description, photo_url, is_active, allow_partial_bookings) VALUES (?,?,?,?,?,?,?)",
		m.Name, m.StartDate, m.EndDate, m.Description, m.PhotoURL, m.IsActive, m.AllowPartialBookings)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	if err := insertPackagePrices(ctx, tx, m.ID, m.RoomTypePrices); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Update replaces the package's own fields and, when RoomTypePrices is
// non-empty, replaces the child price rows as well. Returns
// sql.ErrNoRows when the package does not exist.
func (r *HolidayPackageRepo) Update(ctx context.Context, m *model.HolidayPackage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"UPDATE holiday_packages SET name=?, start_date=?, end_date=?, description=?, photo_url=?, is_active=?, allow_partial_bookings=? WHERE id=?",
		m.Name, m.StartDate, m.EndDate, m.Description, m.PhotoURL, m.IsActive, m.AllowPartialBookings, m.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is zero both for a missing row and for a no-op
		// update; distinguish by probing for existence.
		var exists int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM holiday_packages WHERE id=?", m.ID).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return sql.ErrNoRows
		}
	}
	if len(m.RoomTypePrices) > 0 {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM holiday_package_room_type_prices WHERE holiday_package_id=?", m.ID); err != nil {
			return err
		}
		if err := insertPackagePrices(ctx, tx, m.ID, m.RoomTypePrices); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Delete removes a package and its price rows.
func (r *HolidayPackageRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM holiday_package_room_type_prices WHERE holiday_package_id=?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM holiday_packages WHERE id=?", id)
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
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID returns a package with its price map or sql.ErrNoRows.
func (r *HolidayPackageRepo) GetByID(ctx context.Context, id uint64) (model.HolidayPackage, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+packageColumns+" FROM holiday_packages WHERE id=?", id)
	m, err := scanPackage(row)
	if err != nil {
		return m, err
	}
	if err := r.loadPrices(ctx, []*model.HolidayPackage{&m}); err != nil {
		return m, err
	}
	return m, nil
}

// ListAll returns every package with prices, ordered by start date.
func (r *HolidayPackageRepo) ListAll(ctx context.Context) ([]model.HolidayPackage, error) {
	return r.list(ctx, "SELECT "+packageColumns+" FROM holiday_packages ORDER BY start_date")
}

// ListActive returns only active packages with prices.
func (r *HolidayPackageRepo) ListActive(ctx context.Context) ([]model.HolidayPackage, error) {
	return r.list(ctx, "SELECT "+packageColumns+" FROM holiday_packages WHERE is_active=1 ORDER BY start_date")
}

// ListActiveIntersecting returns active packages whose half-open
// [start_date, end_date) window overlaps [checkIn, checkOut).
// Packages are hotel-wide; filtering by room type happens in the
// engine against the loaded price maps.
func (r *HolidayPackageRepo) ListActiveIntersecting(ctx context.Context, checkIn, checkOut time.Time) ([]model.HolidayPackage, error) {
	return r.list(ctx,
		"SELECT "+packageColumns+" FROM holiday_packages WHERE is_active=1 AND start_date<? AND end_date>? ORDER BY start_date",
		checkOut, checkIn)
}

func (r *HolidayPackageRepo) list(ctx context.Context, query string, args ...any) ([]model.HolidayPackage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.HolidayPackage, 0)
	for rows.Next() {
		m, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	refs := make([]*model.HolidayPackage, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := r.loadPrices(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// loadPrices populates the RoomTypePrices map of each package in a
// single query.
func (r *HolidayPackageRepo) loadPrices(ctx context.Context, pkgs []*model.HolidayPackage) error {
	if len(pkgs) == 0 {
		return nil
	}
	index := make(map[uint64]*model.HolidayPackage, len(pkgs))
	ids := make([]any, 0, len(pkgs))
	placeholders := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		p.RoomTypePrices = make(map[string]uint32)
		index[p.ID] = p
		ids = append(ids, p.ID)
		placeholders = append(placeholders, "?")
	}
	query := "SELECT holiday_package_id, room_type, price_cents FROM holiday_package_room_type_prices WHERE holiday_package_id IN (" +
		strings.Join(placeholders, ",") + ")"
	rows, err := r.db.QueryContext(ctx, query, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var pkgID uint64
		var roomType string
		var cents uint32
		if err := rows.Scan(&pkgID, &roomType, &cents); err != nil {
			return err
		}
		if p, ok := index[pkgID]; ok {
			p.RoomTypePrices[roomType] = cents
		}
	}
	return rows.Err()
}

func insertPackagePrices(ctx context.Context, tx *sql.Tx, pkgID uint64, prices map[string]uint32) error {
	if len(prices) == 0 {
		return nil
	}
	query := "INSERT INTO holiday_package_room_type_prices (holiday_package_id, room_type, price_cents) VALUES "
	args := make([]any, 0, len(prices)*3)
	first := true
	for roomType, cents := range prices {
		if !first {
			query += ","
		}
		first = false
		query += "(?,?,?)"
		args = append(args, pkgID, roomType, cents)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
