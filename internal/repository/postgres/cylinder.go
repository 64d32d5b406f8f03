package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

type cylinderRepository struct {
	db *sql.DB
}

func NewCylinderRepository(db *sql.DB) repository.CylinderRepository {
	return &cylinderRepository{db: db}
}

const cylinderColumns = `id, serial_code, gas_type, size, status, holder_type, holder_id, last_location, created_on, updated_on`

func (r *cylinderRepository) Create(ctx context.Context, c *domain.Cylinder) error {
	query := `INSERT INTO cylinders (serial_code, gas_type, size, status, holder_type, holder_id, last_location, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		c.SerialCode, c.GasType, c.Size, c.Status, c.HolderType, c.HolderID, c.LastLocation, now,
	).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateSerial
		}
		return err
	}
	c.CreatedOn = now
	c.UpdatedOn = now
	return nil
}

func (r *cylinderRepository) CreateBatch(ctx context.Context, cs []*domain.Cylinder) error {
	if len(cs) == 0 {
		return nil
	}
	now := time.Now()
	query := `INSERT INTO cylinders (serial_code, gas_type, size, status, holder_type, holder_id, last_location, created_on, updated_on) VALUES `
	args := make([]interface{}, 0, len(cs)*8)
	for i, c := range cs {
		if i > 0 {
			query += ", "
		}
		base := i * 8
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+8)
		args = append(args, c.SerialCode, c.GasType, c.Size, c.Status, c.HolderType, c.HolderID, c.LastLocation, now)
	}
	query += " RETURNING id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateSerial
		}
		return err
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(cs) {
			break
		}
		if err := rows.Scan(&cs[i].ID); err != nil {
			return err
		}
		cs[i].CreatedOn = now
		cs[i].UpdatedOn = now
		i++
	}
	return rows.Err()
}

func scanCylinder(row interface{ Scan(...interface{}) error }) (*domain.Cylinder, error) {
	var c domain.Cylinder
	err := row.Scan(&c.ID, &c.SerialCode, &c.GasType, &c.Size, &c.Status,
		&c.HolderType, &c.HolderID, &c.LastLocation, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *cylinderRepository) GetByID(ctx context.Context, id int32) (*domain.Cylinder, error) {
	query := `SELECT ` + cylinderColumns + ` FROM cylinders WHERE id = $1`
	return scanCylinder(r.db.QueryRowContext(ctx, query, id))
}

func (r *cylinderRepository) GetBySerial(ctx context.Context, serial string) (*domain.Cylinder, error) {
	query := `SELECT ` + cylinderColumns + ` FROM cylinders WHERE serial_code = $1`
	return scanCylinder(r.db.QueryRowContext(ctx, query, serial))
}

func (r *cylinderRepository) ExistingSerials(ctx context.Context, serials []string) ([]string, error) {
	query := `SELECT serial_code FROM cylinders WHERE serial_code = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(serials))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		found = append(found, s)
	}
	return found, rows.Err()
}

func (r *cylinderRepository) Update(ctx context.Context, c *domain.Cylinder) error {
	query := `UPDATE cylinders SET serial_code = $2, gas_type = $3, size = $4, status = $5,
	          holder_type = $6, holder_id = $7, last_location = $8, updated_on = $9 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.SerialCode, c.GasType, c.Size, c.Status, c.HolderType, c.HolderID, c.LastLocation, time.Now())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cylinderRepository) UpdateHolderBatch(ctx context.Context, ids []int32, status domain.CylinderStatus, holderType domain.HolderType, holderID *int32, location string) (int64, error) {
	query := `UPDATE cylinders SET status = $2, holder_type = $3, holder_id = $4, last_location = $5, updated_on = $6
	          WHERE id = ANY($1)`
	res, err := r.db.ExecContext(ctx, query, pq.Array(ids), status, holderType, holderID, location, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *cylinderRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cylinders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cylinderRepository) List(ctx context.Context, filter repository.CylinderFilter, page, pageSize int32) ([]domain.Cylinder, int32, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	idx := 1
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.GasType != "" {
		where += fmt.Sprintf(" AND gas_type = $%d", idx)
		args = append(args, filter.GasType)
		idx++
	}
	if filter.Size != "" {
		where += fmt.Sprintf(" AND size = $%d", idx)
		args = append(args, filter.Size)
		idx++
	}
	if filter.Query != "" {
		where += fmt.Sprintf(" AND (serial_code ILIKE $%d OR last_location ILIKE $%d)", idx, idx)
		args = append(args, "%"+filter.Query+"%")
		idx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cylinders`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	query := `SELECT ` + cylinderColumns + ` FROM cylinders` + where +
		fmt.Sprintf(` ORDER BY serial_code LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Cylinder
	for rows.Next() {
		c, err := scanCylinder(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *c)
	}
	return out, count, rows.Err()
}

func (r *cylinderRepository) ListByHolder(ctx context.Context, memberID int32) ([]domain.Cylinder, error) {
	query := `SELECT ` + cylinderColumns + ` FROM cylinders WHERE holder_type = $1 AND holder_id = $2 ORDER BY serial_code`
	rows, err := r.db.QueryContext(ctx, query, domain.HolderMember, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Cylinder
	for rows.Next() {
		c, err := scanCylinder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *cylinderRepository) ListByStatus(ctx context.Context, status domain.CylinderStatus) ([]domain.Cylinder, error) {
	query := `SELECT ` + cylinderColumns + ` FROM cylinders WHERE status = $1 ORDER BY serial_code`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Cylinder
	for rows.Next() {
		c, err := scanCylinder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *cylinderRepository) StockLevels(ctx context.Context) ([]repository.StockLevel, error) {
	query := `SELECT gas_type, size, count(*) FROM cylinders WHERE status = $1 GROUP BY gas_type, size`
	rows, err := r.db.QueryContext(ctx, query, domain.CylinderStatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.StockLevel
	for rows.Next() {
		var lvl repository.StockLevel
		if err := rows.Scan(&lvl.GasType, &lvl.Size, &lvl.Available); err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, rows.Err()
}
