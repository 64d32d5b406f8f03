package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

type refillStationRepository struct {
	db *sql.DB
}

func NewRefillStationRepository(db *sql.DB) repository.RefillStationRepository {
	return &refillStationRepository{db: db}
}

func (r *refillStationRepository) Create(ctx context.Context, s *domain.RefillStation) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO refill_stations (name) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID)
}

func (r *refillStationRepository) GetByID(ctx context.Context, id int32) (*domain.RefillStation, error) {
	var s domain.RefillStation
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM refill_stations WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *refillStationRepository) List(ctx context.Context) ([]domain.RefillStation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM refill_stations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RefillStation
	for rows.Next() {
		var s domain.RefillStation
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *refillStationRepository) Update(ctx context.Context, s *domain.RefillStation) error {
	res, err := r.db.ExecContext(ctx, `UPDATE refill_stations SET name = $2 WHERE id = $1`, s.ID, s.Name)
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

func (r *refillStationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM refill_stations WHERE id = $1`, id)
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

func (r *refillStationRepository) UpsertPrice(ctx context.Context, p *domain.StationPrice) error {
	query := `INSERT INTO station_prices (station_id, gas_type, size, price_cents) VALUES ($1, $2, $3, $4)
	          ON CONFLICT (station_id, gas_type, size) DO UPDATE SET price_cents = EXCLUDED.price_cents
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.StationID, p.GasType, p.Size, p.PriceCents).Scan(&p.ID)
}

func (r *refillStationRepository) ListPrices(ctx context.Context, stationID int32) ([]domain.StationPrice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, station_id, gas_type, size, price_cents FROM station_prices WHERE station_id = $1 ORDER BY gas_type, size`, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StationPrice
	for rows.Next() {
		var p domain.StationPrice
		if err := rows.Scan(&p.ID, &p.StationID, &p.GasType, &p.Size, &p.PriceCents); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
