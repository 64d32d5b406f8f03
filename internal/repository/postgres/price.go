package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

type priceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) repository.PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) GetBasePrice(ctx context.Context, gas domain.GasType, size domain.CylinderSize) (*domain.BasePrice, error) {
	var p domain.BasePrice
	query := `SELECT id, gas_type, size, price_cents FROM base_prices WHERE gas_type = $1 AND size = $2`
	err := r.db.QueryRowContext(ctx, query, gas, size).Scan(&p.ID, &p.GasType, &p.Size, &p.PriceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *priceRepository) UpsertBasePrice(ctx context.Context, p *domain.BasePrice) error {
	query := `INSERT INTO base_prices (gas_type, size, price_cents) VALUES ($1, $2, $3)
	          ON CONFLICT (gas_type, size) DO UPDATE SET price_cents = EXCLUDED.price_cents
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.GasType, p.Size, p.PriceCents).Scan(&p.ID)
}

func (r *priceRepository) ListBasePrices(ctx context.Context) ([]domain.BasePrice, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, gas_type, size, price_cents FROM base_prices ORDER BY gas_type, size`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BasePrice
	for rows.Next() {
		var p domain.BasePrice
		if err := rows.Scan(&p.ID, &p.GasType, &p.Size, &p.PriceCents); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *priceRepository) DeleteBasePrice(ctx context.Context, gas domain.GasType, size domain.CylinderSize) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM base_prices WHERE gas_type = $1 AND size = $2`, gas, size)
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

func (r *priceRepository) GetMemberPrice(ctx context.Context, memberID int32, gas domain.GasType, size domain.CylinderSize) (*domain.MemberPrice, error) {
	var p domain.MemberPrice
	query := `SELECT id, member_id, gas_type, size, price_cents FROM member_prices WHERE member_id = $1 AND gas_type = $2 AND size = $3`
	err := r.db.QueryRowContext(ctx, query, memberID, gas, size).Scan(&p.ID, &p.MemberID, &p.GasType, &p.Size, &p.PriceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *priceRepository) UpsertMemberPrice(ctx context.Context, p *domain.MemberPrice) error {
	query := `INSERT INTO member_prices (member_id, gas_type, size, price_cents) VALUES ($1, $2, $3, $4)
	          ON CONFLICT (member_id, gas_type, size) DO UPDATE SET price_cents = EXCLUDED.price_cents
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.MemberID, p.GasType, p.Size, p.PriceCents).Scan(&p.ID)
}

func (r *priceRepository) ListMemberPrices(ctx context.Context, memberID int32) ([]domain.MemberPrice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, member_id, gas_type, size, price_cents FROM member_prices WHERE member_id = $1 ORDER BY gas_type, size`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MemberPrice
	for rows.Next() {
		var p domain.MemberPrice
		if err := rows.Scan(&p.ID, &p.MemberID, &p.GasType, &p.Size, &p.PriceCents); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *priceRepository) DeleteMemberPrice(ctx context.Context, memberID int32, gas domain.GasType, size domain.CylinderSize) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM member_prices WHERE member_id = $1 AND gas_type = $2 AND size = $3`, memberID, gas, size)
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
