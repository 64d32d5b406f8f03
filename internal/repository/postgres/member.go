package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, company_name, contact_name, phone, address, deposit_cents, debt_cents, status, joined_on, exit_requested_on`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (company_name, contact_name, phone, address, deposit_cents, debt_cents, status, joined_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if m.JoinedOn.IsZero() {
		m.JoinedOn = time.Now()
	}
	return r.db.QueryRowContext(ctx, query,
		m.CompanyName, m.ContactName, m.Phone, m.Address, m.DepositCents, m.DebtCents, m.Status, m.JoinedOn,
	).Scan(&m.ID)
}

func scanMember(row interface{ Scan(...interface{}) error }) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.CompanyName, &m.ContactName, &m.Phone, &m.Address,
		&m.DepositCents, &m.DebtCents, &m.Status, &m.JoinedOn, &m.ExitRequestedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return scanMember(r.db.QueryRowContext(ctx, query, id))
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET company_name = $2, contact_name = $3, phone = $4, address = $5,
	          deposit_cents = $6, debt_cents = $7, status = $8, exit_requested_on = $9 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.CompanyName, m.ContactName, m.Phone, m.Address,
		m.DepositCents, m.DebtCents, m.Status, m.ExitRequestedOn)
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

func (r *memberRepository) List(ctx context.Context, status domain.MemberStatus, query string, page, pageSize int32) ([]domain.Member, int32, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	idx := 1
	if status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, status)
		idx++
	}
	if query != "" {
		where += fmt.Sprintf(" AND (company_name ILIKE $%d OR contact_name ILIKE $%d OR phone ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+query+"%")
		idx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM members`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	q := `SELECT ` + memberColumns + ` FROM members` + where +
		fmt.Sprintf(` ORDER BY company_name LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	return out, count, rows.Err()
}

func (r *memberRepository) ListByStatus(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE status = $1 ORDER BY company_name`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}
