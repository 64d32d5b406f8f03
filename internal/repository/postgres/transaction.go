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

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const txColumns = `id, type, occurred_on, cylinder_id, member_id, station_id, cost_cents, payment_status, rental_days, related_tx_ids, created_on`

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (type, occurred_on, cylinder_id, member_id, station_id, cost_cents, payment_status, rental_days, related_tx_ids, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	if tx.OccurredOn.IsZero() {
		tx.OccurredOn = now
	}
	err := r.db.QueryRowContext(ctx, query,
		tx.Type, tx.OccurredOn, tx.CylinderID, tx.MemberID, tx.StationID,
		tx.CostCents, tx.PaymentStatus, tx.RentalDays, pq.Array(tx.RelatedTxIDs), now,
	).Scan(&tx.ID)
	if err != nil {
		return err
	}
	tx.CreatedOn = now
	return nil
}

func (r *transactionRepository) CreateBatch(ctx context.Context, txs []*domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	now := time.Now()
	query := `INSERT INTO transactions (type, occurred_on, cylinder_id, member_id, station_id, cost_cents, payment_status, rental_days, related_tx_ids, created_on) VALUES `
	args := make([]interface{}, 0, len(txs)*10)
	for i, tx := range txs {
		if tx.OccurredOn.IsZero() {
			tx.OccurredOn = now
		}
		if i > 0 {
			query += ", "
		}
		base := i * 10
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10)
		args = append(args, tx.Type, tx.OccurredOn, tx.CylinderID, tx.MemberID, tx.StationID,
			tx.CostCents, tx.PaymentStatus, tx.RentalDays, pq.Array(tx.RelatedTxIDs), now)
	}
	query += " RETURNING id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(txs) {
			break
		}
		if err := rows.Scan(&txs[i].ID); err != nil {
			return err
		}
		txs[i].CreatedOn = now
		i++
	}
	return rows.Err()
}

func scanTransaction(row interface{ Scan(...interface{}) error }) (*domain.Transaction, error) {
	var tx domain.Transaction
	var related pq.Int64Array
	err := row.Scan(&tx.ID, &tx.Type, &tx.OccurredOn, &tx.CylinderID, &tx.MemberID, &tx.StationID,
		&tx.CostCents, &tx.PaymentStatus, &tx.RentalDays, &related, &tx.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	tx.RelatedTxIDs = related
	return &tx, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE id = $1`
	return scanTransaction(r.db.QueryRowContext(ctx, query, id))
}

func (r *transactionRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE id = ANY($1) ORDER BY occurred_on, id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *tx)
	}
	return out, rows.Err()
}

func (r *transactionRepository) LatestRentalOut(ctx context.Context, cylinderID, memberID int32) (*domain.Transaction, error) {
	// "Most recent" goes by the business timestamp; id breaks ties so two
	// same-instant entries resolve consistently.
	query := `SELECT ` + txColumns + ` FROM transactions
	          WHERE type = $1 AND cylinder_id = $2 AND member_id = $3
	          ORDER BY occurred_on DESC, id DESC LIMIT 1`
	return scanTransaction(r.db.QueryRowContext(ctx, query, domain.TransactionTypeRentalOut, cylinderID, memberID))
}

func (r *transactionRepository) ListUnpaidByMember(ctx context.Context, memberID int32) ([]domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions
	          WHERE type = $1 AND member_id = $2 AND payment_status = $3
	          ORDER BY occurred_on, id`
	rows, err := r.db.QueryContext(ctx, query, domain.TransactionTypeRentalOut, memberID, domain.PaymentStatusUnpaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *tx)
	}
	return out, rows.Err()
}

func (r *transactionRepository) MarkPaid(ctx context.Context, ids []int64) error {
	query := `UPDATE transactions SET payment_status = $2 WHERE id = ANY($1) AND payment_status = $3`
	res, err := r.db.ExecContext(ctx, query, pq.Array(ids), domain.PaymentStatusPaid, domain.PaymentStatusUnpaid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return fmt.Errorf("marked %d of %d entries paid: %w", n, len(ids), domain.ErrValidation)
	}
	return nil
}

func (r *transactionRepository) List(ctx context.Context, filter repository.TransactionFilter, page, pageSize int32) ([]domain.Transaction, int32, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	idx := 1
	if filter.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", idx)
		args = append(args, filter.Type)
		idx++
	}
	if filter.MemberID != 0 {
		where += fmt.Sprintf(" AND member_id = $%d", idx)
		args = append(args, filter.MemberID)
		idx++
	}
	if !filter.From.IsZero() {
		where += fmt.Sprintf(" AND occurred_on >= $%d", idx)
		args = append(args, filter.From)
		idx++
	}
	if !filter.To.IsZero() {
		where += fmt.Sprintf(" AND occurred_on <= $%d", idx)
		args = append(args, filter.To)
		idx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM transactions`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	query := `SELECT ` + txColumns + ` FROM transactions` + where +
		fmt.Sprintf(` ORDER BY occurred_on DESC, id DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *tx)
	}
	return out, count, rows.Err()
}
