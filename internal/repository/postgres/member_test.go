package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository/postgres"
)

func memberRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "company_name", "contact_name", "phone", "address",
		"deposit_cents", "debt_cents", "status", "joined_on", "exit_requested_on",
	})
}

func TestMemberRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	m := &domain.Member{
		CompanyName:  "Acme",
		ContactName:  "Jo",
		Phone:        "555-0100",
		DepositCents: 200000,
		Status:       domain.MemberStatusActive,
	}

	mock.ExpectQuery("INSERT INTO members").
		WithArgs(m.CompanyName, m.ContactName, m.Phone, m.Address,
			m.DepositCents, m.DebtCents, m.Status, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(ctx, m)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), m.ID)
}

func TestMemberRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		joined := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		exit := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT (.+) FROM members WHERE id").
			WithArgs(int32(1)).
			WillReturnRows(memberRows().AddRow(
				1, "Acme", "Jo", "555-0100", "1 Main St", 200000, 0, "PENDING_EXIT", joined, exit))

		m, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", m.CompanyName)
		assert.Equal(t, domain.MemberStatusPendingExit, m.Status)
		assert.Equal(t, exit, *m.ExitRequestedOn)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE id").
			WithArgs(int32(9)).
			WillReturnRows(memberRows())

		_, err := repo.GetByID(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemberRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := &domain.Member{ID: 1, CompanyName: "Acme", DebtCents: 50000, Status: domain.MemberStatusActive}
		mock.ExpectExec("UPDATE members SET").
			WithArgs(m.ID, m.CompanyName, m.ContactName, m.Phone, m.Address,
				m.DepositCents, m.DebtCents, m.Status, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, m))
	})

	t.Run("NotFound", func(t *testing.T) {
		m := &domain.Member{ID: 9, CompanyName: "Ghost", Status: domain.MemberStatusActive}
		mock.ExpectExec("UPDATE members SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, m), domain.ErrNotFound)
	})
}
