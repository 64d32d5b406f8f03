package postgres

import (
	"database/sql"

	"gasdepot-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CylinderRepository
	repository.MemberRepository
	repository.TransactionRepository
	repository.PriceRepository
	repository.RefillStationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		CylinderRepository:      NewCylinderRepository(db),
		MemberRepository:        NewMemberRepository(db),
		TransactionRepository:   NewTransactionRepository(db),
		PriceRepository:         NewPriceRepository(db),
		RefillStationRepository: NewRefillStationRepository(db),
	}
}
