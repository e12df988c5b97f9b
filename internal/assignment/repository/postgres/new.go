package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	pkgLog "github.com/AnishD4/StudyTide/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  pkgLog.Logger
}

// New creates a Postgres-backed assignment repository.
func New(db *pgxpool.Pool, l pkgLog.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
