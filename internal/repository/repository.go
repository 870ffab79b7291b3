// Package repository expose les opérations typées par entité. Chaque
// méthode s'exécute sur un sqlx.ExtContext, c'est-à-dire indifféremment
// sur le pool ou dans la transaction ouverte par la couche service.
package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

type Queries struct {
	db sqlx.ExtContext
}

func New(db sqlx.ExtContext) *Queries {
	return &Queries{db: db}
}

// isUniqueViolation détecte une violation de contrainte UNIQUE, qui reste
// le garde-fou autoritaire face aux insertions concurrentes (les pré-checks
// ne sont que des optimisations)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
