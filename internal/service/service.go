// Package service porte les cas d'usage. Chaque appel d'API ouvre une
// transaction unique, commit en cas de succès et rollback intégral à la
// moindre erreur : aucune écriture partielle ne survit à un échec.
package service

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/K4ZED/NdangFit/internal/apperr"
	"github.com/K4ZED/NdangFit/internal/logger"
	"github.com/K4ZED/NdangFit/internal/repository"
)

type Service struct {
	db         *sqlx.DB
	bcryptCost int
}

func New(db *sqlx.DB, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{db: db, bcryptCost: bcryptCost}
}

func (s *Service) withTx(ctx context.Context, fn func(q *repository.Queries) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Internal("could not begin transaction", err)
	}

	if err := fn(repository.New(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("rollback failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperr.Internal("could not commit transaction", err)
	}
	return nil
}

// internalize requalifie les fautes du store en Internal, en laissant
// passer les erreurs applicatives déjà typées
func internalize(msg string, err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		return err
	}
	return apperr.Internal(msg, err)
}
