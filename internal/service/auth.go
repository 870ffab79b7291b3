package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/K4ZED/NdangFit/internal/apperr"
	"github.com/K4ZED/NdangFit/internal/repository"
)

// Register hache le mot de passe (sel aléatoire par appel) et ne stocke
// que le hash. Un doublon de username ou d'email remonte en Conflict.
func (s *Service) Register(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" || email == "" || password == "" {
		return 0, apperr.Validation("username, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, apperr.Internal("could not hash password", err)
	}

	var id int64
	err = s.withTx(ctx, func(q *repository.Queries) error {
		uid, err := q.CreateUser(ctx, username, email, string(hash))
		if err != nil {
			return internalize("could not create user", err)
		}
		id = uid
		return nil
	})
	return id, err
}

// Login répond exactement pareil pour un utilisateur inconnu et pour un
// mauvais mot de passe : pas d'énumération de usernames possible
func (s *Service) Login(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, apperr.Validation("username and password are required")
	}

	var id int64
	err := s.withTx(ctx, func(q *repository.Queries) error {
		user, err := q.UserByUsername(ctx, username)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.Authentication("invalid credentials")
		}
		if err != nil {
			return apperr.Internal("could not look up user", err)
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return apperr.Authentication("invalid credentials")
		}

		id = user.ID
		return nil
	})
	return id, err
}
