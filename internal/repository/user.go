package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/K4ZED/NdangFit/internal/apperr"
	model "github.com/K4ZED/NdangFit/internal/models"
)

// CreateUser insère un nouvel utilisateur et retourne son id.
// Le pré-check n'est pas atomique face aux insertions concurrentes, ce sont
// les contraintes UNIQUE sur username et email qui tranchent en dernier.
func (q *Queries) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var exists bool
	err := q.db.QueryRowxContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperr.Conflict("username or email already registered")
	}

	var id int64
	err = q.db.QueryRowxContext(ctx,
		`INSERT INTO users (username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		username, email, passwordHash, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.Conflict("username or email already registered")
		}
		return 0, err
	}

	return id, nil
}

// UserByUsername retourne sql.ErrNoRows quand l'utilisateur n'existe pas
func (q *Queries) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := sqlx.GetContext(ctx, q.db, &u,
		`SELECT id, username, email, password_hash, created_at
		 FROM users
		 WHERE username = $1`,
		username,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
