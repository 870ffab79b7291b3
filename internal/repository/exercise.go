package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	model "github.com/K4ZED/NdangFit/internal/models"
)

// defaultExercises est le jeu de départ persisté à la première lecture
// d'une bibliothèque vide
var defaultExercises = []string{"Bench Press", "Squat", "Deadlift", "Pull-up", "Plank"}

// ListExercises retourne les noms ordonnés par id d'insertion. Sur une
// bibliothèque vide, le jeu par défaut est inséré puis retourné ; l'ordre
// reste donc stable d'un appel à l'autre.
func (q *Queries) ListExercises(ctx context.Context) ([]string, error) {
	var names []string
	err := sqlx.SelectContext(ctx, q.db, &names,
		`SELECT name FROM exercises ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		return names, nil
	}

	// bootstrap unique : deux lectures à vide concurrentes sont arbitrées
	// par la contrainte UNIQUE via EnsureExercise
	for _, name := range defaultExercises {
		if _, err := q.EnsureExercise(ctx, name); err != nil {
			return nil, err
		}
	}
	return append([]string(nil), defaultExercises...), nil
}

// EnsureExercise retourne l'id de l'exercice, en l'insérant s'il n'existe
// pas encore. Une violation UNIQUE pendant l'insertion signifie qu'une
// requête concurrente l'a créé entre-temps : on relit.
func (q *Queries) EnsureExercise(ctx context.Context, name string) (int64, error) {
	var id int64
	err := q.db.QueryRowxContext(ctx,
		`SELECT id FROM exercises WHERE name = $1`, name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = q.db.QueryRowxContext(ctx,
		`INSERT INTO exercises (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !isUniqueViolation(err) {
		return 0, err
	}

	err = q.db.QueryRowxContext(ctx,
		`SELECT id FROM exercises WHERE name = $1`, name,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ExerciseByName retourne sql.ErrNoRows quand le nom est inconnu
func (q *Queries) ExerciseByName(ctx context.Context, name string) (*model.Exercise, error) {
	var e model.Exercise
	err := sqlx.GetContext(ctx, q.db, &e,
		`SELECT id, name, category, description FROM exercises WHERE name = $1`,
		name,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
