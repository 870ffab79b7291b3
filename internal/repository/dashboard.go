package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	model "github.com/K4ZED/NdangFit/internal/models"
)

// Les quatre lectures du dashboard sont indépendantes : chacune rend son
// absence par un résultat nil plutôt que par une erreur, un utilisateur
// tout neuf est le cas nominal, pas un échec.

func (q *Queries) CountWorkouts(ctx context.Context, userID int64) (int, error) {
	var count int
	err := q.db.QueryRowxContext(ctx,
		`SELECT COUNT(*) FROM workouts WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (q *Queries) LastWorkout(ctx context.Context, userID int64) (*model.WorkoutEntry, error) {
	var entry model.WorkoutEntry
	err := sqlx.GetContext(ctx, q.db, &entry,
		`SELECT w.log_date, e.name AS exercise_name, w.sets, w.reps, w.weight
		 FROM workouts w
		 JOIN exercises e ON e.id = w.exercise_id
		 WHERE w.user_id = $1
		 ORDER BY w.log_date DESC
		 LIMIT 1`,
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// LatestWeight retourne la dernière pesée non NULL, nil si aucune
func (q *Queries) LatestWeight(ctx context.Context, userID int64) (*float64, error) {
	var weight float64
	err := q.db.QueryRowxContext(ctx,
		`SELECT CAST(weight AS DOUBLE PRECISION)
		 FROM body_stats
		 WHERE user_id = $1 AND weight IS NOT NULL
		 ORDER BY recorded_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&weight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &weight, nil
}

// NextActiveGoal retourne l'objectif non atteint à l'échéance la plus
// proche, les objectifs sans échéance passant en dernier
func (q *Queries) NextActiveGoal(ctx context.Context, userID int64) (*model.Goal, error) {
	var goal model.Goal
	err := sqlx.GetContext(ctx, q.db, &goal,
		`SELECT id, user_id, goal_type, target_value, current_value, deadline, is_achieved, created_at
		 FROM goals
		 WHERE user_id = $1 AND is_achieved = FALSE
		 ORDER BY deadline IS NULL, deadline ASC
		 LIMIT 1`,
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
