package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	model "github.com/K4ZED/NdangFit/internal/models"
)

// InsertGoal : current_value et is_achieved partent à NULL/false, aucun
// endpoint de ce service ne les fait évoluer
func (q *Queries) InsertGoal(ctx context.Context, userID int64, goalType string, targetValue float64, deadline *time.Time) (int64, error) {
	var id int64
	err := q.db.QueryRowxContext(ctx,
		`INSERT INTO goals (user_id, goal_type, target_value, deadline, is_achieved, created_at)
		 VALUES ($1, $2, $3, $4, FALSE, $5)
		 RETURNING id`,
		userID, goalType, targetValue, deadline, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GoalsByUser est trié par date de création décroissante
func (q *Queries) GoalsByUser(ctx context.Context, userID int64) ([]model.Goal, error) {
	var goals []model.Goal
	err := sqlx.SelectContext(ctx, q.db, &goals,
		`SELECT id, user_id, goal_type, target_value, current_value, deadline, is_achieved, created_at
		 FROM goals
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return goals, nil
}
