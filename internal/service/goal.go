package service

import (
	"context"
	"time"

	"github.com/K4ZED/NdangFit/internal/apperr"
	"github.com/K4ZED/NdangFit/internal/repository"
)

// GoalEntry est un objectif tel qu'exposé par l'API
type GoalEntry struct {
	ID           int64    `json:"id"`
	GoalType     string   `json:"goal_type"`
	TargetValue  float64  `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Deadline     *string  `json:"deadline"`
	IsAchieved   bool     `json:"is_achieved"`
}

func (s *Service) CreateGoal(ctx context.Context, userID int64, goalType string, targetValue float64, deadline *string) (int64, error) {
	if userID <= 0 {
		return 0, apperr.Validation("user_id is required")
	}
	if goalType == "" {
		return 0, apperr.Validation("goal_type is required")
	}

	var due *time.Time
	if deadline != nil && *deadline != "" {
		d, err := time.ParseInLocation("2006-01-02", *deadline, time.UTC)
		if err != nil {
			return 0, apperr.Validation("deadline must be formatted YYYY-MM-DD")
		}
		due = &d
	}

	var id int64
	err := s.withTx(ctx, func(q *repository.Queries) error {
		goalID, err := q.InsertGoal(ctx, userID, goalType, targetValue, due)
		if err != nil {
			return internalize("could not create goal", err)
		}
		id = goalID
		return nil
	})
	return id, err
}

func (s *Service) Goals(ctx context.Context, userID int64) ([]GoalEntry, error) {
	if userID <= 0 {
		return nil, apperr.Validation("user_id is required")
	}

	var out []GoalEntry
	err := s.withTx(ctx, func(q *repository.Queries) error {
		goals, err := q.GoalsByUser(ctx, userID)
		if err != nil {
			return internalize("could not fetch goals", err)
		}
		out = make([]GoalEntry, 0, len(goals))
		for _, g := range goals {
			entry := GoalEntry{
				ID:           g.ID,
				GoalType:     g.GoalType,
				TargetValue:  g.TargetValue,
				CurrentValue: g.CurrentValue,
				IsAchieved:   g.IsAchieved,
			}
			if g.Deadline != nil {
				d := g.Deadline.Format("2006-01-02")
				entry.Deadline = &d
			}
			out = append(out, entry)
		}
		return nil
	})
	return out, err
}
