package service

import (
	"context"

	"github.com/K4ZED/NdangFit/internal/apperr"
	"github.com/K4ZED/NdangFit/internal/repository"
)

// Dashboard agrège quatre lectures indépendantes pour un utilisateur.
// Chaque champ peut manquer séparément : un compte tout neuf rend
// total_workouts=0 et trois null, jamais une erreur.
type Dashboard struct {
	TotalWorkouts int          `json:"total_workouts"`
	LastWorkout   *LastWorkout `json:"last_workout"`
	LatestWeight  *float64     `json:"latest_weight"`
	ActiveGoal    *ActiveGoal  `json:"active_goal"`
}

type LastWorkout struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
}

type ActiveGoal struct {
	Type     string  `json:"type"`
	Target   float64 `json:"target"`
	Deadline *string `json:"deadline"`
}

func (s *Service) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	if userID <= 0 {
		return nil, apperr.Validation("user_id is required")
	}

	summary := &Dashboard{}
	err := s.withTx(ctx, func(q *repository.Queries) error {
		total, err := q.CountWorkouts(ctx, userID)
		if err != nil {
			return internalize("could not count workouts", err)
		}
		summary.TotalWorkouts = total

		last, err := q.LastWorkout(ctx, userID)
		if err != nil {
			return internalize("could not fetch last workout", err)
		}
		if last != nil {
			summary.LastWorkout = &LastWorkout{
				Date:     last.LogDate.Format("2006-01-02 15:04"),
				Exercise: last.ExerciseName,
				Sets:     last.Sets,
				Reps:     last.Reps,
			}
		}

		weight, err := q.LatestWeight(ctx, userID)
		if err != nil {
			return internalize("could not fetch latest weight", err)
		}
		summary.LatestWeight = weight

		goal, err := q.NextActiveGoal(ctx, userID)
		if err != nil {
			return internalize("could not fetch active goal", err)
		}
		if goal != nil {
			active := &ActiveGoal{Type: goal.GoalType, Target: goal.TargetValue}
			if goal.Deadline != nil {
				d := goal.Deadline.Format("2006-01-02")
				active.Deadline = &d
			}
			summary.ActiveGoal = active
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
