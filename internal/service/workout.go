package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/K4ZED/NdangFit/internal/apperr"
	model "github.com/K4ZED/NdangFit/internal/models"
	"github.com/K4ZED/NdangFit/internal/repository"
)

// HistoryEntry est une ligne d'historique telle qu'exposée par l'API
type HistoryEntry struct {
	Date     string   `json:"date"`
	Exercise string   `json:"exercise"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight"`
}

func (s *Service) ListExercises(ctx context.Context) ([]string, error) {
	var names []string
	err := s.withTx(ctx, func(q *repository.Queries) error {
		list, err := q.ListExercises(ctx)
		if err != nil {
			return internalize("could not list exercises", err)
		}
		names = list
		return nil
	})
	return names, err
}

// LogWorkout normalise le nom libre d'exercice vers un id stable via
// find-or-create avant d'insérer la séance
func (s *Service) LogWorkout(ctx context.Context, userID int64, exerciseName string, sets, reps int, weight *float64) (int64, error) {
	if userID <= 0 {
		return 0, apperr.Validation("user_id is required")
	}
	if exerciseName == "" {
		return 0, apperr.Validation("exercise_name is required")
	}
	// durcissement volontaire : la source ne validait que les types
	if sets <= 0 || reps <= 0 {
		return 0, apperr.Validation("sets and reps must be positive")
	}

	var id int64
	err := s.withTx(ctx, func(q *repository.Queries) error {
		exerciseID, err := q.EnsureExercise(ctx, exerciseName)
		if err != nil {
			return internalize("could not resolve exercise", err)
		}
		// la date de log est l'instant de création
		workoutID, err := q.InsertWorkout(ctx, userID, exerciseID, sets, reps, weight, time.Now().UTC())
		if err != nil {
			return internalize("could not log workout", err)
		}
		id = workoutID
		return nil
	})
	return id, err
}

func (s *Service) WorkoutHistory(ctx context.Context, userID int64) ([]HistoryEntry, error) {
	if userID <= 0 {
		return nil, apperr.Validation("user_id is required")
	}

	var history []HistoryEntry
	err := s.withTx(ctx, func(q *repository.Queries) error {
		entries, err := q.WorkoutHistory(ctx, userID)
		if err != nil {
			return internalize("could not fetch workout history", err)
		}
		history = make([]HistoryEntry, 0, len(entries))
		for _, e := range entries {
			history = append(history, HistoryEntry{
				Date:     e.LogDate.Format("2006-01-02"),
				Exercise: e.ExerciseName,
				Sets:     e.Sets,
				Reps:     e.Reps,
				Weight:   e.Weight,
			})
		}
		return nil
	})
	return history, err
}

// Progress échoue en NotFound quand l'exercice est inconnu, sinon rend la
// série de volumes par date
func (s *Service) Progress(ctx context.Context, userID int64, exerciseName string) ([]model.ProgressPoint, error) {
	if userID <= 0 {
		return nil, apperr.Validation("user_id is required")
	}
	if exerciseName == "" {
		return nil, apperr.Validation("exercise_name is required")
	}

	var points []model.ProgressPoint
	err := s.withTx(ctx, func(q *repository.Queries) error {
		exercise, err := q.ExerciseByName(ctx, exerciseName)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Exercise not found")
		}
		if err != nil {
			return apperr.Internal("could not look up exercise", err)
		}

		series, err := q.ExerciseProgress(ctx, userID, exercise.ID)
		if err != nil {
			return internalize("could not compute progress", err)
		}
		points = series
		return nil
	})
	if points == nil && err == nil {
		points = []model.ProgressPoint{}
	}
	return points, err
}
