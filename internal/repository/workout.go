package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	model "github.com/K4ZED/NdangFit/internal/models"
)

func (q *Queries) InsertWorkout(ctx context.Context, userID, exerciseID int64, sets, reps int, weight *float64, logDate time.Time) (int64, error) {
	var id int64
	err := q.db.QueryRowxContext(ctx,
		`INSERT INTO workouts (user_id, exercise_id, sets, reps, weight, log_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		userID, exerciseID, sets, reps, weight, logDate,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// WorkoutHistory retourne l'historique joint avec le nom de l'exercice,
// trié par date de log décroissante
func (q *Queries) WorkoutHistory(ctx context.Context, userID int64) ([]model.WorkoutEntry, error) {
	var entries []model.WorkoutEntry
	err := sqlx.SelectContext(ctx, q.db, &entries,
		`SELECT w.log_date, e.name AS exercise_name, w.sets, w.reps, w.weight
		 FROM workouts w
		 JOIN exercises e ON e.id = w.exercise_id
		 WHERE w.user_id = $1
		 ORDER BY w.log_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ExerciseProgress groupe les séances par date calendaire (l'heure est
// ignorée) et somme sets*reps*weight par groupe, trié par date croissante.
// Les lignes sans poids sont exclues du volume : une série au poids du
// corps n'a pas de métrique de volume exploitable.
func (q *Queries) ExerciseProgress(ctx context.Context, userID, exerciseID int64) ([]model.ProgressPoint, error) {
	day := dateExpr(q.db.DriverName(), "log_date")
	query := fmt.Sprintf(
		`SELECT %s AS date,
		        CAST(SUM(sets * reps * weight) AS DOUBLE PRECISION) AS total_volume
		 FROM workouts
		 WHERE user_id = $1 AND exercise_id = $2 AND weight IS NOT NULL
		 GROUP BY %s
		 ORDER BY %s`,
		day, day, day,
	)

	var points []model.ProgressPoint
	if err := sqlx.SelectContext(ctx, q.db, &points, query, userID, exerciseID); err != nil {
		return nil, err
	}
	return points, nil
}
