package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	model "github.com/K4ZED/NdangFit/internal/models"
)

func (q *Queries) InsertBodyStat(ctx context.Context, userID int64, weight, bodyFat, muscleMass, waist *float64, recordedAt time.Time) (int64, error) {
	var id int64
	err := q.db.QueryRowxContext(ctx,
		`INSERT INTO body_stats (user_id, weight, body_fat_percent, muscle_mass, waist_circumference, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		userID, weight, bodyFat, muscleMass, waist, recordedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// BodyStatHistory est trié par date d'enregistrement décroissante
func (q *Queries) BodyStatHistory(ctx context.Context, userID int64) ([]model.BodyStat, error) {
	var stats []model.BodyStat
	err := sqlx.SelectContext(ctx, q.db, &stats,
		`SELECT id, user_id, weight, body_fat_percent, muscle_mass, waist_circumference, recorded_at
		 FROM body_stats
		 WHERE user_id = $1
		 ORDER BY recorded_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
