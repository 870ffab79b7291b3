package model

import "time"

// Schedule fait partie du modèle de données mais n'est exploité par aucune
// opération pour le moment (définition de stockage uniquement)
type Schedule struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"userId"`
	Date         time.Time `db:"date" json:"date"`
	IsWorkoutDay bool      `db:"is_workout_day" json:"isWorkoutDay"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
}
