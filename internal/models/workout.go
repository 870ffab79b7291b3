package model

import "time"

// Workout relie un utilisateur à un exercice, immuable après création.
// Weight est NULL pour les exercices au poids du corps.
type Workout struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"userId"`
	ExerciseID int64     `db:"exercise_id" json:"exerciseId"`
	Sets       int       `db:"sets" json:"sets"`
	Reps       int       `db:"reps" json:"reps"`
	Weight     *float64  `db:"weight" json:"weight,omitempty"`
	LogDate    time.Time `db:"log_date" json:"logDate"`
}

// WorkoutEntry est une ligne d'historique jointe avec le nom de l'exercice
type WorkoutEntry struct {
	LogDate      time.Time `db:"log_date"`
	ExerciseName string    `db:"exercise_name"`
	Sets         int       `db:"sets"`
	Reps         int       `db:"reps"`
	Weight       *float64  `db:"weight"`
}

// ProgressPoint est le volume total (sets*reps*weight) d'une journée
type ProgressPoint struct {
	Date        string  `db:"date" json:"date"`
	TotalVolume float64 `db:"total_volume" json:"total_volume"`
}
