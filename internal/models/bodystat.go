package model

import "time"

// BodyStat : toutes les mesures sont optionnelles indépendamment
type BodyStat struct {
	ID                 int64     `db:"id" json:"id"`
	UserID             int64     `db:"user_id" json:"userId"`
	Weight             *float64  `db:"weight" json:"weight"`
	BodyFatPercent     *float64  `db:"body_fat_percent" json:"bodyFatPercent"`
	MuscleMass         *float64  `db:"muscle_mass" json:"muscleMass"`
	WaistCircumference *float64  `db:"waist_circumference" json:"waistCircumference"`
	RecordedAt         time.Time `db:"recorded_at" json:"recordedAt"`
}
