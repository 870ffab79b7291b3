package model

import "time"

// Goal : CurrentValue et IsAchieved sont mis à jour en dehors de ce service,
// aucun endpoint ne les modifie ici
type Goal struct {
	ID           int64      `db:"id" json:"id"`
	UserID       int64      `db:"user_id" json:"userId"`
	GoalType     string     `db:"goal_type" json:"goalType"`
	TargetValue  float64    `db:"target_value" json:"targetValue"`
	CurrentValue *float64   `db:"current_value" json:"currentValue"`
	Deadline     *time.Time `db:"deadline" json:"deadline"`
	IsAchieved   bool       `db:"is_achieved" json:"isAchieved"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}
