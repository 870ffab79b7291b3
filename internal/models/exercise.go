package model

// Exercise est une entrée de la bibliothèque d'exercices.
// Le nom est une clé unique sensible à la casse.
type Exercise struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Category    *string `db:"category" json:"category,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
}
