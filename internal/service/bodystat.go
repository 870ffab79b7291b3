package service

import (
	"context"
	"time"

	"github.com/K4ZED/NdangFit/internal/apperr"
	"github.com/K4ZED/NdangFit/internal/repository"
)

// BodyStatEntry : zéro est une valeur, seul NULL devient null en JSON
type BodyStatEntry struct {
	Date               string   `json:"date"`
	Weight             *float64 `json:"weight"`
	BodyFatPercent     *float64 `json:"body_fat_percent"`
	MuscleMass         *float64 `json:"muscle_mass"`
	WaistCircumference *float64 `json:"waist_circumference"`
}

func (s *Service) LogBodyStat(ctx context.Context, userID int64, weight, bodyFat, muscleMass, waist *float64) (int64, error) {
	if userID <= 0 {
		return 0, apperr.Validation("user_id is required")
	}

	var id int64
	err := s.withTx(ctx, func(q *repository.Queries) error {
		statID, err := q.InsertBodyStat(ctx, userID, weight, bodyFat, muscleMass, waist, time.Now().UTC())
		if err != nil {
			return internalize("could not log body stat", err)
		}
		id = statID
		return nil
	})
	return id, err
}

func (s *Service) BodyStatHistory(ctx context.Context, userID int64) ([]BodyStatEntry, error) {
	if userID <= 0 {
		return nil, apperr.Validation("user_id is required")
	}

	var history []BodyStatEntry
	err := s.withTx(ctx, func(q *repository.Queries) error {
		stats, err := q.BodyStatHistory(ctx, userID)
		if err != nil {
			return internalize("could not fetch body stat history", err)
		}
		history = make([]BodyStatEntry, 0, len(stats))
		for _, st := range stats {
			history = append(history, BodyStatEntry{
				Date:               st.RecordedAt.Format("2006-01-02"),
				Weight:             st.Weight,
				BodyFatPercent:     st.BodyFatPercent,
				MuscleMass:         st.MuscleMass,
				WaistCircumference: st.WaistCircumference,
			})
		}
		return nil
	})
	return history, err
}
