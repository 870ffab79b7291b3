package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/K4ZED/NdangFit/internal/apperr"
	"github.com/K4ZED/NdangFit/internal/database"
)

func f64(v float64) *float64 { return &v }

type RepositorySuite struct {
	suite.Suite
	db  *sqlx.DB
	q   *Queries
	ctx context.Context
}

// SetupTest ouvre une base sqlite en mémoire migrée, limitée à une seule
// connexion pour que :memory: reste la même base tout du long
func (s *RepositorySuite) SetupTest() {
	db, err := sqlx.Open("sqlite", "file::memory:?_time_format=sqlite")
	require.NoError(s.T(), err)
	db.SetMaxOpenConns(1)
	require.NoError(s.T(), database.Migrate(db))

	s.db = db
	s.q = New(db)
	s.ctx = context.Background()
}

func (s *RepositorySuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *RepositorySuite) createUser(username, email string) int64 {
	id, err := s.q.CreateUser(s.ctx, username, email, "$2a$10$fakehash")
	require.NoError(s.T(), err)
	require.Positive(s.T(), id)
	return id
}

func (s *RepositorySuite) TestCreateUserReturnsPositiveID() {
	id := s.createUser("alice", "alice@example.com")
	assert.Positive(s.T(), id)
}

func (s *RepositorySuite) TestCreateUserConflictOnUsername() {
	s.createUser("alice", "alice@example.com")

	_, err := s.q.CreateUser(s.ctx, "alice", "other@example.com", "h")
	assert.True(s.T(), apperr.IsKind(err, apperr.KindConflict))
}

func (s *RepositorySuite) TestCreateUserConflictOnEmail() {
	s.createUser("alice", "alice@example.com")

	_, err := s.q.CreateUser(s.ctx, "bob", "alice@example.com", "h")
	assert.True(s.T(), apperr.IsKind(err, apperr.KindConflict))
}

// Le pré-check de CreateUser n'est pas atomique face aux insertions
// concurrentes (fenêtre de course connue) ; ce test vérifie que la
// contrainte UNIQUE tranche même quand le pré-check est contourné.
func (s *RepositorySuite) TestUniqueConstraintIsAuthoritative() {
	s.createUser("alice", "alice@example.com")

	_, err := s.db.Exec(
		`INSERT INTO users (username, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		"alice", "elsewhere@example.com", "h", time.Now().UTC(),
	)
	require.Error(s.T(), err)
	assert.True(s.T(), isUniqueViolation(err))
}

func (s *RepositorySuite) TestUserByUsername() {
	s.createUser("alice", "alice@example.com")

	user, err := s.q.UserByUsername(s.ctx, "alice")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "alice", user.Username)
	assert.Equal(s.T(), "alice@example.com", user.Email)
	assert.Equal(s.T(), "$2a$10$fakehash", user.PasswordHash)
}

func (s *RepositorySuite) TestUserByUsernameMiss() {
	_, err := s.q.UserByUsername(s.ctx, "nobody")
	assert.ErrorIs(s.T(), err, sql.ErrNoRows)
}

func (s *RepositorySuite) TestListExercisesSeedsDefaults() {
	want := []string{"Bench Press", "Squat", "Deadlift", "Pull-up", "Plank"}

	names, err := s.q.ListExercises(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), want, names)

	// l'ordre reste stable et le seed n'est pas rejoué
	names, err = s.q.ListExercises(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), want, names)

	var count int
	require.NoError(s.T(), s.db.Get(&count, `SELECT COUNT(*) FROM exercises`))
	assert.Equal(s.T(), 5, count)
}

func (s *RepositorySuite) TestEnsureExerciseFindOrCreate() {
	id1, err := s.q.EnsureExercise(s.ctx, "Overhead Press")
	require.NoError(s.T(), err)

	id2, err := s.q.EnsureExercise(s.ctx, "Overhead Press")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), id1, id2)

	var count int
	require.NoError(s.T(), s.db.Get(&count, `SELECT COUNT(*) FROM exercises`))
	assert.Equal(s.T(), 1, count)
}

func (s *RepositorySuite) TestEnsureExerciseIsCaseSensitive() {
	id1, err := s.q.EnsureExercise(s.ctx, "Squat")
	require.NoError(s.T(), err)

	id2, err := s.q.EnsureExercise(s.ctx, "squat")
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), id1, id2)
}

func (s *RepositorySuite) TestWorkoutHistoryOrderedByDateDesc() {
	userID := s.createUser("alice", "alice@example.com")
	exID, err := s.q.EnsureExercise(s.ctx, "Squat")
	require.NoError(s.T(), err)

	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC)
	}
	for _, d := range []int{1, 3, 2} {
		_, err := s.q.InsertWorkout(s.ctx, userID, exID, 3, 10, f64(60), day(d))
		require.NoError(s.T(), err)
	}

	history, err := s.q.WorkoutHistory(s.ctx, userID)
	require.NoError(s.T(), err)
	require.Len(s.T(), history, 3)
	assert.Equal(s.T(), day(3), history[0].LogDate.UTC())
	assert.Equal(s.T(), day(2), history[1].LogDate.UTC())
	assert.Equal(s.T(), day(1), history[2].LogDate.UTC())
	assert.Equal(s.T(), "Squat", history[0].ExerciseName)
}

func (s *RepositorySuite) TestExerciseProgressGroupsByCalendarDate() {
	userID := s.createUser("alice", "alice@example.com")
	exID, err := s.q.EnsureExercise(s.ctx, "Bench Press")
	require.NoError(s.T(), err)

	jan1Morning := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	jan1Evening := time.Date(2024, 1, 1, 19, 30, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	_, err = s.q.InsertWorkout(s.ctx, userID, exID, 3, 10, f64(50), jan1Morning)
	require.NoError(s.T(), err)
	_, err = s.q.InsertWorkout(s.ctx, userID, exID, 2, 10, f64(50), jan1Evening)
	require.NoError(s.T(), err)
	_, err = s.q.InsertWorkout(s.ctx, userID, exID, 4, 8, f64(55), jan2)
	require.NoError(s.T(), err)

	points, err := s.q.ExerciseProgress(s.ctx, userID, exID)
	require.NoError(s.T(), err)
	require.Len(s.T(), points, 2)
	assert.Equal(s.T(), "2024-01-01", points[0].Date)
	assert.InDelta(s.T(), 2500, points[0].TotalVolume, 0.001) // 3*10*50 + 2*10*50
	assert.Equal(s.T(), "2024-01-02", points[1].Date)
	assert.InDelta(s.T(), 1760, points[1].TotalVolume, 0.001)
}

// Politique retenue : une séance sans poids est exclue du volume, elle ne
// produit ni ligne à zéro ni erreur
func (s *RepositorySuite) TestExerciseProgressExcludesNullWeight() {
	userID := s.createUser("alice", "alice@example.com")
	exID, err := s.q.EnsureExercise(s.ctx, "Pull-up")
	require.NoError(s.T(), err)

	jan1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)

	_, err = s.q.InsertWorkout(s.ctx, userID, exID, 3, 10, f64(50), jan1)
	require.NoError(s.T(), err)
	_, err = s.q.InsertWorkout(s.ctx, userID, exID, 2, 10, f64(50), jan1)
	require.NoError(s.T(), err)
	_, err = s.q.InsertWorkout(s.ctx, userID, exID, 3, 12, nil, jan2)
	require.NoError(s.T(), err)

	points, err := s.q.ExerciseProgress(s.ctx, userID, exID)
	require.NoError(s.T(), err)
	require.Len(s.T(), points, 1)
	assert.Equal(s.T(), "2024-01-01", points[0].Date)
	assert.InDelta(s.T(), 2500, points[0].TotalVolume, 0.001)
}

func (s *RepositorySuite) TestBodyStatHistoryOrderedDesc() {
	userID := s.createUser("alice", "alice@example.com")

	t1 := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 8, 7, 0, 0, 0, time.UTC)

	_, err := s.q.InsertBodyStat(s.ctx, userID, f64(80), f64(18.5), nil, nil, t1)
	require.NoError(s.T(), err)
	_, err = s.q.InsertBodyStat(s.ctx, userID, f64(79.2), nil, f64(35), nil, t2)
	require.NoError(s.T(), err)

	stats, err := s.q.BodyStatHistory(s.ctx, userID)
	require.NoError(s.T(), err)
	require.Len(s.T(), stats, 2)
	assert.Equal(s.T(), t2, stats[0].RecordedAt.UTC())
	require.NotNil(s.T(), stats[0].Weight)
	assert.InDelta(s.T(), 79.2, *stats[0].Weight, 0.001)
	assert.Nil(s.T(), stats[0].BodyFatPercent)
	require.NotNil(s.T(), stats[1].BodyFatPercent)
	assert.InDelta(s.T(), 18.5, *stats[1].BodyFatPercent, 0.001)
}

func (s *RepositorySuite) TestGoalsByUserOrderedByCreationDesc() {
	userID := s.createUser("alice", "alice@example.com")

	for _, gt := range []string{"weight_loss", "strength", "endurance"} {
		_, err := s.q.InsertGoal(s.ctx, userID, gt, 100, nil)
		require.NoError(s.T(), err)
	}

	goals, err := s.q.GoalsByUser(s.ctx, userID)
	require.NoError(s.T(), err)
	require.Len(s.T(), goals, 3)
	assert.Equal(s.T(), "endurance", goals[0].GoalType)
	assert.Equal(s.T(), "strength", goals[1].GoalType)
	assert.Equal(s.T(), "weight_loss", goals[2].GoalType)
	assert.False(s.T(), goals[0].IsAchieved)
	assert.Nil(s.T(), goals[0].CurrentValue)
}

func (s *RepositorySuite) TestDashboardReadsOnEmptyUser() {
	userID := s.createUser("alice", "alice@example.com")

	count, err := s.q.CountWorkouts(s.ctx, userID)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), count)

	last, err := s.q.LastWorkout(s.ctx, userID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), last)

	weight, err := s.q.LatestWeight(s.ctx, userID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), weight)

	goal, err := s.q.NextActiveGoal(s.ctx, userID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), goal)
}

func (s *RepositorySuite) TestLatestWeightSkipsNullReadings() {
	userID := s.createUser("alice", "alice@example.com")

	t1 := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 8, 7, 0, 0, 0, time.UTC)

	_, err := s.q.InsertBodyStat(s.ctx, userID, f64(80), nil, nil, nil, t1)
	require.NoError(s.T(), err)
	// relevé plus récent mais sans pesée
	_, err = s.q.InsertBodyStat(s.ctx, userID, nil, f64(17.8), nil, nil, t2)
	require.NoError(s.T(), err)

	weight, err := s.q.LatestWeight(s.ctx, userID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), weight)
	assert.InDelta(s.T(), 80, *weight, 0.001)
}

func (s *RepositorySuite) TestNextActiveGoalPicksNearestDeadline() {
	userID := s.createUser("alice", "alice@example.com")

	far := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	near := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	_, err := s.q.InsertGoal(s.ctx, userID, "strength", 120, &far)
	require.NoError(s.T(), err)
	nearID, err := s.q.InsertGoal(s.ctx, userID, "weight_loss", 75, &near)
	require.NoError(s.T(), err)
	_, err = s.q.InsertGoal(s.ctx, userID, "endurance", 10, nil)
	require.NoError(s.T(), err)

	goal, err := s.q.NextActiveGoal(s.ctx, userID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), goal)
	assert.Equal(s.T(), "weight_loss", goal.GoalType)

	// is_achieved évolue hors de ce service, on simule la mise à jour externe
	_, err = s.db.Exec(`UPDATE goals SET is_achieved = TRUE WHERE id = $1`, nearID)
	require.NoError(s.T(), err)

	goal, err = s.q.NextActiveGoal(s.ctx, userID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), goal)
	assert.Equal(s.T(), "strength", goal.GoalType)
}

func (s *RepositorySuite) TestNextActiveGoalWithoutDeadlineComesLast() {
	userID := s.createUser("alice", "alice@example.com")

	_, err := s.q.InsertGoal(s.ctx, userID, "endurance", 10, nil)
	require.NoError(s.T(), err)

	goal, err := s.q.NextActiveGoal(s.ctx, userID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), goal)
	assert.Equal(s.T(), "endurance", goal.GoalType)
	assert.Nil(s.T(), goal.Deadline)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
