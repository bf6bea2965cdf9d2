package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vocaplay/engine/internal/models"
)

// fakeUserRepo is an in-memory UserRecordRepository
type fakeUserRepo struct {
	record  *models.UserRecord
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeUserRepo) Load(ctx context.Context) (*models.UserRecord, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.record, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, record *models.UserRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.record = record
	f.saves++
	return nil
}

func (f *fakeUserRepo) Reset(ctx context.Context) error {
	f.record = nil
	return nil
}

// fixedClock is a settable Clock
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

var testDay = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// setupProgressService wires a service over an in-memory repository with a
// fixed clock and deterministic ids
func setupProgressService(t *testing.T, record *models.UserRecord) (*ProgressService, *fakeUserRepo, *fixedClock) {
	t.Helper()
	repo := &fakeUserRepo{record: record}
	clock := &fixedClock{now: testDay}
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	svc := NewProgressService(repo, logger, clock, 10)
	svc.newID = func() string { return "user-1" }
	return svc, repo, clock
}

// existingUser builds a stored record with one language pair
func existingUser() *models.UserRecord {
	return &models.UserRecord{
		ID:   "user-1",
		Name: "Ana",
		Progress: models.ProgressState{
			CurrentStreak:     1,
			LongestStreak:     3,
			LastLoginDate:     testDay.Format(dateLayout),
			DailyGoal:         10,
			CompletedLessons:  []string{},
			CompletedSections: []string{},
		},
		LanguagePairs: []models.LanguagePair{
			{ID: "en-es-1", NativeLanguage: "en", TargetLanguage: "es"},
		},
		CurrentLanguagePair: "en-es-1",
		Preferences:         models.Preferences{SoundEnabled: true},
	}
}

func TestNewProgressService(t *testing.T) {
	svc, repo, clock := setupProgressService(t, nil)

	assert.NotNil(t, svc)
	assert.Equal(t, repo, svc.repo)
	assert.Equal(t, clock, svc.clock)
	assert.Equal(t, 10, svc.dailyGoal)
}

func TestProgressService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		native        string
		target        string
		expectedError bool
	}{
		{
			name:     "success",
			userName: "Ana",
			native:   "en",
			target:   "es",
		},
		{
			name:          "empty name",
			userName:      "",
			native:        "en",
			target:        "es",
			expectedError: true,
		},
		{
			name:          "empty native language",
			userName:      "Ana",
			native:        "",
			target:        "es",
			expectedError: true,
		},
		{
			name:          "target equals native",
			userName:      "Ana",
			native:        "en",
			target:        "en",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := setupProgressService(t, nil)

			record, err := svc.CreateUser(context.Background(), tt.userName, tt.native, tt.target)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, record)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", record.ID)
			assert.Equal(t, "Ana", record.Name)
			assert.Equal(t, 1, record.Progress.CurrentStreak)
			assert.Equal(t, 10, record.Progress.DailyGoal)
			assert.Equal(t, testDay.Format(dateLayout), record.Progress.LastLoginDate)
			require.Len(t, record.LanguagePairs, 1)
			assert.Equal(t, "en", record.LanguagePairs[0].NativeLanguage)
			assert.Equal(t, "es", record.LanguagePairs[0].TargetLanguage)
			assert.Equal(t, record.LanguagePairs[0].ID, record.CurrentLanguagePair)
			assert.True(t, record.Preferences.SoundEnabled)
		})
	}
}

func TestProgressService_CreateUser_ExistingUnchanged(t *testing.T) {
	existing := existingUser()
	svc, repo, _ := setupProgressService(t, existing)

	record, err := svc.CreateUser(context.Background(), "Bob", "fr", "de")

	require.NoError(t, err)
	assert.Equal(t, existing, record)
	assert.Equal(t, 0, repo.saves)
}

func TestProgressService_OnAppStart_Streak(t *testing.T) {
	tests := []struct {
		name           string
		lastLoginDays  int
		expectedStreak int
		expectedToday  int
	}{
		{
			name:           "next day extends streak",
			lastLoginDays:  1,
			expectedStreak: 2,
			expectedToday:  0,
		},
		{
			name:           "five day gap resets streak",
			lastLoginDays:  5,
			expectedStreak: 1,
			expectedToday:  0,
		},
		{
			name:           "same day changes nothing",
			lastLoginDays:  0,
			expectedStreak: 1,
			expectedToday:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := existingUser()
			record.Progress.LastLoginDate = testDay.AddDate(0, 0, -tt.lastLoginDays).Format(dateLayout)
			record.Progress.WordsLearnedToday = 4
			svc, repo, _ := setupProgressService(t, record)

			err := svc.OnAppStart(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStreak, repo.record.Progress.CurrentStreak)
			assert.Equal(t, tt.expectedToday, repo.record.Progress.WordsLearnedToday)
			assert.Equal(t, testDay.Format(dateLayout), repo.record.Progress.LastLoginDate)
			assert.GreaterOrEqual(t, repo.record.Progress.LongestStreak, repo.record.Progress.CurrentStreak)
		})
	}
}

func TestProgressService_OnAppStart_LongestStreakFollows(t *testing.T) {
	record := existingUser()
	record.Progress.CurrentStreak = 3
	record.Progress.LongestStreak = 3
	record.Progress.LastLoginDate = testDay.AddDate(0, 0, -1).Format(dateLayout)
	svc, repo, _ := setupProgressService(t, record)

	require.NoError(t, svc.OnAppStart(context.Background()))

	assert.Equal(t, 4, repo.record.Progress.CurrentStreak)
	assert.Equal(t, 4, repo.record.Progress.LongestStreak)
}

func TestProgressService_OnAppStart_RunsOnce(t *testing.T) {
	record := existingUser()
	record.Progress.LastLoginDate = testDay.AddDate(0, 0, -1).Format(dateLayout)
	svc, repo, clock := setupProgressService(t, record)

	require.NoError(t, svc.OnAppStart(context.Background()))
	streak := repo.record.Progress.CurrentStreak

	// A second call, even on a later day, must not run again
	clock.now = testDay.AddDate(0, 0, 1)
	require.NoError(t, svc.OnAppStart(context.Background()))
	assert.Equal(t, streak, repo.record.Progress.CurrentStreak)
	assert.Equal(t, 1, repo.saves)
}

func TestProgressService_OnAppStart_NoUser(t *testing.T) {
	svc, repo, _ := setupProgressService(t, nil)

	err := svc.OnAppStart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, repo.saves)
}

func TestProgressService_OnAppStart_LegacyMigration(t *testing.T) {
	record := &models.UserRecord{
		ID:             "user-1",
		Name:           "Ana",
		NativeLanguage: "en",
		TargetLanguage: "es",
		Progress: models.ProgressState{
			TotalWordsLearned:     150,
			TotalLessonsCompleted: 4,
			LastLoginDate:         testDay.Format(dateLayout),
		},
	}
	svc, repo, _ := setupProgressService(t, record)

	require.NoError(t, svc.OnAppStart(context.Background()))

	migrated := repo.record
	require.Len(t, migrated.LanguagePairs, 1)
	pair := migrated.LanguagePairs[0]
	assert.Equal(t, "en", pair.NativeLanguage)
	assert.Equal(t, "es", pair.TargetLanguage)
	assert.Equal(t, 150, pair.Progress.WordsLearned)
	assert.Equal(t, 4, pair.Progress.LessonsCompleted)
	assert.Equal(t, models.DifficultyIntermediate, pair.Progress.CurrentLevel)
	assert.Equal(t, pair.ID, migrated.CurrentLanguagePair)
	assert.Empty(t, migrated.NativeLanguage)
	assert.Empty(t, migrated.TargetLanguage)
}

func TestProgressService_RecordWordLearned(t *testing.T) {
	record := existingUser()
	record.LanguagePairs[0].Progress.WordsLearned = 99
	svc, repo, _ := setupProgressService(t, record)

	require.NoError(t, svc.RecordWordLearned(context.Background()))

	saved := repo.record
	assert.Equal(t, 1, saved.Progress.TotalWordsLearned)
	assert.Equal(t, 1, saved.Progress.WordsLearnedToday)
	assert.Equal(t, 100, saved.LanguagePairs[0].Progress.WordsLearned)
	assert.Equal(t, models.DifficultyIntermediate, saved.LanguagePairs[0].Progress.CurrentLevel)
	require.Len(t, saved.Progress.WeeklyProgress, 1)
	assert.Equal(t, testDay.Format(dateLayout), saved.Progress.WeeklyProgress[0].Date)
	assert.Equal(t, 1, saved.Progress.WeeklyProgress[0].WordsLearned)
}

func TestProgressService_RecordWordLearned_Monotonic(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	previous := 0
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RecordWordLearned(context.Background()))
		assert.Greater(t, repo.record.Progress.TotalWordsLearned, previous)
		previous = repo.record.Progress.TotalWordsLearned
	}
	assert.Equal(t, 5, previous)
}

func TestProgressService_RecordWordLearned_NoUser(t *testing.T) {
	svc, repo, _ := setupProgressService(t, nil)

	require.NoError(t, svc.RecordWordLearned(context.Background()))

	assert.Equal(t, 0, repo.saves)
}

func TestProgressService_WeeklyProgressTrimmed(t *testing.T) {
	svc, repo, clock := setupProgressService(t, existingUser())

	for day := 0; day < 9; day++ {
		clock.now = testDay.AddDate(0, 0, day)
		require.NoError(t, svc.RecordWordLearned(context.Background()))
	}

	week := repo.record.Progress.WeeklyProgress
	require.Len(t, week, 7)
	assert.Equal(t, testDay.AddDate(0, 0, 2).Format(dateLayout), week[0].Date)
	assert.Equal(t, testDay.AddDate(0, 0, 8).Format(dateLayout), week[6].Date)
}

func TestProgressService_RecordTimeSpent(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	require.NoError(t, svc.RecordTimeSpent(context.Background(), 120))
	require.NoError(t, svc.RecordTimeSpent(context.Background(), 60))
	require.NoError(t, svc.RecordTimeSpent(context.Background(), 0))

	week := repo.record.Progress.WeeklyProgress
	require.Len(t, week, 1)
	assert.Equal(t, 180, week[0].TimeSpent)
}

func TestProgressService_MarkSectionComplete_Idempotent(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	require.NoError(t, svc.MarkSectionComplete(context.Background(), "food-beginner-section-0"))
	require.NoError(t, svc.MarkSectionComplete(context.Background(), "food-beginner-section-0"))

	assert.Equal(t, []string{"food-beginner-section-0"}, repo.record.Progress.CompletedSections)
}

func TestProgressService_MarkLessonComplete_Idempotent(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	require.NoError(t, svc.MarkLessonComplete(context.Background(), "food-beginner-lesson-0"))
	require.NoError(t, svc.MarkLessonComplete(context.Background(), "food-beginner-lesson-0"))

	saved := repo.record
	assert.Equal(t, []string{"food-beginner-lesson-0"}, saved.Progress.CompletedLessons)
	assert.Equal(t, 1, saved.Progress.TotalLessonsCompleted)
	assert.Equal(t, 1, saved.LanguagePairs[0].Progress.LessonsCompleted)
	require.Len(t, saved.Progress.WeeklyProgress, 1)
	assert.Equal(t, 1, saved.Progress.WeeklyProgress[0].LessonsCompleted)
}

func TestProgressService_AddLanguagePair(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	pair, err := svc.AddLanguagePair(context.Background(), "en", "fr")

	require.NoError(t, err)
	assert.Equal(t, "en", pair.NativeLanguage)
	assert.Equal(t, "fr", pair.TargetLanguage)
	assert.Equal(t, models.DifficultyBeginner, pair.Progress.CurrentLevel)
	assert.Len(t, repo.record.LanguagePairs, 2)
	// Adding does not switch the current pair
	assert.Equal(t, "en-es-1", repo.record.CurrentLanguagePair)
}

func TestProgressService_AddLanguagePair_Duplicate(t *testing.T) {
	svc, _, _ := setupProgressService(t, existingUser())

	_, err := svc.AddLanguagePair(context.Background(), "en", "es")

	assert.ErrorIs(t, err, ErrPairExists)
}

func TestProgressService_AddLanguagePair_NoUser(t *testing.T) {
	svc, _, _ := setupProgressService(t, nil)

	_, err := svc.AddLanguagePair(context.Background(), "en", "fr")

	assert.ErrorIs(t, err, ErrNoActiveUser)
}

func TestProgressService_RemoveLanguagePair(t *testing.T) {
	record := existingUser()
	record.LanguagePairs = append(record.LanguagePairs, models.LanguagePair{
		ID: "en-fr-2", NativeLanguage: "en", TargetLanguage: "fr",
	})
	record.CurrentLanguagePair = "en-fr-2"
	svc, repo, _ := setupProgressService(t, record)

	require.NoError(t, svc.RemoveLanguagePair(context.Background(), "en-fr-2"))

	require.Len(t, repo.record.LanguagePairs, 1)
	// Removing the current pair repoints current to the first remaining
	assert.Equal(t, "en-es-1", repo.record.CurrentLanguagePair)
}

func TestProgressService_RemoveLanguagePair_Last(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	err := svc.RemoveLanguagePair(context.Background(), "en-es-1")

	assert.ErrorIs(t, err, ErrLastLanguagePair)
	assert.Len(t, repo.record.LanguagePairs, 1)
}

func TestProgressService_RemoveLanguagePair_Unknown(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	require.NoError(t, svc.RemoveLanguagePair(context.Background(), "nope"))

	assert.Len(t, repo.record.LanguagePairs, 1)
	assert.Equal(t, 0, repo.saves)
}

func TestProgressService_CurrentLanguagePair_SelfHeals(t *testing.T) {
	record := existingUser()
	record.CurrentLanguagePair = "dangling"
	svc, repo, _ := setupProgressService(t, record)

	pair, err := svc.CurrentLanguagePair(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "en-es-1", pair.ID)
	assert.Equal(t, "en-es-1", repo.record.CurrentLanguagePair)
}

func TestProgressService_SetCurrentLanguagePair_Unknown(t *testing.T) {
	svc, _, _ := setupProgressService(t, existingUser())

	err := svc.SetCurrentLanguagePair(context.Background(), "nope")

	assert.Error(t, err)
}

func TestProgressService_SetDailyGoal(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	assert.Error(t, svc.SetDailyGoal(context.Background(), 0))
	assert.Error(t, svc.SetDailyGoal(context.Background(), -3))
	require.NoError(t, svc.SetDailyGoal(context.Background(), 25))
	assert.Equal(t, 25, repo.record.Progress.DailyGoal)
}

func TestProgressService_DailyGoalReached(t *testing.T) {
	record := existingUser()
	record.Progress.DailyGoal = 3
	svc, _, _ := setupProgressService(t, record)

	reached, err := svc.DailyGoalReached(context.Background())
	require.NoError(t, err)
	assert.False(t, reached)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordWordLearned(context.Background()))
	}
	reached, err = svc.DailyGoalReached(context.Background())
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestProgressService_WordsPerDay(t *testing.T) {
	record := existingUser()
	svc, _, _ := setupProgressService(t, record)

	average, err := svc.WordsPerDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, average)

	record.Progress.WeeklyProgress = []models.DailyProgress{
		{Date: "2026-03-08", WordsLearned: 4},
		{Date: "2026-03-09", WordsLearned: 10},
		{Date: "2026-03-10", WordsLearned: 7},
	}
	average, err = svc.WordsPerDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, average)

	week, err := svc.WeeklyProgress(context.Background())
	require.NoError(t, err)
	assert.Len(t, week, 3)
}

func TestProgressService_SetPreferences(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	require.NoError(t, svc.SetPreferences(context.Background(), models.Preferences{
		SoundEnabled: false,
		VoiceURI:     "es-ES-standard",
	}))

	assert.False(t, repo.record.Preferences.SoundEnabled)
	assert.Equal(t, "es-ES-standard", repo.record.Preferences.VoiceURI)
}

func TestProgressService_LessonStats(t *testing.T) {
	record := existingUser()
	record.Progress.CompletedSections = []string{"a", "b", "c"}
	record.Progress.CompletedLessons = []string{"x"}
	record.Progress.TotalWordsLearned = 42
	svc, _, _ := setupProgressService(t, record)

	stats, err := svc.LessonStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.SectionsCompleted)
	assert.Equal(t, 1, stats.LessonsCompleted)
	assert.Equal(t, 42, stats.TotalWordsLearned)
}

func TestProgressService_ResetProfile(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())

	require.NoError(t, svc.ResetProfile(context.Background()))

	assert.Nil(t, repo.record)
	record, err := svc.User(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestProgressService_LoadFailure(t *testing.T) {
	svc, repo, _ := setupProgressService(t, existingUser())
	repo.loadErr = errors.New("db down")

	assert.Error(t, svc.RecordWordLearned(context.Background()))
	_, err := svc.LessonStats(context.Background())
	assert.Error(t, err)
}
