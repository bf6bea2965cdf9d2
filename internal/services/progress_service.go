package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vocaplay/engine/internal/models"
)

var (
	// ErrNoActiveUser is returned by operations that need a user record when
	// none has been created yet
	ErrNoActiveUser = errors.New("no active user")
	// ErrLastLanguagePair is returned when removing the only language pair
	ErrLastLanguagePair = errors.New("cannot remove the last language pair")
	// ErrPairExists is returned when adding a language pair that is already present
	ErrPairExists = errors.New("language pair already exists")
)

// dateLayout is the calendar-day format used for streak arithmetic
const dateLayout = "2006-01-02"

// Word totals at which the per-pair level is promoted
const (
	intermediateThreshold = 100
	advancedThreshold     = 300
)

// UserRecordRepository is the interface that wraps the user record storage methods
type UserRecordRepository interface {
	// Load retrieves the stored user record, or nil when no user exists.
	//
	// Returns the user record and an error if any.
	Load(ctx context.Context) (*models.UserRecord, error)
	// Save writes the user record document.
	//
	// "record" is the user record to persist.
	//
	// Returns an error if any.
	Save(ctx context.Context, record *models.UserRecord) error
	// Reset deletes the user record.
	//
	// Returns an error if any.
	Reset(ctx context.Context) error
}

// ProgressService owns the user record and its learning counters. Mutations
// load the record, apply the change and save it back; when no user exists
// yet, counter mutations are silent no-ops so callers need no guards.
type ProgressService struct {
	repo      UserRecordRepository
	logger    *zap.Logger
	clock     Clock
	newID     func() string
	dailyGoal int
	started   bool
}

// NewProgressService creates a new progress service.
//
// "dailyGoal" is the words-per-day goal given to newly created users.
func NewProgressService(repo UserRecordRepository, logger *zap.Logger, clock Clock, dailyGoal int) *ProgressService {
	return &ProgressService{
		repo:      repo,
		logger:    logger,
		clock:     clock,
		newID:     uuid.NewString,
		dailyGoal: dailyGoal,
	}
}

// User returns the stored user record, or nil when no user exists
func (s *ProgressService) User(ctx context.Context) (*models.UserRecord, error) {
	return s.repo.Load(ctx)
}

// CreateUser creates and persists a new user record with one language pair.
// If a user already exists it is returned unchanged.
func (s *ProgressService) CreateUser(ctx context.Context, name, native, target string) (*models.UserRecord, error) {
	validations := []func() error{
		func() error {
			if name == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		},
		func() error {
			if native == "" {
				return fmt.Errorf("native language is required")
			}
			return nil
		},
		func() error {
			if target == "" || target == native {
				return fmt.Errorf("target language must be set and differ from the native language")
			}
			return nil
		},
	}
	errChan := make(chan error, len(validations))
	for _, validate := range validations {
		go func(validate func() error) {
			errChan <- validate()
		}(validate)
	}
	for range validations {
		if err := <-errChan; err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	today := s.today()
	record := &models.UserRecord{
		ID:   s.newID(),
		Name: name,
		Progress: models.ProgressState{
			CurrentStreak:     1,
			LongestStreak:     1,
			CompletedLessons:  []string{},
			CompletedSections: []string{},
			LastLoginDate:     today,
			DailyGoal:         s.dailyGoal,
			WeeklyProgress:    []models.DailyProgress{},
		},
		LanguagePairs: []models.LanguagePair{
			{
				ID:             s.pairID(native, target),
				NativeLanguage: native,
				TargetLanguage: target,
				AddedDate:      today,
				Progress:       models.PairProgress{CurrentLevel: models.DifficultyBeginner},
			},
		},
		Preferences: models.Preferences{SoundEnabled: true},
	}
	record.CurrentLanguagePair = record.LanguagePairs[0].ID

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("id", record.ID),
		zap.String("pair", record.CurrentLanguagePair),
	)
	return record, nil
}

// OnAppStart runs the once-per-launch maintenance of the user record: legacy
// field migration, current-pair healing and the daily streak update. It runs
// at most once per service lifetime and is a no-op when no user exists.
func (s *ProgressService) OnAppStart(ctx context.Context) error {
	if s.started {
		return nil
	}
	s.started = true

	record, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return nil
	}

	s.migrateLegacyPair(record)
	s.healCurrentPair(record)
	s.updateStreak(&record.Progress)

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("failed to save user record on app start", zap.Error(err))
		return err
	}
	return nil
}

// migrateLegacyPair converts the flat native/target fields of records written
// before language pairs existed into a first language pair
func (s *ProgressService) migrateLegacyPair(record *models.UserRecord) {
	if len(record.LanguagePairs) > 0 || record.NativeLanguage == "" || record.TargetLanguage == "" {
		return
	}

	pair := models.LanguagePair{
		ID:             s.pairID(record.NativeLanguage, record.TargetLanguage),
		NativeLanguage: record.NativeLanguage,
		TargetLanguage: record.TargetLanguage,
		AddedDate:      s.today(),
		Progress: models.PairProgress{
			WordsLearned:     record.Progress.TotalWordsLearned,
			LessonsCompleted: record.Progress.TotalLessonsCompleted,
			CurrentLevel:     levelFor(record.Progress.TotalWordsLearned),
		},
	}
	record.LanguagePairs = []models.LanguagePair{pair}
	record.CurrentLanguagePair = pair.ID
	record.NativeLanguage = ""
	record.TargetLanguage = ""

	s.logger.Info("migrated legacy language fields", zap.String("pair", pair.ID))
}

// healCurrentPair repoints the current pair id at the first pair when it no
// longer matches any stored pair
func (s *ProgressService) healCurrentPair(record *models.UserRecord) {
	if len(record.LanguagePairs) == 0 {
		record.CurrentLanguagePair = ""
		return
	}
	for _, pair := range record.LanguagePairs {
		if pair.ID == record.CurrentLanguagePair {
			return
		}
	}
	s.logger.Warn("current language pair missing, repointing",
		zap.String("was", record.CurrentLanguagePair),
		zap.String("now", record.LanguagePairs[0].ID),
	)
	record.CurrentLanguagePair = record.LanguagePairs[0].ID
}

// updateStreak applies the calendar-day streak rules. A login the day after
// the last one extends the streak, a longer gap resets it to 1 and a repeat
// login the same day changes nothing. Any new day resets the daily counter.
func (s *ProgressService) updateStreak(p *models.ProgressState) {
	today := s.today()
	if p.LastLoginDate == "" {
		p.CurrentStreak = 1
	} else {
		days := daysBetween(p.LastLoginDate, today)
		switch {
		case days == 1:
			p.CurrentStreak++
		case days > 1:
			p.CurrentStreak = 1
		}
		if days > 0 {
			p.WordsLearnedToday = 0
		}
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastLoginDate = today
}

// RecordWordLearned increments the word counters of the user and of the
// current language pair. No-op when no user exists.
func (s *ProgressService) RecordWordLearned(ctx context.Context) error {
	return s.mutate(ctx, func(record *models.UserRecord) {
		record.Progress.TotalWordsLearned++
		record.Progress.WordsLearnedToday++

		day := touchDay(&record.Progress, s.today())
		day.WordsLearned++

		if pair := findPair(record, record.CurrentLanguagePair); pair != nil {
			pair.Progress.WordsLearned++
			pair.Progress.CurrentLevel = levelFor(pair.Progress.WordsLearned)
		}
	})
}

// RecordTimeSpent adds study time in seconds to today's counters. No-op when
// no user exists.
func (s *ProgressService) RecordTimeSpent(ctx context.Context, seconds int) error {
	if seconds <= 0 {
		return nil
	}
	return s.mutate(ctx, func(record *models.UserRecord) {
		day := touchDay(&record.Progress, s.today())
		day.TimeSpent += seconds
	})
}

// MarkSectionComplete records a completed section id. Completing the same
// section again changes nothing.
func (s *ProgressService) MarkSectionComplete(ctx context.Context, sectionID string) error {
	return s.mutate(ctx, func(record *models.UserRecord) {
		if record.Progress.HasCompletedSection(sectionID) {
			return
		}
		record.Progress.CompletedSections = append(record.Progress.CompletedSections, sectionID)
	})
}

// MarkLessonComplete records a completed lesson id and bumps the lesson
// counters. Completing the same lesson again changes nothing.
func (s *ProgressService) MarkLessonComplete(ctx context.Context, lessonID string) error {
	return s.mutate(ctx, func(record *models.UserRecord) {
		if record.Progress.HasCompletedLesson(lessonID) {
			return
		}
		record.Progress.CompletedLessons = append(record.Progress.CompletedLessons, lessonID)
		record.Progress.TotalLessonsCompleted++

		day := touchDay(&record.Progress, s.today())
		day.LessonsCompleted++

		if pair := findPair(record, record.CurrentLanguagePair); pair != nil {
			pair.Progress.LessonsCompleted++
		}
	})
}

// AddLanguagePair adds a new language pair with fresh progress. The current
// pair does not change.
func (s *ProgressService) AddLanguagePair(ctx context.Context, native, target string) (*models.LanguagePair, error) {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return nil, ErrNoActiveUser
	}

	for _, pair := range record.LanguagePairs {
		if pair.NativeLanguage == native && pair.TargetLanguage == target {
			return nil, ErrPairExists
		}
	}

	pair := models.LanguagePair{
		ID:             s.pairID(native, target),
		NativeLanguage: native,
		TargetLanguage: target,
		AddedDate:      s.today(),
		Progress:       models.PairProgress{CurrentLevel: models.DifficultyBeginner},
	}
	record.LanguagePairs = append(record.LanguagePairs, pair)

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("failed to add language pair", zap.Error(err))
		return nil, err
	}
	return &pair, nil
}

// RemoveLanguagePair deletes a language pair and its progress. The last
// remaining pair cannot be removed; removing an unknown id is a no-op.
func (s *ProgressService) RemoveLanguagePair(ctx context.Context, pairID string) error {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return nil
	}

	index := -1
	for i, pair := range record.LanguagePairs {
		if pair.ID == pairID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}
	if len(record.LanguagePairs) == 1 {
		return ErrLastLanguagePair
	}

	record.LanguagePairs = append(record.LanguagePairs[:index], record.LanguagePairs[index+1:]...)
	if record.CurrentLanguagePair == pairID {
		record.CurrentLanguagePair = record.LanguagePairs[0].ID
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("failed to remove language pair", zap.Error(err))
		return err
	}
	return nil
}

// SetCurrentLanguagePair switches the active language pair
func (s *ProgressService) SetCurrentLanguagePair(ctx context.Context, pairID string) error {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return nil
	}

	if findPair(record, pairID) == nil {
		return fmt.Errorf("language pair not found: %s", pairID)
	}
	record.CurrentLanguagePair = pairID

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("failed to set current language pair", zap.Error(err))
		return err
	}
	return nil
}

// CurrentLanguagePair returns the active language pair. A dangling current
// pair id is healed to the first stored pair before returning.
func (s *ProgressService) CurrentLanguagePair(ctx context.Context) (*models.LanguagePair, error) {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return nil, ErrNoActiveUser
	}
	if len(record.LanguagePairs) == 0 {
		return nil, fmt.Errorf("user has no language pairs")
	}

	if findPair(record, record.CurrentLanguagePair) == nil {
		s.healCurrentPair(record)
		if err := s.repo.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save user record: %w", err)
		}
	}

	pair := *findPair(record, record.CurrentLanguagePair)
	return &pair, nil
}

// SetDailyGoal updates the words-per-day goal
func (s *ProgressService) SetDailyGoal(ctx context.Context, goal int) error {
	if goal <= 0 {
		return fmt.Errorf("daily goal must be positive, got %d", goal)
	}
	return s.mutate(ctx, func(record *models.UserRecord) {
		record.Progress.DailyGoal = goal
	})
}

// SetPreferences replaces the stored user preferences
func (s *ProgressService) SetPreferences(ctx context.Context, prefs models.Preferences) error {
	return s.mutate(ctx, func(record *models.UserRecord) {
		record.Preferences = prefs
	})
}

// DailyGoalReached reports whether today's learned words meet the daily goal
func (s *ProgressService) DailyGoalReached(ctx context.Context) (bool, error) {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return false, nil
	}
	goal := record.Progress.DailyGoal
	return goal > 0 && record.Progress.WordsLearnedToday >= goal, nil
}

// WordsPerDay returns the average words learned per recorded day of the
// rolling week, zero when no activity exists yet
func (s *ProgressService) WordsPerDay(ctx context.Context) (int, error) {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil || len(record.Progress.WeeklyProgress) == 0 {
		return 0, nil
	}
	total := 0
	for _, day := range record.Progress.WeeklyProgress {
		total += day.WordsLearned
	}
	return total / len(record.Progress.WeeklyProgress), nil
}

// WeeklyProgress returns the per-day counters of the rolling week, oldest first
func (s *ProgressService) WeeklyProgress(ctx context.Context) ([]models.DailyProgress, error) {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return []models.DailyProgress{}, nil
	}
	week := make([]models.DailyProgress, len(record.Progress.WeeklyProgress))
	copy(week, record.Progress.WeeklyProgress)
	return week, nil
}

// LessonStats derives the dashboard counters from the stored progress. It is
// computed on demand and never persisted.
func (s *ProgressService) LessonStats(ctx context.Context) (*models.LessonStats, error) {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return &models.LessonStats{}, nil
	}
	return &models.LessonStats{
		SectionsCompleted: len(record.Progress.CompletedSections),
		LessonsCompleted:  len(record.Progress.CompletedLessons),
		TotalWordsLearned: record.Progress.TotalWordsLearned,
	}, nil
}

// ResetProfile deletes the user record and everything derived from it
func (s *ProgressService) ResetProfile(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		s.logger.Error("failed to reset profile", zap.Error(err))
		return err
	}
	s.started = false
	s.logger.Info("profile reset")
	return nil
}

// mutate loads the user record, applies fn and saves the result. When no
// user exists the mutation silently does nothing.
func (s *ProgressService) mutate(ctx context.Context, fn func(record *models.UserRecord)) error {
	record, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user record: %w", err)
	}
	if record == nil {
		return nil
	}

	fn(record)

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("failed to save user record", zap.Error(err))
		return err
	}
	return nil
}

// today returns the current calendar day
func (s *ProgressService) today() string {
	return s.clock.Now().Format(dateLayout)
}

// pairID builds a unique id for a new language pair
func (s *ProgressService) pairID(native, target string) string {
	return fmt.Sprintf("%s-%s-%d", native, target, s.clock.Now().UnixMilli())
}

// daysBetween returns the whole calendar days from one date to another, or
// -1 when either date does not parse
func daysBetween(from, to string) int {
	f, err := time.Parse(dateLayout, from)
	if err != nil {
		return -1
	}
	t, err := time.Parse(dateLayout, to)
	if err != nil {
		return -1
	}
	return int(t.Sub(f).Hours() / 24)
}

// touchDay returns today's entry of the rolling week, creating it and
// trimming the window to seven days when needed
func touchDay(p *models.ProgressState, date string) *models.DailyProgress {
	for i := range p.WeeklyProgress {
		if p.WeeklyProgress[i].Date == date {
			return &p.WeeklyProgress[i]
		}
	}
	p.WeeklyProgress = append(p.WeeklyProgress, models.DailyProgress{Date: date})
	if len(p.WeeklyProgress) > 7 {
		p.WeeklyProgress = p.WeeklyProgress[len(p.WeeklyProgress)-7:]
	}
	return &p.WeeklyProgress[len(p.WeeklyProgress)-1]
}

// findPair returns the stored pair with the given id, or nil
func findPair(record *models.UserRecord, pairID string) *models.LanguagePair {
	for i := range record.LanguagePairs {
		if record.LanguagePairs[i].ID == pairID {
			return &record.LanguagePairs[i]
		}
	}
	return nil
}

// levelFor derives the pair level from its learned-word total
func levelFor(wordsLearned int) models.Difficulty {
	switch {
	case wordsLearned >= advancedThreshold:
		return models.DifficultyAdvanced
	case wordsLearned >= intermediateThreshold:
		return models.DifficultyIntermediate
	default:
		return models.DifficultyBeginner
	}
}
