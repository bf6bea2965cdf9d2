package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vocaplay/engine/internal/catalog"
	"github.com/vocaplay/engine/internal/models"
	"github.com/vocaplay/engine/internal/planner"
)

// Index arithmetic of the flattened word slice. The lesson stride is a fixed
// compatibility constant; stored cursor positions were produced against it,
// so it must not be derived from the planner constants.
const (
	lessonStride = 50
	sectionSize  = 10
)

// CatalogResolver is the interface that wraps vocabulary resolution
type CatalogResolver interface {
	// Resolve returns vocabulary for a language pair, applying fallbacks.
	//
	// "native" is the learner's native language code.
	// "target" is the language being learned.
	//
	// Returns the resolution and an error if any.
	Resolve(native, target string) (*catalog.Resolution, error)
}

// ProgressTracker is the interface that wraps the progress operations a
// learning session reports into
type ProgressTracker interface {
	// User returns the stored user record, or nil when no user exists.
	User(ctx context.Context) (*models.UserRecord, error)
	// CurrentLanguagePair returns the active language pair.
	CurrentLanguagePair(ctx context.Context) (*models.LanguagePair, error)
	// SetCurrentLanguagePair switches the active language pair.
	SetCurrentLanguagePair(ctx context.Context, pairID string) error
	// RecordWordLearned increments the learned-word counters.
	RecordWordLearned(ctx context.Context) error
	// MarkSectionComplete records a completed section id.
	MarkSectionComplete(ctx context.Context, sectionID string) error
	// MarkLessonComplete records a completed lesson id.
	MarkLessonComplete(ctx context.Context, lessonID string) error
}

// SessionService tracks where the learner currently is: the active language
// pair, lesson index and section index against that pair's lesson plan.
// It is driven by a single UI goroutine and is not safe for concurrent use.
type SessionService struct {
	catalog    CatalogResolver
	progress   ProgressTracker
	pronouncer Pronouncer
	logger     *zap.Logger

	resolution *catalog.Resolution
	plan       *models.LessonPlan
	pairID     string
	lessonIdx  int
	sectionIdx int
}

// NewSessionService creates a new session service
func NewSessionService(catalogResolver CatalogResolver, progress ProgressTracker, pronouncer Pronouncer, logger *zap.Logger) *SessionService {
	return &SessionService{
		catalog:    catalogResolver,
		progress:   progress,
		pronouncer: pronouncer,
		logger:     logger,
	}
}

// Start binds the session to the current language pair, resolves its
// vocabulary and builds the lesson plan. The cursor starts at (0, 0).
func (s *SessionService) Start(ctx context.Context) error {
	pair, err := s.progress.CurrentLanguagePair(ctx)
	if err != nil {
		return err
	}

	resolution, err := s.catalog.Resolve(pair.NativeLanguage, pair.TargetLanguage)
	if err != nil {
		return err
	}
	if resolution.Reason != "" {
		s.logger.Warn("session using fallback vocabulary", zap.String("reason", resolution.Reason))
	}

	s.resolution = resolution
	s.pairID = pair.ID
	s.lessonIdx = 0
	s.sectionIdx = 0

	return s.rebuildPlan(ctx)
}

// rebuildPlan recomputes the lesson plan from the current vocabulary and the
// stored completed-section set
func (s *SessionService) rebuildPlan(ctx context.Context) error {
	record, err := s.progress.User(ctx)
	if err != nil {
		return err
	}
	completed := map[string]bool{}
	if record != nil {
		completed = record.Progress.CompletedSectionSet()
	}
	s.plan = planner.Plan(s.resolution.Entries, completed)
	return nil
}

// Plan returns the lesson plan of the active session, or nil before Start
func (s *SessionService) Plan() *models.LessonPlan {
	return s.plan
}

// Vocabulary returns the full ordered vocabulary of the active session
func (s *SessionService) Vocabulary() []models.VocabularyEntry {
	if s.resolution == nil {
		return []models.VocabularyEntry{}
	}
	return s.resolution.Entries
}

// ContinueIndex returns the index of the first uncompleted lesson, or -1
// when everything is done. Advisory only; navigation is never locked to it.
func (s *SessionService) ContinueIndex() int {
	if s.plan == nil {
		return -1
	}
	return planner.FirstUncompleted(s.plan.Lessons)
}

// Cursor returns the active (lesson index, section index)
func (s *SessionService) Cursor() (int, int) {
	return s.lessonIdx, s.sectionIdx
}

// SetCursor moves the session to a lesson and section chosen by the learner
func (s *SessionService) SetCursor(lessonIndex, sectionIndex int) error {
	if lessonIndex < 0 || sectionIndex < 0 {
		return fmt.Errorf("invalid cursor position (%d, %d)", lessonIndex, sectionIndex)
	}
	s.lessonIdx = lessonIndex
	s.sectionIdx = sectionIndex
	return nil
}

// WordsAt resolves the flattened word slice for a lesson and section by
// index arithmetic over the catalog-ordered vocabulary. Out-of-range
// positions yield an empty slice.
func (s *SessionService) WordsAt(lessonIndex, sectionIndex int) []models.VocabularyEntry {
	vocabulary := s.Vocabulary()
	start := lessonIndex*lessonStride + sectionIndex*sectionSize
	if start < 0 || start >= len(vocabulary) {
		return []models.VocabularyEntry{}
	}
	end := start + sectionSize
	if end > len(vocabulary) {
		end = len(vocabulary)
	}
	return vocabulary[start:end]
}

// CurrentLessonWords returns the word slice at the active cursor position
func (s *SessionService) CurrentLessonWords() []models.VocabularyEntry {
	return s.WordsAt(s.lessonIdx, s.sectionIdx)
}

// CompleteSection finishes the section at the cursor: every word of the
// section is reported as learned, the section id is recorded and the cursor
// advances. When the section was the last one of its lesson, the lesson id
// is recorded too and the cursor moves to the next lesson. The returned flag
// reports whether a lesson was completed.
func (s *SessionService) CompleteSection(ctx context.Context) (bool, error) {
	lesson, section, err := s.current()
	if err != nil {
		return false, err
	}

	for range section.Words {
		if err := s.progress.RecordWordLearned(ctx); err != nil {
			return false, err
		}
	}
	if err := s.progress.MarkSectionComplete(ctx, section.ID); err != nil {
		return false, err
	}

	lessonDone := s.sectionIdx == len(lesson.Sections)-1
	if lessonDone {
		if err := s.progress.MarkLessonComplete(ctx, lesson.ID); err != nil {
			return false, err
		}
		s.logger.Info("lesson completed",
			zap.String("lesson", lesson.ID),
			zap.Int("words", lesson.TotalWords),
		)
		s.lessonIdx++
		s.sectionIdx = 0
	} else {
		s.sectionIdx++
	}

	if err := s.rebuildPlan(ctx); err != nil {
		return false, err
	}
	return lessonDone, nil
}

// current returns the lesson and section at the cursor position
func (s *SessionService) current() (*models.Lesson, *models.Section, error) {
	if s.plan == nil {
		return nil, nil, fmt.Errorf("session not started")
	}
	if s.lessonIdx >= len(s.plan.Lessons) {
		return nil, nil, fmt.Errorf("lesson index %d out of range", s.lessonIdx)
	}
	lesson := &s.plan.Lessons[s.lessonIdx]
	if s.sectionIdx >= len(lesson.Sections) {
		return nil, nil, fmt.Errorf("section index %d out of range", s.sectionIdx)
	}
	return lesson, &lesson.Sections[s.sectionIdx], nil
}

// SwitchLanguagePair activates another language pair and rebuilds the
// session from that pair's own vocabulary. The cursor resets to (0, 0) so
// no position leaks between pairs.
func (s *SessionService) SwitchLanguagePair(ctx context.Context, pairID string) error {
	if err := s.progress.SetCurrentLanguagePair(ctx, pairID); err != nil {
		return err
	}
	return s.Start(ctx)
}

// Pronounce speaks a word in the session's target language, honoring the
// user's sound preference. Fire and forget; a missing user plays nothing.
func (s *SessionService) Pronounce(ctx context.Context, word string) error {
	if s.resolution == nil {
		return fmt.Errorf("session not started")
	}
	record, err := s.progress.User(ctx)
	if err != nil {
		return err
	}
	if record == nil || !record.Preferences.SoundEnabled {
		return nil
	}
	return s.pronouncer.Pronounce(word, s.resolution.Target)
}
