package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/vocaplay/engine/internal/models"
)

// ErrNoWords is returned when no vocabulary at all is available for a game
// round. Fewer words than the game's target is acceptable; zero is not.
var ErrNoWords = errors.New("no words available for this game")

// GameScoreRepository is the interface that wraps the game score storage methods
type GameScoreRepository interface {
	// Append inserts a finished game round.
	//
	// "score" is the round result to store.
	//
	// Returns an error if any.
	Append(ctx context.Context, score models.GameScore) error
	// ListByPair retrieves the scores recorded for one language pair,
	// newest first.
	//
	// "pairID" is the exact language pair id to match.
	//
	// Returns the scores and an error if any.
	ListByPair(ctx context.Context, pairID string) ([]models.GameScore, error)
}

// RoundContext carries the learner's current lesson words so a game can
// practice what is being studied right now
type RoundContext struct {
	LessonWords []models.VocabularyEntry
}

// GameService sizes and shuffles word subsets for game rounds and records
// finished rounds
type GameService struct {
	scores GameScoreRepository
	logger *zap.Logger
	clock  Clock
}

// NewGameService creates a new game service
func NewGameService(scores GameScoreRepository, logger *zap.Logger, clock Clock) *GameService {
	return &GameService{
		scores: scores,
		logger: logger,
		clock:  clock,
	}
}

// SelectWords picks the word subset for one round of a game. With a round
// context the current lesson words are preferred, padded with same-category
// beginner words and then with anything else when the lesson is too small.
// Without context a difficulty-weighted random pool is drawn. Fewer words
// than the game's target is fine when vocabulary is scarce; an empty
// selection returns ErrNoWords.
func (g *GameService) SelectWords(all []models.VocabularyEntry, gameType models.GameType, roundCtx *RoundContext) ([]models.VocabularyEntry, error) {
	if !gameType.Valid() {
		return nil, fmt.Errorf("unknown game type: %s", gameType)
	}
	target := gameType.TargetWordCount()

	var selected []models.VocabularyEntry
	if roundCtx != nil && len(roundCtx.LessonWords) > 0 {
		selected = g.selectFromLesson(all, roundCtx.LessonWords, target)
	} else {
		selected = g.selectWeighted(all, target)
	}

	if len(selected) == 0 {
		return nil, ErrNoWords
	}

	rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if len(selected) > target {
		selected = selected[:target]
	}
	return selected, nil
}

// selectFromLesson starts from the current lesson words and pads up to the
// target, first with same-category beginner words and then with any word
// not yet picked. Padding never duplicates an id.
func (g *GameService) selectFromLesson(all, lessonWords []models.VocabularyEntry, target int) []models.VocabularyEntry {
	selected := make([]models.VocabularyEntry, len(lessonWords))
	copy(selected, lessonWords)

	seen := make(map[int]bool, len(selected))
	for _, entry := range selected {
		seen[entry.ID] = true
	}
	category := lessonWords[0].Category

	if len(selected) < target {
		for _, entry := range all {
			if len(selected) >= target {
				break
			}
			if seen[entry.ID] || entry.Category != category || entry.Difficulty != models.DifficultyBeginner {
				continue
			}
			selected = append(selected, entry)
			seen[entry.ID] = true
		}
	}

	if len(selected) < target {
		pool := make([]models.VocabularyEntry, 0, len(all))
		for _, entry := range all {
			if !seen[entry.ID] {
				pool = append(pool, entry)
			}
		}
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		for _, entry := range pool {
			if len(selected) >= target {
				break
			}
			selected = append(selected, entry)
		}
	}

	return selected
}

// selectWeighted draws a difficulty-weighted pool: twice the target in
// beginner words plus up to the target in intermediate words
func (g *GameService) selectWeighted(all []models.VocabularyEntry, target int) []models.VocabularyEntry {
	var beginner, intermediate []models.VocabularyEntry
	for _, entry := range all {
		switch entry.Difficulty {
		case models.DifficultyBeginner:
			beginner = append(beginner, entry)
		case models.DifficultyIntermediate:
			intermediate = append(intermediate, entry)
		}
	}

	if len(beginner) > 2*target {
		beginner = beginner[:2*target]
	}
	if len(intermediate) > target {
		intermediate = intermediate[:target]
	}

	pool := append(beginner, intermediate...)
	if len(pool) == 0 {
		// Catalog holds only advanced words; better any round than none.
		pool = append(pool, all...)
		if len(pool) > 2*target {
			pool = pool[:2*target]
		}
	}
	return pool
}

// RecordScore appends a finished game round. A zero PlayedAt is stamped
// with the current time.
func (g *GameService) RecordScore(ctx context.Context, score models.GameScore) error {
	if !score.GameType.Valid() {
		return fmt.Errorf("unknown game type: %s", score.GameType)
	}
	if score.LanguagePair == "" {
		return fmt.Errorf("language pair is required")
	}
	if score.PlayedAt.IsZero() {
		score.PlayedAt = g.clock.Now()
	}

	if err := g.scores.Append(ctx, score); err != nil {
		g.logger.Error("failed to record game score", zap.Error(err))
		return err
	}
	return nil
}

// ScoresForPair returns the recorded rounds of one language pair, newest first
func (g *GameService) ScoresForPair(ctx context.Context, pairID string) ([]models.GameScore, error) {
	return g.scores.ListByPair(ctx, pairID)
}
