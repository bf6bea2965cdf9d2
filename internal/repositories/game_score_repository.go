package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vocaplay/engine/internal/models"
)

// gameScoreRepository handles the append-only game_scores table
type gameScoreRepository struct {
	db *sql.DB
}

// NewGameScoreRepository creates a new game score repository
func NewGameScoreRepository(db *sql.DB) *gameScoreRepository {
	return &gameScoreRepository{
		db: db,
	}
}

// Append inserts a finished game round
func (r *gameScoreRepository) Append(ctx context.Context, score models.GameScore) error {
	query := `
		INSERT INTO game_scores (game_type, score, accuracy, time_spent, played_at, language_pair)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		string(score.GameType),
		score.Score,
		score.Accuracy,
		score.TimeSpent,
		score.PlayedAt,
		score.LanguagePair,
	)
	if err != nil {
		return fmt.Errorf("failed to append game score: %w", err)
	}
	return nil
}

// ListByPair retrieves the scores recorded for one language pair, newest
// first. Matching is by exact pair id.
func (r *gameScoreRepository) ListByPair(ctx context.Context, pairID string) ([]models.GameScore, error) {
	query := `
		SELECT id, game_type, score, accuracy, time_spent, played_at, language_pair
		FROM game_scores
		WHERE language_pair = ?
		ORDER BY played_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, pairID)
	if err != nil {
		return nil, fmt.Errorf("failed to query game scores: %w", err)
	}
	defer rows.Close()

	var scores []models.GameScore
	for rows.Next() {
		var score models.GameScore
		var gameType string
		err := rows.Scan(
			&score.ID,
			&gameType,
			&score.Score,
			&score.Accuracy,
			&score.TimeSpent,
			&score.PlayedAt,
			&score.LanguagePair,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game score: %w", err)
		}
		score.GameType = models.GameType(gameType)
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return scores, nil
}
