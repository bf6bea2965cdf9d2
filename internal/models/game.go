package models

import "time"

// GameType identifies one of the practice mini-games
type GameType string

const (
	GameMatching  GameType = "matching"
	GameMemory    GameType = "memory"
	GameTyping    GameType = "typing"
	GameListening GameType = "listening"
	GamePuzzle    GameType = "puzzle"
	GameQuiz      GameType = "quiz"
)

// Valid reports whether the game type is known
func (g GameType) Valid() bool {
	switch g {
	case GameMatching, GameMemory, GameTyping, GameListening, GamePuzzle, GameQuiz:
		return true
	}
	return false
}

// TargetWordCount returns the number of words a round of the game is built
// from. Memory uses word+translation pairs, so 4 words become 8 cards.
func (g GameType) TargetWordCount() int {
	switch g {
	case GameMemory, GameListening:
		return 4
	case GamePuzzle:
		return 3
	default:
		return 5
	}
}

// GameScore is one finished game round, appended by the presentation layer
type GameScore struct {
	ID           int64     `json:"id,omitempty"`
	GameType     GameType  `json:"gameType"`
	Score        int       `json:"score"`
	Accuracy     float64   `json:"accuracy"`
	TimeSpent    int       `json:"timeSpent"`
	PlayedAt     time.Time `json:"date"`
	LanguagePair string    `json:"languagePair"`
}
