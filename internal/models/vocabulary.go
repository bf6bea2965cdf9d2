package models

// Difficulty represents the difficulty level of a vocabulary entry
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether the difficulty is one of the three known levels
func (d Difficulty) Valid() bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

// Rank returns the sort rank of the difficulty (beginner < intermediate < advanced)
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 0
	}
}

// NormalizeDifficulty maps an upstream difficulty value to a valid level.
// Unknown values fall back to beginner; the second return value reports
// whether a fallback was applied.
func NormalizeDifficulty(raw string) (Difficulty, bool) {
	d := Difficulty(raw)
	if d.Valid() {
		return d, false
	}
	return DifficultyBeginner, true
}

// DefaultCategory is used when an upstream entry carries no category
const DefaultCategory = "general"

// VocabularyEntry represents one word of a language-pair catalog
type VocabularyEntry struct {
	ID                 int        `json:"id"`
	Word               string     `json:"word"`
	Translation        string     `json:"translation"`
	Pronunciation      string     `json:"pronunciation,omitempty"`
	Example            string     `json:"example,omitempty"`
	ExampleTranslation string     `json:"exampleTranslation,omitempty"`
	Difficulty         Difficulty `json:"difficulty"`
	Category           string     `json:"category"`
	Learned            bool       `json:"learned"`
	Attempts           int        `json:"attempts"`
	CorrectAttempts    int        `json:"correctAttempts"`
}
