package models

// Section is a fixed-size practice batch within a lesson
type Section struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Words      []VocabularyEntry `json:"words"`
	Completed  bool              `json:"completed"`
	Category   string            `json:"category"`
	Difficulty Difficulty        `json:"difficulty"`
	IsLocked   bool              `json:"isLocked"`
}

// Lesson groups up to three sections sharing one category and difficulty
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Sections    []Section  `json:"sections"`
	TotalWords  int        `json:"totalWords"`
	Completed   bool       `json:"completed"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	IsLocked    bool       `json:"isLocked"`
}

// LessonPlan is the full derived lesson structure for one catalog
type LessonPlan struct {
	Lessons    []Lesson `json:"lessons"`
	Categories []string `json:"categories"`
}
