package models

// DailyProgress holds the learning counters for one calendar day
type DailyProgress struct {
	Date             string `json:"date"`
	WordsLearned     int    `json:"wordsLearned"`
	LessonsCompleted int    `json:"lessonsCompleted"`
	TimeSpent        int    `json:"timeSpent"`
}

// ProgressState is the persisted learning progress of a user
type ProgressState struct {
	CurrentStreak         int             `json:"currentStreak"`
	LongestStreak         int             `json:"longestStreak"`
	TotalWordsLearned     int             `json:"totalWordsLearned"`
	TotalLessonsCompleted int             `json:"totalLessonsCompleted"`
	CompletedLessons      []string        `json:"completedLessons"`
	CompletedSections     []string        `json:"completedSections"`
	LastLoginDate         string          `json:"lastLoginDate"`
	DailyGoal             int             `json:"dailyGoal"`
	WordsLearnedToday     int             `json:"wordsLearnedToday"`
	WeeklyProgress        []DailyProgress `json:"weeklyProgress"`
}

// HasCompletedSection reports whether the section id has been completed
func (p *ProgressState) HasCompletedSection(id string) bool {
	for _, s := range p.CompletedSections {
		if s == id {
			return true
		}
	}
	return false
}

// HasCompletedLesson reports whether the lesson id has been completed
func (p *ProgressState) HasCompletedLesson(id string) bool {
	for _, l := range p.CompletedLessons {
		if l == id {
			return true
		}
	}
	return false
}

// CompletedSectionSet returns the completed section ids as a membership set
func (p *ProgressState) CompletedSectionSet() map[string]bool {
	set := make(map[string]bool, len(p.CompletedSections))
	for _, s := range p.CompletedSections {
		set[s] = true
	}
	return set
}

// LessonStats is the denormalized counter view used by dashboards.
// It is always derived from ProgressState, never stored.
type LessonStats struct {
	SectionsCompleted int `json:"sectionsCompleted"`
	LessonsCompleted  int `json:"lessonsCompleted"`
	TotalWordsLearned int `json:"totalWordsLearned"`
}
