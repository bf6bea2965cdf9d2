// Package planner deterministically partitions a pair catalog into lessons
// and sections. Planning is a pure function of the vocabulary order and the
// completed-section id set, so it is safe to recompute on every read.
package planner

import (
	"fmt"
	"sort"

	"github.com/vocaplay/engine/internal/models"
)

const (
	// WordsPerSection is the maximum word batch size of one section
	WordsPerSection = 10
	// SectionsPerLesson is the maximum number of sections in one lesson
	SectionsPerLesson = 3
)

var difficultyOrder = []models.Difficulty{
	models.DifficultyBeginner,
	models.DifficultyIntermediate,
	models.DifficultyAdvanced,
}

// IsSectionComplete reports whether a section id is in the completed set
func IsSectionComplete(id string, completed map[string]bool) bool {
	return completed[id]
}

// IsLessonComplete reports whether every section of a lesson is completed
func IsLessonComplete(sections []models.Section, completed map[string]bool) bool {
	for _, s := range sections {
		if !completed[s.ID] {
			return false
		}
	}
	return len(sections) > 0
}

// Plan partitions the vocabulary into lessons. Words are grouped by
// (category, difficulty); each such stream is sliced into sections of up to
// WordsPerSection words and consecutive sections are grouped into lessons of
// up to SectionsPerLesson. Section and lesson indices are local to their
// stream, which keeps ids stable when other categories appear or disappear.
func Plan(vocabulary []models.VocabularyEntry, completed map[string]bool) *models.LessonPlan {
	// Group by category, preserving first-seen order for the category list
	var categories []string
	byCategory := make(map[string][]models.VocabularyEntry)
	for _, entry := range vocabulary {
		if _, seen := byCategory[entry.Category]; !seen {
			categories = append(categories, entry.Category)
		}
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}
	if categories == nil {
		categories = []string{}
	}

	var lessons []models.Lesson
	for _, category := range categories {
		for _, difficulty := range difficultyOrder {
			var words []models.VocabularyEntry
			for _, entry := range byCategory[category] {
				if entry.Difficulty == difficulty {
					words = append(words, entry)
				}
			}
			if len(words) == 0 {
				continue
			}
			lessons = append(lessons, planStream(category, difficulty, words, completed)...)
		}
	}

	// Lessons are emitted difficulty-major per category above; the final
	// order is difficulty ascending, then category, ties kept stable.
	sortLessons(lessons)

	if lessons == nil {
		lessons = []models.Lesson{}
	}
	return &models.LessonPlan{
		Lessons:    lessons,
		Categories: categories,
	}
}

// planStream builds the lessons of one (category, difficulty) word stream
func planStream(category string, difficulty models.Difficulty, words []models.VocabularyEntry, completed map[string]bool) []models.Lesson {
	var sections []models.Section
	for start := 0; start < len(words); start += WordsPerSection {
		end := start + WordsPerSection
		if end > len(words) {
			end = len(words)
		}
		index := start / WordsPerSection
		id := fmt.Sprintf("%s-%s-section-%d", category, difficulty, index)
		sections = append(sections, models.Section{
			ID:         id,
			Title:      fmt.Sprintf("%s %s, part %d", category, difficulty, index+1),
			Words:      words[start:end],
			Completed:  IsSectionComplete(id, completed),
			Category:   category,
			Difficulty: difficulty,
		})
	}

	var lessons []models.Lesson
	for start := 0; start < len(sections); start += SectionsPerLesson {
		end := start + SectionsPerLesson
		if end > len(sections) {
			end = len(sections)
		}
		index := start / SectionsPerLesson
		lessonSections := sections[start:end]

		totalWords := 0
		for _, s := range lessonSections {
			totalWords += len(s.Words)
		}

		lessons = append(lessons, models.Lesson{
			ID:          fmt.Sprintf("%s-%s-lesson-%d", category, difficulty, index),
			Title:       fmt.Sprintf("%s %s %d", category, difficulty, index+1),
			Description: fmt.Sprintf("Learn %d %s words about %s", totalWords, difficulty, category),
			Sections:    lessonSections,
			TotalWords:  totalWords,
			Completed:   IsLessonComplete(lessonSections, completed),
			Category:    category,
			Difficulty:  difficulty,
		})
	}

	return lessons
}

// sortLessons orders lessons by difficulty rank then category; the stable
// sort keeps the within-stream lesson index order on ties
func sortLessons(lessons []models.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].Difficulty.Rank() != lessons[j].Difficulty.Rank() {
			return lessons[i].Difficulty.Rank() < lessons[j].Difficulty.Rank()
		}
		return lessons[i].Category < lessons[j].Category
	})
}

// FirstUncompleted returns the index of the first lesson that is not yet
// completed, or -1 when all lessons are done. Advisory only; navigation is
// never locked to it.
func FirstUncompleted(lessons []models.Lesson) int {
	for i, lesson := range lessons {
		if !lesson.Completed {
			return i
		}
	}
	return -1
}
