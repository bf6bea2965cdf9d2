// Package catalog builds the ordered vocabulary list for a language pair
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/vocaplay/engine/internal/models"
	"github.com/vocaplay/engine/internal/wordtables"
)

// ErrNoVocabulary is returned when no fallback tier yields any vocabulary
var ErrNoVocabulary = errors.New("no vocabulary available for language pair")

// maxCatalogSize bounds the lesson count for very large table intersections
const maxCatalogSize = 1000

// Builder derives pair catalogs from a word-table registry
type Builder struct {
	registry *wordtables.Registry
	logger   *zap.Logger
}

// NewBuilder creates a catalog builder
func NewBuilder(registry *wordtables.Registry, logger *zap.Logger) *Builder {
	return &Builder{
		registry: registry,
		logger:   logger,
	}
}

// Resolution is the outcome of resolving vocabulary for a requested pair.
// Native/Target are the languages actually used; Reason is empty when the
// requested pair resolved directly and otherwise names the fallback tier.
type Resolution struct {
	Native  string
	Target  string
	Entries []models.VocabularyEntry
	Reason  string
}

// Build returns the ordered, deduplicated vocabulary for a language pair.
// It never fails: a missing table or an empty id intersection yields an
// empty list. Order is (difficulty rank, category, word) ascending and is
// the contract lesson planning depends on.
func (b *Builder) Build(native, target string) []models.VocabularyEntry {
	nativeTable, ok := b.registry.Lookup(native)
	if !ok {
		return []models.VocabularyEntry{}
	}
	targetTable, ok := b.registry.Lookup(target)
	if !ok {
		return []models.VocabularyEntry{}
	}

	// A pair can only teach words present on both sides.
	ids := make([]int, 0, len(targetTable))
	for id := range targetTable {
		if _, ok := nativeTable[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	if len(ids) > maxCatalogSize {
		ids = ids[:maxCatalogSize]
	}

	normalized := 0
	entries := make([]models.VocabularyEntry, 0, len(ids))
	for _, id := range ids {
		targetEntry := targetTable[id]
		nativeEntry := nativeTable[id]

		difficulty, defaulted := models.NormalizeDifficulty(targetEntry.Difficulty)
		category := targetEntry.Category
		if category == "" {
			category = models.DefaultCategory
			defaulted = true
		}
		if defaulted {
			normalized++
		}

		entries = append(entries, models.VocabularyEntry{
			ID:                 id,
			Word:               targetEntry.Word,
			Translation:        nativeEntry.Word,
			Pronunciation:      targetEntry.Pronunciation,
			Example:            targetEntry.Example,
			ExampleTranslation: nativeEntry.Example,
			Difficulty:         difficulty,
			Category:           category,
		})
	}

	if normalized > 0 {
		b.logger.Warn("catalog build normalized upstream entries",
			zap.String("native", native),
			zap.String("target", target),
			zap.Int("normalized", normalized),
		)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Difficulty.Rank() != entries[j].Difficulty.Rank() {
			return entries[i].Difficulty.Rank() < entries[j].Difficulty.Rank()
		}
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Word < entries[j].Word
	})

	return entries
}

// Resolve returns vocabulary for the requested pair, falling back to
// (native, "en") and then ("en", "es") when a tier yields nothing. The
// Reason string tells the caller which tier was used so the UI can surface
// it. ErrNoVocabulary is returned only when every tier is empty.
func (b *Builder) Resolve(native, target string) (*Resolution, error) {
	if entries := b.Build(native, target); len(entries) > 0 {
		return &Resolution{Native: native, Target: target, Entries: entries}, nil
	}

	if target != "en" {
		if entries := b.Build(native, "en"); len(entries) > 0 {
			reason := fmt.Sprintf("no vocabulary available for %s-%s, using English vocabulary instead", native, target)
			b.logger.Warn("catalog fallback", zap.String("reason", reason))
			return &Resolution{Native: native, Target: "en", Entries: entries, Reason: reason}, nil
		}
	}

	if native != "en" || target != "es" {
		if entries := b.Build("en", "es"); len(entries) > 0 {
			reason := fmt.Sprintf("no vocabulary available for %s-%s, falling back to the default en-es vocabulary", native, target)
			b.logger.Warn("catalog fallback", zap.String("reason", reason))
			return &Resolution{Native: "en", Target: "es", Entries: entries, Reason: reason}, nil
		}
	}

	return nil, ErrNoVocabulary
}
