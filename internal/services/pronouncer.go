package services

// Pronouncer speaks a word in a given language. The engine only carries the
// capability; actual speech synthesis belongs to the presentation layer.
type Pronouncer interface {
	// Pronounce speaks a word.
	//
	// "word" is the text to pronounce.
	// "language" is the language code the word belongs to.
	//
	// Returns an error if any.
	Pronounce(word, language string) error
}

// NoopPronouncer discards pronunciation requests
type NoopPronouncer struct{}

// Pronounce does nothing
func (NoopPronouncer) Pronounce(word, language string) error {
	return nil
}
