package models

// PairProgress holds per-language-pair summary counters
type PairProgress struct {
	WordsLearned     int        `json:"wordsLearned"`
	LessonsCompleted int        `json:"lessonsCompleted"`
	CurrentLevel     Difficulty `json:"currentLevel"`
}

// LanguagePair is a (native, target) language combination with isolated progress
type LanguagePair struct {
	ID             string       `json:"id"`
	NativeLanguage string       `json:"nativeLanguage"`
	TargetLanguage string       `json:"targetLanguage"`
	AddedDate      string       `json:"addedDate"`
	Progress       PairProgress `json:"progress"`
}

// Preferences holds user-facing settings carried in the user record
type Preferences struct {
	SoundEnabled bool   `json:"soundEnabled"`
	VoiceURI     string `json:"voiceURI,omitempty"`
}

// UserRecord is the persisted user document.
//
// NativeLanguage/TargetLanguage are the legacy flat fields kept for records
// written before language pairs existed; OnAppStart migrates them into
// LanguagePairs once and they are not written for new users.
type UserRecord struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	NativeLanguage      string         `json:"nativeLanguage,omitempty"`
	TargetLanguage      string         `json:"targetLanguage,omitempty"`
	Level               Difficulty     `json:"level,omitempty"`
	Progress            ProgressState  `json:"progress"`
	LanguagePairs       []LanguagePair `json:"languagePairs"`
	CurrentLanguagePair string         `json:"currentLanguagePair"`
	Preferences         Preferences    `json:"preferences"`
}
