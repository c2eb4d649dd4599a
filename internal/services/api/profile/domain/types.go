// Package domain holds the voice profile types shared by the profile and
// corrections services
package domain

import (
	"encoding/json"
	"time"
)

// DefaultTimeHabitCategory is used when a hasTime correction arrives without
// a category. The literal is part of the stored-profile contract
const DefaultTimeHabitCategory = "General"

// TimePattern is a learned habit about whether tasks in a category carry a
// clock time or just a date
type TimePattern string

const (
	// PatternUsuallyHasTime means the user keeps adding a time of day
	PatternUsuallyHasTime TimePattern = "usually_has_time"

	// PatternUsuallyDateOnly means the user keeps stripping the time of day
	PatternUsuallyDateOnly TimePattern = "usually_date_only"
)

// VocabAlias is a learned substitution: the transcriber hears Spoken, the
// user means Canonical
type VocabAlias struct {
	Spoken    string `json:"spoken"`
	Canonical string `json:"canonical"`
	Count     int    `json:"count"`
	LastUsed  string `json:"last_used"` // ISO day, YYYY-MM-DD
}

// CategoryMapping is a learned category fix: the parser inferred From, the
// user chose To
type CategoryMapping struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Count    int    `json:"count"`
	LastUsed string `json:"last_used"`
}

// TimeHabit is a learned per-category time pattern
type TimeHabit struct {
	Category string      `json:"category"`
	Pattern  TimePattern `json:"pattern"`
	Count    int         `json:"count"`
	LastUsed string      `json:"last_used"`
}

// UserVoiceProfile is the persisted aggregate of everything learned for one
// user. StoreAliases belongs to another subsystem and rides along untouched
type UserVoiceProfile struct {
	UserID            string            `json:"user_id"`
	VocabularyAliases []VocabAlias      `json:"vocabulary_aliases"`
	CategoryMappings  []CategoryMapping `json:"category_mappings"`
	StoreAliases      json.RawMessage   `json:"store_aliases"`
	TimeHabits        []TimeHabit       `json:"time_habits"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Empty returns a fresh profile for a user with no history yet
func Empty(userID string) UserVoiceProfile {
	return UserVoiceProfile{
		UserID:            userID,
		VocabularyAliases: []VocabAlias{},
		CategoryMappings:  []CategoryMapping{},
		StoreAliases:      json.RawMessage("[]"),
		TimeHabits:        []TimeHabit{},
	}
}
