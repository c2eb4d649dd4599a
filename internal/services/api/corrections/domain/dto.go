// Package domain holds DTOs for corrections http and service contracts
package domain

// SyncInput is one batch of user-confirmed corrections
type SyncInput struct {
	Corrections []Correction `json:"corrections" validate:"required,min=1,max=500,dive"`
}

// SyncAck acknowledges a processed batch with what was learned from it
type SyncAck struct {
	OK         bool `json:"ok"          example:"true"`
	Synced     int  `json:"synced"      example:"3"`
	Skipped    int  `json:"skipped"     example:"0"`
	Vocabulary int  `json:"vocabulary"  example:"1"`
	Categories int  `json:"categories"  example:"1"`
	TimeHabits int  `json:"time_habits" example:"1"`
}
