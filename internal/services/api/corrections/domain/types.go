// Package domain holds correction core types independent of transport or
// storage
package domain

// FieldKind tags which task field a correction touched. The literals are a
// wire contract with the client; unknown kinds are accepted and ignored so
// new clients can ship new kinds ahead of the server learning from them
type FieldKind string

const (
	// FieldTitle is a corrected transcription of the task title
	FieldTitle FieldKind = "title"

	// FieldCategory is a corrected category inference
	FieldCategory FieldKind = "category"

	// FieldHasTime is a corrected assumption about whether the task carries
	// a clock time; values ride as the literal strings "true" / "false"
	FieldHasTime FieldKind = "hasTime"
)

// Correction is one user-confirmed edit of a voice-derived task, the
// training signal for the profile. Consumed once per sync; only the audit
// log keeps the raw form
type Correction struct {
	TaskID         string `json:"task_id"         validate:"omitempty,max=100"  example:"t1"`
	FieldName      string `json:"field_name"      validate:"omitempty,max=50"   example:"title"`
	OriginalValue  string `json:"original_value"  validate:"omitempty,max=2000" example:"Krogers run"`
	CorrectedValue string `json:"corrected_value" validate:"omitempty,max=2000" example:"Kroger run"`
	Category       string `json:"category"        validate:"omitempty,max=200"  example:"Errands"`
}

// AuditEntry is the append-only record written for every accepted
// correction. Write-only history; nothing in this service reads it back
type AuditEntry struct {
	UserID         string
	TaskID         string
	FieldName      string
	OriginalValue  string
	CorrectedValue string
}
