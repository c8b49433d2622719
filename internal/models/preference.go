package models

// Preferences is the per-user scheduling preferences singleton. It is
// read on dashboard entry and replaced wholesale on save.
type Preferences struct {
	WakeTime                 string `json:"wake_time" validate:"required"`
	Bedtime                  string `json:"bedtime" validate:"required"`
	DefaultStudyBlockMinutes int    `json:"default_study_block_minutes" validate:"required,min=1"`
}
