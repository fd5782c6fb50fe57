package types

import (
	"time"

	"github.com/goccy/go-json"
)

// SuggestionSubmitRequest is an anonymous wiki-content suggestion. The payload
// schema depends on the category and is validated by the suggestion worker.
type SuggestionSubmitRequest struct {
	Category string          `json:"category" validate:"required,suggestioncategory"`
	Payload  json.RawMessage `json:"payload" validate:"required" swaggertype:"object"`
}

// SuggestionSubmitResponse acknowledges intake. The recall key is shown to the
// submitter exactly once and later proves ownership of the task.
type SuggestionSubmitResponse struct {
	TaskID    string `json:"taskId"`
	RecallKey string `json:"recallKey"`
}

// SuggestionTask is the message the intake endpoint publishes and the
// suggestion worker consumes.
type SuggestionTask struct {
	TaskID    string          `json:"taskId"`
	CreatedAt time.Time       `json:"createdAt"`
	Category  string          `json:"category"`
	Payload   json.RawMessage `json:"payload"`
	RecallKey string          `json:"recallKey"`
	IP        string          `json:"ip"`
}
