package model

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Suggestion struct {
	bun.BaseModel `bun:"suggestions,alias:sg"`

	SuggestionID int             `bun:",pk,autoincrement" json:"-"`
	TaskID       string          `json:"taskId"`
	Category     string          `json:"category"`
	Payload      json.RawMessage `json:"payload"`
	Status       string          `json:"status"`
	RejectReason null.String     `json:"rejectReason,omitempty" swaggertype:"string"`

	// RecallKey lets an anonymous submitter recall their own pending
	// suggestion; it is never exposed in listings.
	RecallKey string `json:"-"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
