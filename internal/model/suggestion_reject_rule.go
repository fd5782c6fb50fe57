package model

import (
	"github.com/uptrace/bun"
)

// SuggestionRejectRule is an admin-maintained expression evaluated against
// every inbound suggestion; a rule that evaluates to true rejects the
// suggestion with the rule's reason.
type SuggestionRejectRule struct {
	bun.BaseModel `bun:"suggestion_reject_rules,alias:srr"`

	RuleID int    `bun:",pk,autoincrement" json:"id"`
	Expr   string `json:"expr"`
	Reason string `json:"reason"`
	Active bool   `json:"active"`
}
