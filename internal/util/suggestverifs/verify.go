// Package suggestverifs runs inbound suggestions through a verifier pipeline
// before they are persisted for moderation.
package suggestverifs

import (
	"context"

	"github.com/dragon-traveler/wiki-backend/internal/model/types"
)

type Verifier interface {
	Name() string
	Verify(ctx context.Context, task *types.SuggestionTask) *Rejection
}

// Rejection carries the reason shown to the submitter.
type Rejection struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type SuggestionVerifiers []Verifier

func NewSuggestionVerifiers(payloadVerifier *PayloadVerifier, rejectRuleVerifier *RejectRuleVerifier) *SuggestionVerifiers {
	return &SuggestionVerifiers{
		payloadVerifier,
		rejectRuleVerifier,
	}
}

// Verify runs the task through every verifier in order and stops at the first
// rejection. A nil result means the suggestion may be persisted as pending.
func (verifiers SuggestionVerifiers) Verify(ctx context.Context, task *types.SuggestionTask) *Rejection {
	for _, pipe := range verifiers {
		if rejection := pipe.Verify(ctx, task); rejection != nil {
			rejection.Name = pipe.Name()
			return rejection
		}
	}
	return nil
}
