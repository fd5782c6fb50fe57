package suggestverifs

import (
	"context"

	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/util/suggestutil"
)

// PayloadVerifier checks the category-specific required fields of the payload.
type PayloadVerifier struct{}

// ensure PayloadVerifier conforms to Verifier
var _ Verifier = (*PayloadVerifier)(nil)

func NewPayloadVerifier() *PayloadVerifier {
	return &PayloadVerifier{}
}

func (v *PayloadVerifier) Name() string {
	return "payload"
}

func (v *PayloadVerifier) Verify(ctx context.Context, task *types.SuggestionTask) *Rejection {
	if err := suggestutil.ValidatePayload(task.Category, task.Payload); err != nil {
		return &Rejection{
			Message: err.Error(),
		}
	}
	return nil
}
