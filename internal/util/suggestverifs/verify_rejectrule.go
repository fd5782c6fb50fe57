package suggestverifs

import (
	"context"
	"time"

	"github.com/antonmedv/expr"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

// RejectRuleVerifier evaluates admin-maintained expressions against the task;
// the first matching rule rejects the suggestion with its reason. Rules that
// fail to evaluate are skipped, never treated as matches.
type RejectRuleVerifier struct {
	RejectRuleRepo *repo.SuggestionRejectRule
}

// ensure RejectRuleVerifier conforms to Verifier
var _ Verifier = (*RejectRuleVerifier)(nil)

func NewRejectRuleVerifier(rejectRuleRepo *repo.SuggestionRejectRule) *RejectRuleVerifier {
	return &RejectRuleVerifier{
		RejectRuleRepo: rejectRuleRepo,
	}
}

func (d *RejectRuleVerifier) Name() string {
	return "reject_rule"
}

// SuggestionContext is the expression environment. Rules reference the
// category, the raw payload, or single payload fields, e.g.
//
//	Category == "codes" && Field("code") == ""
type SuggestionContext struct {
	Category string
	Payload  string
	IP       string
}

func (c SuggestionContext) Field(path string) string {
	return gjson.Get(c.Payload, path).String()
}

func (d *RejectRuleVerifier) Verify(ctx context.Context, task *types.SuggestionTask) *Rejection {
	rejectRules, err := d.activeRules(ctx)
	if err != nil {
		log.Error().
			Str("evt.name", "verifier.reject_rule.load_error").
			Err(err).
			Msg("failed to load reject rules; letting the suggestion through")
		return nil
	}

	suggestionContext := SuggestionContext{
		Category: task.Category,
		Payload:  string(task.Payload),
		IP:       task.IP,
	}

	start := time.Now()
	defer func() {
		if l := log.Trace(); l.Enabled() {
			l.Dur("duration", time.Since(start)).
				Msg("reject rule(s) evaluated")
		}
	}()

	for _, rejectRule := range rejectRules {
		result, err := expr.Eval(rejectRule.Expr, suggestionContext)
		if err != nil {
			log.Error().
				Str("evt.name", "verifier.reject_rule.expr_eval_error").
				Int("ruleId", rejectRule.RuleID).
				Err(err).
				Msgf("failed to evaluate reject rule %d", rejectRule.RuleID)
			continue
		}

		if d.resultHandler(result) {
			log.Warn().
				Str("evt.name", "verifier.reject_rule.rejected").
				Str("taskId", task.TaskID).
				Int("ruleId", rejectRule.RuleID).
				Msg("reject rule matched")

			return &Rejection{
				Message: rejectRule.Reason,
			}
		}
	}

	return nil
}

func (d *RejectRuleVerifier) activeRules(ctx context.Context) ([]*model.SuggestionRejectRule, error) {
	var rules []*model.SuggestionRejectRule
	err := cache.SuggestionRejectRules.MutexGetSet(&rules, func() ([]*model.SuggestionRejectRule, error) {
		return d.RejectRuleRepo.GetActiveRejectRules(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (d *RejectRuleVerifier) resultHandler(result any) bool {
	switch r := result.(type) {
	case bool:
		return r
	default:
		log.Error().Msgf("reject rule expr result type %T is not supported", result)
		return false
	}
}
