package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type SuggestionRejectRule struct {
	db  *bun.DB
	sel selector.S[model.SuggestionRejectRule]
}

func NewSuggestionRejectRule(db *bun.DB) *SuggestionRejectRule {
	return &SuggestionRejectRule{
		db:  db,
		sel: selector.New[model.SuggestionRejectRule](db),
	}
}

func (r *SuggestionRejectRule) GetActiveRejectRules(ctx context.Context) ([]*model.SuggestionRejectRule, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("active = TRUE").Order("rule_id ASC")
	})
}
