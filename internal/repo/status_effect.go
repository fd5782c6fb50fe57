package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type StatusEffect struct {
	db  *bun.DB
	sel selector.S[model.StatusEffect]
}

func NewStatusEffect(db *bun.DB) *StatusEffect {
	return &StatusEffect{
		db:  db,
		sel: selector.New[model.StatusEffect](db),
	}
}

func (r *StatusEffect) GetStatusEffects(ctx context.Context) ([]*model.StatusEffect, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("status_effect_id ASC")
	})
}
