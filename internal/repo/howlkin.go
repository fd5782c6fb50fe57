package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Howlkin struct {
	db  *bun.DB
	sel selector.S[model.Howlkin]
}

func NewHowlkin(db *bun.DB) *Howlkin {
	return &Howlkin{
		db:  db,
		sel: selector.New[model.Howlkin](db),
	}
}

func (r *Howlkin) GetHowlkins(ctx context.Context) ([]*model.Howlkin, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("howlkin_id ASC")
	})
}
