package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Gear struct {
	db  *bun.DB
	sel selector.S[model.Gear]
}

func NewGear(db *bun.DB) *Gear {
	return &Gear{
		db:  db,
		sel: selector.New[model.Gear](db),
	}
}

func (r *Gear) GetGears(ctx context.Context) ([]*model.Gear, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("gear_id ASC")
	})
}

func (r *Gear) GetGearsBySet(ctx context.Context, set string) ([]*model.Gear, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("\"set\" = ?", set).Order("gear_id ASC")
	})
}
