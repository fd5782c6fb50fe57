package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Subclass struct {
	db  *bun.DB
	sel selector.S[model.Subclass]
}

func NewSubclass(db *bun.DB) *Subclass {
	return &Subclass{
		db:  db,
		sel: selector.New[model.Subclass](db),
	}
}

func (r *Subclass) GetSubclasses(ctx context.Context) ([]*model.Subclass, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("subclass_id ASC")
	})
}
