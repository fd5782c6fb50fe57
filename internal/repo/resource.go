package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Resource struct {
	db  *bun.DB
	sel selector.S[model.Resource]
}

func NewResource(db *bun.DB) *Resource {
	return &Resource{
		db:  db,
		sel: selector.New[model.Resource](db),
	}
}

func (r *Resource) GetResources(ctx context.Context) ([]*model.Resource, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("resource_id ASC")
	})
}
