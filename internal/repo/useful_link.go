package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type UsefulLink struct {
	db  *bun.DB
	sel selector.S[model.UsefulLink]
}

func NewUsefulLink(db *bun.DB) *UsefulLink {
	return &UsefulLink{
		db:  db,
		sel: selector.New[model.UsefulLink](db),
	}
}

func (r *UsefulLink) GetUsefulLinks(ctx context.Context) ([]*model.UsefulLink, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("link_id ASC")
	})
}
