package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type GoldenAlliance struct {
	db  *bun.DB
	sel selector.S[model.GoldenAlliance]
}

func NewGoldenAlliance(db *bun.DB) *GoldenAlliance {
	return &GoldenAlliance{
		db:  db,
		sel: selector.New[model.GoldenAlliance](db),
	}
}

func (r *GoldenAlliance) GetGoldenAlliances(ctx context.Context) ([]*model.GoldenAlliance, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("golden_alliance_id ASC")
	})
}
