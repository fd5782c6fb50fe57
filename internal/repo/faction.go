package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Faction struct {
	db  *bun.DB
	sel selector.S[model.Faction]
}

func NewFaction(db *bun.DB) *Faction {
	return &Faction{
		db:  db,
		sel: selector.New[model.Faction](db),
	}
}

func (r *Faction) GetFactions(ctx context.Context) ([]*model.Faction, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("faction_id ASC")
	})
}

func (r *Faction) GetFactionByName(ctx context.Context, name string) (*model.Faction, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("\"name\" = ?", name)
	})
}
