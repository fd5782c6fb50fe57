package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Wyrmspell struct {
	db  *bun.DB
	sel selector.S[model.Wyrmspell]
}

func NewWyrmspell(db *bun.DB) *Wyrmspell {
	return &Wyrmspell{
		db:  db,
		sel: selector.New[model.Wyrmspell](db),
	}
}

func (r *Wyrmspell) GetWyrmspells(ctx context.Context) ([]*model.Wyrmspell, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("wyrmspell_id ASC")
	})
}

func (r *Wyrmspell) GetWyrmspellsByType(ctx context.Context, typ string) ([]*model.Wyrmspell, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("type = ?", typ).Order("wyrmspell_id ASC")
	})
}
