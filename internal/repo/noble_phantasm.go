package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type NoblePhantasm struct {
	db  *bun.DB
	sel selector.S[model.NoblePhantasm]
}

func NewNoblePhantasm(db *bun.DB) *NoblePhantasm {
	return &NoblePhantasm{
		db:  db,
		sel: selector.New[model.NoblePhantasm](db),
	}
}

func (r *NoblePhantasm) GetNoblePhantasms(ctx context.Context) ([]*model.NoblePhantasm, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("noble_phantasm_id ASC")
	})
}

func (r *NoblePhantasm) GetNoblePhantasmByName(ctx context.Context, name string) (*model.NoblePhantasm, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name)
	})
}
