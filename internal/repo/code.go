package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Code struct {
	db  *bun.DB
	sel selector.S[model.Code]
}

func NewCode(db *bun.DB) *Code {
	return &Code{
		db:  db,
		sel: selector.New[model.Code](db),
	}
}

func (r *Code) GetCodes(ctx context.Context) ([]*model.Code, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("code_id ASC")
	})
}
