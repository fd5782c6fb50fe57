package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type TierList struct {
	db  *bun.DB
	sel selector.S[model.TierList]
}

func NewTierList(db *bun.DB) *TierList {
	return &TierList{
		db:  db,
		sel: selector.New[model.TierList](db),
	}
}

func (r *TierList) GetTierLists(ctx context.Context) ([]*model.TierList, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("tier_list_id ASC")
	})
}

func (r *TierList) GetTierListsByContentType(ctx context.Context, contentType string) ([]*model.TierList, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("content_type = ?", contentType).Order("tier_list_id ASC")
	})
}

func (r *TierList) GetTierListByName(ctx context.Context, name string) (*model.TierList, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name)
	})
}
