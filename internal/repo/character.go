package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Character struct {
	db  *bun.DB
	sel selector.S[model.Character]
}

func NewCharacter(db *bun.DB) *Character {
	return &Character{
		db:  db,
		sel: selector.New[model.Character](db),
	}
}

func (r *Character) GetCharacters(ctx context.Context) ([]*model.Character, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("character_id ASC")
	})
}

func (r *Character) GetCharacterByName(ctx context.Context, name string) (*model.Character, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("\"name\" = ?", name)
	})
}

func (r *Character) SearchCharacterByName(ctx context.Context, name string) (*model.Character, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("\"name\"::TEXT ILIKE ?", "%"+name+"%")
	})
}
