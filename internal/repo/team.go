package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Team struct {
	db  *bun.DB
	sel selector.S[model.Team]
}

func NewTeam(db *bun.DB) *Team {
	return &Team{
		db:  db,
		sel: selector.New[model.Team](db),
	}
}

func (r *Team) GetTeams(ctx context.Context) ([]*model.Team, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("team_id ASC")
	})
}

func (r *Team) GetTeamsByContentType(ctx context.Context, contentType string) ([]*model.Team, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("content_type = ?", contentType).Order("team_id ASC")
	})
}

func (r *Team) GetTeamByName(ctx context.Context, name string) (*model.Team, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name)
	})
}
