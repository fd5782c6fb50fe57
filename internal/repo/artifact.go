package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Artifact struct {
	db  *bun.DB
	sel selector.S[model.Artifact]
}

func NewArtifact(db *bun.DB) *Artifact {
	return &Artifact{
		db:  db,
		sel: selector.New[model.Artifact](db),
	}
}

func (r *Artifact) GetArtifacts(ctx context.Context) ([]*model.Artifact, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("artifact_id ASC")
	})
}
