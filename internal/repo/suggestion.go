package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/repo/selector"
)

type Suggestion struct {
	db  *bun.DB
	sel selector.S[model.Suggestion]
}

func NewSuggestion(db *bun.DB) *Suggestion {
	return &Suggestion{
		db:  db,
		sel: selector.New[model.Suggestion](db),
	}
}

func (r *Suggestion) CreateSuggestion(ctx context.Context, suggestion *model.Suggestion) error {
	_, err := r.db.NewInsert().
		Model(suggestion).
		Exec(ctx)
	return err
}

func (r *Suggestion) GetSuggestionByTaskID(ctx context.Context, taskID string) (*model.Suggestion, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("task_id = ?", taskID)
	})
}

func (r *Suggestion) GetSuggestionsByStatus(ctx context.Context, status string) ([]*model.Suggestion, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", status).Order("suggestion_id ASC")
	})
}

func (r *Suggestion) UpdateSuggestionStatus(ctx context.Context, taskID, status string, rejectReason string) error {
	q := r.db.NewUpdate().
		Model((*model.Suggestion)(nil)).
		Set("status = ?", status).
		Where("task_id = ?", taskID)
	if rejectReason != "" {
		q = q.Set("reject_reason = ?", rejectReason)
	}
	_, err := q.Exec(ctx)
	return err
}
