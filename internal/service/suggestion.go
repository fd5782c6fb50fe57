package service

import (
	"context"
	"time"

	"github.com/dchest/uniuri"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	"github.com/dragon-traveler/wiki-backend/internal/constant"
	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/cache"
	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
)

type Suggestion struct {
	NatsJS         nats.JetStreamContext
	SuggestionRepo *repo.Suggestion
}

func NewSuggestion(natsJS nats.JetStreamContext, suggestionRepo *repo.Suggestion) *Suggestion {
	return &Suggestion{
		NatsJS:         natsJS,
		SuggestionRepo: suggestionRepo,
	}
}

// PreprocessAndQueueSuggestion assigns the task its ID and recall key, then
// publishes it to the suggestion stream for the worker pool. The idempotency
// key deduplicates client retries within the stream's duplicate window.
func (s *Suggestion) PreprocessAndQueueSuggestion(ctx *fiber.Ctx, req *types.SuggestionSubmitRequest) (*types.SuggestionSubmitResponse, error) {
	idempotencyKey := ctx.Get(constant.IdempotencyKeyHeader)

	task := &types.SuggestionTask{
		TaskID:    ulid.Make().String(),
		CreatedAt: time.Now(),
		Category:  req.Category,
		Payload:   req.Payload,
		RecallKey: uniuri.NewLen(32),
		IP:        ctx.IP(),
	}

	taskJSON, err := json.Marshal(task)
	if err != nil {
		return nil, err
	}

	pub, err := s.NatsJS.PublishAsync(constant.SuggestionSubject, taskJSON, nats.MsgId(idempotencyKey))
	if err != nil {
		return nil, err
	}

	select {
	case err := <-pub.Err():
		return nil, err
	case <-pub.Ok():
		return &types.SuggestionSubmitResponse{
			TaskID:    task.TaskID,
			RecallKey: task.RecallKey,
		}, nil
	case <-ctx.Context().Done():
		return nil, ctx.Context().Err()
	case <-time.After(time.Millisecond * 500):
		return nil, errors.New("timeout waiting for NATS response")
	}
}

// Cache: suggestion#taskId, 1hr
func (s *Suggestion) GetSuggestionByTaskID(ctx context.Context, taskID string) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	err := cache.SuggestionByTaskID.Get(taskID, &suggestion)
	if err == nil {
		return &suggestion, nil
	}

	got, err := s.SuggestionRepo.GetSuggestionByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	go cache.SuggestionByTaskID.Set(taskID, *got, time.Hour)

	return got, nil
}
