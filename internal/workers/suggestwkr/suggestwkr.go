package suggestwkr

import (
	"context"
	"runtime"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"github.com/dragon-traveler/wiki-backend/internal/app/appconfig"
	"github.com/dragon-traveler/wiki-backend/internal/constant"
	"github.com/dragon-traveler/wiki-backend/internal/model"
	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/repo"
	"github.com/dragon-traveler/wiki-backend/internal/service"
	"github.com/dragon-traveler/wiki-backend/internal/util/suggestutil"
	"github.com/dragon-traveler/wiki-backend/internal/util/suggestverifs"
)

type WorkerDeps struct {
	fx.In

	SuggestionRepo      *repo.Suggestion
	SuggestionService   *service.Suggestion
	SuggestionVerifiers *suggestverifs.SuggestionVerifiers
}

type Worker struct {
	// count is the number of spawned consumers
	count int

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	ch := make(chan error)
	// handle & dump errors from workers
	go func() {
		for {
			err := <-ch
			if err != nil {
				log.Error().Err(err).Msg("suggestion worker error")
			}
		}
	}()
	// works like a consumer factory
	suggestionWorkers := &Worker{
		count:      0,
		WorkerDeps: deps,
	}
	workerCount := conf.SuggestionWorkerCount
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	// spawn workers
	for i := 0; i < workerCount; i++ {
		go func() {
			err := suggestionWorkers.Consumer(context.Background(), ch)
			if err != nil {
				ch <- err
			}
		}()
		// update current worker count
		suggestionWorkers.count += 1
	}
}

func (w *Worker) Consumer(ctx context.Context, ch chan error) error {
	msgChan := make(chan *nats.Msg, 16)

	_, err := w.SuggestionService.NatsJS.ChanQueueSubscribe(constant.SuggestionSubjectFilter, constant.SuggestionQueueName, msgChan, nats.AckWait(time.Second*10), nats.MaxAckPending(128))
	if err != nil {
		log.Err(err).Msg("failed to subscribe to " + constant.SuggestionSubjectFilter)
		return err
	}

	for {
		select {
		case msg := <-msgChan:
			func() {
				taskCtx, cancelTask := context.WithDeadline(ctx, time.Now().Add(time.Second*10))
				inprogressInformer := time.AfterFunc(time.Second*5, func() {
					err = msg.InProgress()
					if err != nil {
						log.Error().Err(err).Msg("failed to set msg InProgress")
					}
				})
				defer func() {
					inprogressInformer.Stop()
					cancelTask()
					if err := msg.Ack(); err != nil {
						log.Error().Err(err).Msg("failed to ack")
					}
				}()

				suggestionTask := &types.SuggestionTask{}
				if err := json.Unmarshal(msg.Data, suggestionTask); err != nil {
					ch <- err
					return
				}

				err = w.consumeSuggestion(taskCtx, suggestionTask)
				if err != nil {
					log.Error().
						Err(err).
						Str("taskId", suggestionTask.TaskID).
						Str("suggestionTask", spew.Sdump(suggestionTask)).
						Msg("failed to consume suggestion task")
					ch <- err
					return
				}

				log.Info().Str("taskId", suggestionTask.TaskID).Msg("suggestion task processed successfully")
			}()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) consumeSuggestion(ctx context.Context, task *types.SuggestionTask) error {
	L := log.With().
		Str("taskId", task.TaskID).
		Str("category", task.Category).
		Logger()

	L.Info().Msg("now processing new suggestion task")

	status := constant.SuggestionStatusPending
	rejectReason := ""
	if rejection := w.SuggestionVerifiers.Verify(ctx, task); rejection != nil {
		status = constant.SuggestionStatusRejected
		rejectReason = rejection.Message
		L.Warn().
			Interface("rejection", rejection).
			Msg("suggestion task verification failed, marking task as rejected")
	}

	payload := task.Payload
	if status == constant.SuggestionStatusPending {
		normalized, err := suggestutil.Normalize(task.Category, payload)
		if err != nil {
			return err
		}
		payload = normalized
	}

	createdAt := task.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	suggestion := &model.Suggestion{
		TaskID:       task.TaskID,
		Category:     task.Category,
		Payload:      payload,
		Status:       status,
		RejectReason: null.NewString(rejectReason, rejectReason != ""),
		RecallKey:    task.RecallKey,
		CreatedAt:    createdAt,
	}

	// transient DB hiccups should not drop an already-acked task
	return retry.Do(
		func() error {
			return w.SuggestionRepo.CreateSuggestion(ctx, suggestion)
		},
		retry.Attempts(3),
		retry.Delay(time.Millisecond*100),
		retry.Context(ctx),
	)
}
