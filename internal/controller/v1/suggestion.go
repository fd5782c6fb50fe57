package v1

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dragon-traveler/wiki-backend/internal/constant"
	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/pkg/fiberstore"
	"github.com/dragon-traveler/wiki-backend/internal/pkg/middlewares"
	"github.com/dragon-traveler/wiki-backend/internal/server/svr"
	"github.com/dragon-traveler/wiki-backend/internal/service"
	"github.com/dragon-traveler/wiki-backend/internal/util/rekuest"
)

type Suggestion struct {
	fx.In

	Redis             *redis.Client
	RedSync           *redsync.Redsync
	SuggestionService *service.Suggestion
}

func RegisterSuggestion(v1 *svr.V1, c Suggestion) {
	v1.Post("/suggestions", middlewares.Idempotency(&middlewares.IdempotencyConfig{
		Lifetime:  constant.SuggestionIdempotencyLifetime,
		KeyHeader: constant.IdempotencyKeyHeader,
		KeepResponseHeaders: []string{
			fiber.HeaderContentType,
			fiber.HeaderContentLength,
		},
		Storage: fiberstore.NewRedis(c.Redis, constant.SuggestionIdempotencyRedisHashKey),
		RedSync: c.RedSync,
	}), c.SubmitSuggestion)
	v1.Get("/suggestions/:taskId", c.GetSuggestionByTaskID)
}

// @Summary      Submit a Content Suggestion
// @Description  Submit a content suggestion for one of the wiki datasets. The
// @Description  suggestion is queued for asynchronous verification; use the
// @Description  returned `taskId` to poll its status.
// @Tags         Suggestion
// @Accept       json
// @Produce      json
// @Param        suggestion  body      types.SuggestionSubmitRequest   true  "Suggestion request"
// @Success      200         {object}  types.SuggestionSubmitResponse  "Suggestion has been queued"
// @Failure      400         {object}  wikierr.WikiError               "Invalid or missing request parameters"
// @Router       /api/v1/suggestions [POST]
func (c Suggestion) SubmitSuggestion(ctx *fiber.Ctx) error {
	var request types.SuggestionSubmitRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	response, err := c.SuggestionService.PreprocessAndQueueSuggestion(ctx, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(response)
}

// @Summary      Get a Suggestion by Task ID
// @Tags         Suggestion
// @Produce      json
// @Param        taskId  path  string  true  "Task ID"
// @Success      200  {object}  model.Suggestion
// @Failure      400  {object}  wikierr.WikiError "No suggestion with the given task ID"
// @Router       /api/v1/suggestions/{taskId} [GET]
func (c Suggestion) GetSuggestionByTaskID(ctx *fiber.Ctx) error {
	taskID := ctx.Params("taskId")
	if err := rekuest.ValidVar(ctx, taskID, "required,max=32"); err != nil {
		return err
	}

	suggestion, err := c.SuggestionService.GetSuggestionByTaskID(ctx.UserContext(), taskID)
	if err != nil {
		return err
	}
	return ctx.JSON(suggestion)
}
