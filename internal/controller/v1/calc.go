package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/server/svr"
	"github.com/dragon-traveler/wiki-backend/internal/service"
	"github.com/dragon-traveler/wiki-backend/internal/util/rekuest"
)

type Calc struct {
	fx.In

	SummonService  *service.Summon
	SynergyService *service.Synergy
}

func RegisterCalc(v1 *svr.V1, c Calc) {
	v1.Post("/calc/synergy", c.EvaluateSynergy)
	v1.Post("/calc/summon", c.ProjectSummon)
	v1.Post("/calc/summon/target", c.SolveSummonTarget)
}

// @Summary      Evaluate Team Synergy
// @Description  Scores a roster composition and returns the heuristic findings
// @Description  along with human-readable suggestions.
// @Tags         Calc
// @Accept       json
// @Produce      json
// @Param        request  body  types.SynergyRequest  true  "Synergy Request"
// @Success      200  {object}  synergy.Result
// @Failure      400  {object}  wikierr.WikiError "Invalid or missing request parameters"
// @Router       /api/v1/calc/synergy [POST]
func (c Calc) EvaluateSynergy(ctx *fiber.Ctx) error {
	var request types.SynergyRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	result, err := c.SynergyService.Evaluate(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}

// @Summary      Project Summon Yields
// @Description  Computes the expected resource yields of a planned block of
// @Description  summons, including guaranteed drops and milestone bonuses.
// @Tags         Calc
// @Accept       json
// @Produce      json
// @Param        request  body  types.SummonProjectionRequest  true  "Summon Projection Request"
// @Success      200  {object}  types.SummonProjectionResult
// @Failure      400  {object}  wikierr.WikiError "Invalid or missing request parameters"
// @Router       /api/v1/calc/summon [POST]
func (c Calc) ProjectSummon(ctx *fiber.Ctx) error {
	var request types.SummonProjectionRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	result, err := c.SummonService.Project(&request)
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}

// @Summary      Solve Summon Target
// @Description  Finds the smallest number of planned summons whose expected
// @Description  yield of a resource reaches the given target.
// @Tags         Calc
// @Accept       json
// @Produce      json
// @Param        request  body  types.SummonTargetRequest  true  "Summon Target Request"
// @Success      200  {object}  types.SummonTargetResult
// @Failure      400  {object}  wikierr.WikiError "Invalid or missing request parameters"
// @Router       /api/v1/calc/summon/target [POST]
func (c Calc) SolveSummonTarget(ctx *fiber.Ctx) error {
	var request types.SummonTargetRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	result, err := c.SummonService.SolveTarget(&request)
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}
