package service

import (
	"github.com/pkg/errors"

	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/pkg/wikierr"
	"github.com/dragon-traveler/wiki-backend/internal/util/summon"
)

type Summon struct{}

func NewSummon() *Summon {
	return &Summon{}
}

func (s *Summon) Project(req *types.SummonProjectionRequest) (*types.SummonProjectionResult, error) {
	projection, err := summon.Project(req.StartingCount, req.PlannedActions)
	if err != nil {
		if errors.Is(err, summon.ErrInvalidArgument) {
			return nil, wikierr.ErrInvalidReq.Msg("%s", err)
		}
		return nil, err
	}

	expected := make(map[string]float64, len(projection.Expected))
	for resource, yield := range projection.Expected {
		expected[string(resource)] = yield
	}

	return &types.SummonProjectionResult{
		TotalActions:       projection.TotalActions,
		Expected:           expected,
		GuaranteedCount:    projection.GuaranteedCount,
		MilestoneBonus:     projection.MilestoneBonus,
		NextGuaranteedPull: projection.NextGuaranteedPull,
	}, nil
}

// SolveTarget inverts the projection. An unreachable target is a regular
// response with Reachable set to false, not an error.
func (s *Summon) SolveTarget(req *types.SummonTargetRequest) (*types.SummonTargetResult, error) {
	plannedActions, err := summon.MinimumActionsForTarget(req.StartingCount, summon.Resource(req.Resource), req.Target)
	if err != nil {
		if errors.Is(err, summon.ErrTargetUnreachable) {
			return &types.SummonTargetResult{Reachable: false}, nil
		}
		if errors.Is(err, summon.ErrInvalidArgument) {
			return nil, wikierr.ErrInvalidReq.Msg("%s", err)
		}
		return nil, err
	}

	yield, err := summon.ExpectedYield(req.StartingCount, plannedActions, summon.Resource(req.Resource))
	if err != nil {
		return nil, err
	}

	return &types.SummonTargetResult{
		Reachable:      true,
		PlannedActions: plannedActions,
		ExpectedYield:  yield,
	}, nil
}
