package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragon-traveler/wiki-backend/internal/model/types"
	"github.com/dragon-traveler/wiki-backend/internal/pkg/wikierr"
)

func TestSummonProject(t *testing.T) {
	s := NewSummon()

	t.Run("ProjectsPlannedBlock", func(t *testing.T) {
		result, err := s.Project(&types.SummonProjectionRequest{
			StartingCount:  0,
			PlannedActions: 10,
		})
		require.NoError(t, err)

		assert.Equal(t, 10, result.TotalActions)
		assert.Equal(t, 2, result.GuaranteedCount)
		assert.Equal(t, 2, result.MilestoneBonus)
		assert.Equal(t, 5, result.NextGuaranteedPull)
		assert.Contains(t, result.Expected, "astral_ember")
		assert.Contains(t, result.Expected, "gold_talon")
	})

	t.Run("RejectsNegativeCounts", func(t *testing.T) {
		_, err := s.Project(&types.SummonProjectionRequest{
			StartingCount:  -1,
			PlannedActions: 10,
		})
		require.Error(t, err)

		var wikiError *wikierr.WikiError
		require.ErrorAs(t, err, &wikiError)
		assert.Equal(t, wikierr.ErrInvalidReq.ErrorCode, wikiError.ErrorCode)
	})
}

func TestSummonSolveTarget(t *testing.T) {
	s := NewSummon()

	t.Run("ReachableTarget", func(t *testing.T) {
		result, err := s.SolveTarget(&types.SummonTargetRequest{
			StartingCount: 0,
			Resource:      "astral_ember",
			Target:        50,
		})
		require.NoError(t, err)

		assert.True(t, result.Reachable)
		assert.Positive(t, result.PlannedActions)
		assert.GreaterOrEqual(t, result.ExpectedYield, 50.0)
	})

	t.Run("UnreachableTargetIsNotAnError", func(t *testing.T) {
		result, err := s.SolveTarget(&types.SummonTargetRequest{
			StartingCount: 0,
			Resource:      "wyrm_scale",
			Target:        1e12,
		})
		require.NoError(t, err)

		assert.False(t, result.Reachable)
		assert.Zero(t, result.PlannedActions)
	})

	t.Run("UnknownResource", func(t *testing.T) {
		_, err := s.SolveTarget(&types.SummonTargetRequest{
			StartingCount: 0,
			Resource:      "moon_dust",
			Target:        1,
		})
		require.Error(t, err)

		var wikiError *wikierr.WikiError
		require.ErrorAs(t, err, &wikiError)
		assert.Equal(t, wikierr.ErrInvalidReq.ErrorCode, wikiError.ErrorCode)
	})
}
