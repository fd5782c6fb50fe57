package summon

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTableExpectations(t *testing.T) {
	ember := rateTables[ResourceAstralEmber]
	assert.InDelta(t, 1.00, ember.ExpectedValue(), 1e-9)
	assert.InDelta(t, 0.40, ember.TotalChance(), 1e-9)
	assert.InDelta(t, 2.50, ember.GuaranteedExpectedValue(), 1e-9)
}

func TestProject(t *testing.T) {
	t.Run("GuaranteedPullRenormalization", func(t *testing.T) {
		// 5 planned pulls from a fresh start cross exactly one
		// guaranteed position: 4 regular pulls at the raw expectation
		// plus 1 guaranteed pull at the renormalized one.
		p, err := Project(0, 5)
		require.NoError(t, err)

		assert.Equal(t, 1, p.GuaranteedCount)
		assert.InDelta(t, 4*1.00+1*2.50, p.Expected[ResourceAstralEmber], 1e-9)
	})

	t.Run("GuaranteedPullSkipsRegularRoll", func(t *testing.T) {
		// The guaranteed position yields the renormalized ember drop in
		// place of the whole roll, so the other resources only roll
		// their tables on the 4 regular pulls. The flat gold talon
		// bonus still lands on all 5.
		p, err := Project(0, 5)
		require.NoError(t, err)

		assert.InDelta(t, 4*rateTables[ResourceWyrmScale].ExpectedValue(), p.Expected[ResourceWyrmScale], 1e-9)
		assert.InDelta(t, 4*rateTables[ResourceDragonSigil].ExpectedValue(), p.Expected[ResourceDragonSigil], 1e-9)

		goldRaw := rateTables[ResourceGoldTalon].ExpectedValue()
		assert.InDelta(t, 4*goldRaw+5*FlatGoldTalonPerPull, p.Expected[ResourceGoldTalon], 1e-9)
	})

	t.Run("ZeroPlanIsIdentity", func(t *testing.T) {
		p, err := Project(17, 0)
		require.NoError(t, err)

		assert.Equal(t, 0, p.GuaranteedCount)
		for _, res := range Resources() {
			assert.Zero(t, p.Expected[res], "resource %s", res)
		}
		assert.Equal(t, 17, p.TotalActions)
	})

	t.Run("GuaranteedCount", func(t *testing.T) {
		tests := []struct {
			name       string
			start      int
			planned    int
			guaranteed int
		}{
			{"FreshStartShortOfPeriod", 0, 4, 0},
			{"FreshStartExactPeriod", 0, 5, 1},
			{"FreshStartTwoPeriods", 0, 10, 2},
			{"MidCycleCatchesNearGuarantee", 4, 1, 1},
			{"BoundaryStartNeedsFullPeriod", 5, 4, 0},
			{"BoundaryStartFullPeriod", 5, 5, 1},
			{"MidCycleLongPlan", 3, 12, 3},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, err := Project(tt.start, tt.planned)
				require.NoError(t, err)
				assert.Equal(t, tt.guaranteed, p.GuaranteedCount)
			})
		}
	})

	t.Run("FlatBonusScalesWithPlan", func(t *testing.T) {
		p, err := Project(0, 3)
		require.NoError(t, err)

		raw := rateTables[ResourceGoldTalon].ExpectedValue()
		assert.InDelta(t, 3*raw+3*FlatGoldTalonPerPull, p.Expected[ResourceGoldTalon], 1e-9)
	})

	t.Run("MilestoneBonus", func(t *testing.T) {
		// Thresholds 10 and 30 fall within 35 total pulls; 60 does not.
		p, err := Project(0, 35)
		require.NoError(t, err)
		assert.Equal(t, 2+3, p.MilestoneBonus)
	})

	t.Run("RejectsNegativeInputs", func(t *testing.T) {
		_, err := Project(-1, 5)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = Project(0, -5)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestNextGuaranteedPull(t *testing.T) {
	// The distance cycles 5, 4, 3, 2, 1 and restarts at 5 on every
	// boundary; it never hits 0.
	expected := []int{5, 4, 3, 2, 1, 5, 4, 3, 2, 1, 5}
	for total, want := range expected {
		assert.Equal(t, want, NextGuaranteedPull(total), "totalActions=%d", total)
	}
}

func TestExpectedYieldMonotonic(t *testing.T) {
	for _, res := range Resources() {
		prev := -1.0
		for n := 0; n <= 40; n++ {
			y, err := ExpectedYield(7, n, res)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, y, prev, "resource %s at n=%d", res, n)
			prev = y
		}
	}
}

func TestMinimumActionsForTarget(t *testing.T) {
	t.Run("RoundTripMinimality", func(t *testing.T) {
		tests := []struct {
			start  int
			res    Resource
			target float64
		}{
			{0, ResourceAstralEmber, 6.5},
			{0, ResourceAstralEmber, 100},
			{3, ResourceWyrmScale, 42},
			{12, ResourceDragonSigil, 17.5},
			{7, ResourceGoldTalon, 1234},
		}
		for _, tt := range tests {
			n, err := MinimumActionsForTarget(tt.start, tt.res, tt.target)
			require.NoError(t, err)

			got, err := ExpectedYield(tt.start, n, tt.res)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, tt.target)

			if n > 0 {
				under, err := ExpectedYield(tt.start, n-1, tt.res)
				require.NoError(t, err)
				assert.Less(t, under, tt.target)
			}
		}
	})

	t.Run("ZeroTargetFloorsAtOnePull", func(t *testing.T) {
		n, err := MinimumActionsForTarget(9, ResourceWyrmScale, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Unreachable", func(t *testing.T) {
		_, err := MinimumActionsForTarget(0, ResourceWyrmScale, 1e12)
		assert.ErrorIs(t, err, ErrTargetUnreachable)
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		_, err := MinimumActionsForTarget(-1, ResourceWyrmScale, 10)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = MinimumActionsForTarget(0, Resource("moon_dust"), 10)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = MinimumActionsForTarget(0, ResourceWyrmScale, math.NaN())
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = MinimumActionsForTarget(0, ResourceWyrmScale, math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = MinimumActionsForTarget(0, ResourceWyrmScale, -3)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("UnreachableIsNotInvalid", func(t *testing.T) {
		_, err := MinimumActionsForTarget(0, ResourceDragonSigil, 1e11)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidArgument))
	})
}
