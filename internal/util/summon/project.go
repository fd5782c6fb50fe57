package summon

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument rejects negative counts and non-finite or negative
	// targets before any projection math runs.
	ErrInvalidArgument = errors.New("summon: invalid argument")

	// ErrTargetUnreachable marks a target yield that cannot be met within
	// SearchCap planned pulls.
	ErrTargetUnreachable = errors.New("summon: target unreachable")
)

// Projection is the expected outcome of a planned block of pulls.
type Projection struct {
	StartingCount  int
	PlannedActions int

	// TotalActions is StartingCount + PlannedActions.
	TotalActions int

	// Expected maps each resource to its expected yield over the planned
	// block, inclusive of the guaranteed-pull renormalization and the flat
	// per-pull bonus.
	Expected map[Resource]float64

	// GuaranteedCount is how many of the planned pulls land on a
	// guaranteed-drop position.
	GuaranteedCount int

	// MilestoneBonus is the total ember bonus from milestones whose
	// threshold falls within TotalActions.
	MilestoneBonus int

	// NextGuaranteedPull is how many further pulls after TotalActions until
	// the next guaranteed drop, always in [1, GuaranteedPeriod].
	NextGuaranteedPull int
}

// guaranteedWithin counts the guaranteed-drop positions among plannedActions
// pulls starting after startingCount prior pulls. The first guaranteed pull
// sits GuaranteedPeriod-(startingCount mod GuaranteedPeriod) pulls ahead, a
// full period ahead when startingCount is itself on a period boundary.
func guaranteedWithin(startingCount, plannedActions int) int {
	offset := GuaranteedPeriod - startingCount%GuaranteedPeriod
	if plannedActions < offset {
		return 0
	}
	return 1 + (plannedActions-offset)/GuaranteedPeriod
}

// NextGuaranteedPull is the 1-based distance from totalActions to the next
// guaranteed-drop position. It cycles GuaranteedPeriod, GuaranteedPeriod-1,
// ..., 1 and never returns 0: a total sitting exactly on a boundary has
// already consumed that guarantee, so the next one is a full period away.
func NextGuaranteedPull(totalActions int) int {
	r := totalActions % GuaranteedPeriod
	if r == 0 {
		return GuaranteedPeriod
	}
	return GuaranteedPeriod - r
}

// milestoneBonus sums the bonuses of every milestone reached by totalActions.
func milestoneBonus(totalActions int) int {
	bonus := 0
	for _, m := range milestones {
		if m.Threshold > totalActions {
			break
		}
		bonus += m.Bonus
	}
	return bonus
}

// Project computes the expected yield of plannedActions pulls on top of
// startingCount already-performed pulls. plannedActions of zero is valid and
// yields an all-zero projection.
func Project(startingCount, plannedActions int) (*Projection, error) {
	if startingCount < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "startingCount must be non-negative, got %d", startingCount)
	}
	if plannedActions < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "plannedActions must be non-negative, got %d", plannedActions)
	}

	total := startingCount + plannedActions
	guaranteed := guaranteedWithin(startingCount, plannedActions)
	regular := plannedActions - guaranteed

	expected := make(map[Resource]float64, len(rateTables))
	for res, table := range rateTables {
		// A guaranteed pull replaces the whole roll with the renormalized
		// ember drop, so every resource rolls its table on the regular
		// pulls only.
		ev := float64(regular) * table.ExpectedValue()
		if res == ResourceAstralEmber {
			ev += float64(guaranteed) * table.GuaranteedExpectedValue()
		}
		if res == ResourceGoldTalon {
			// The flat bonus is granted on every pull, guaranteed included.
			ev += float64(plannedActions) * FlatGoldTalonPerPull
		}
		expected[res] = ev
	}

	return &Projection{
		StartingCount:      startingCount,
		PlannedActions:     plannedActions,
		TotalActions:       total,
		Expected:           expected,
		GuaranteedCount:    guaranteed,
		MilestoneBonus:     milestoneBonus(total),
		NextGuaranteedPull: NextGuaranteedPull(total),
	}, nil
}

// ExpectedYield is the expected amount of a single resource over
// plannedActions pulls, inclusive of the milestone bonus when the resource is
// milestone-eligible. It is the monotonic function the inverse search brackets.
func ExpectedYield(startingCount, plannedActions int, res Resource) (float64, error) {
	if !IsTracked(res) {
		return 0, errors.Wrapf(ErrInvalidArgument, "unknown resource %q", res)
	}
	p, err := Project(startingCount, plannedActions)
	if err != nil {
		return 0, err
	}
	yield := p.Expected[res]
	if res == ResourceAstralEmber {
		yield += float64(p.MilestoneBonus - milestoneBonus(startingCount))
	}
	return yield, nil
}
