package summon

import (
	"math"

	"github.com/pkg/errors"
)

// SearchCap bounds the inverse search. A target still unmet after this many
// planned pulls is reported as unreachable rather than as an error.
const SearchCap = 1_000_000

// MinimumActionsForTarget finds the smallest plannedActions whose expected
// yield of res meets or exceeds target, via exponential bracketing followed by
// binary search. The expected yield is nondecreasing in plannedActions, so the
// bisection invariant holds throughout.
//
// A target no amount of pulls up to SearchCap can satisfy returns
// ErrTargetUnreachable; malformed inputs return ErrInvalidArgument.
func MinimumActionsForTarget(startingCount int, res Resource, target float64) (int, error) {
	if startingCount < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "startingCount must be non-negative, got %d", startingCount)
	}
	if !IsTracked(res) {
		return 0, errors.Wrapf(ErrInvalidArgument, "unknown resource %q", res)
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return 0, errors.Wrap(ErrInvalidArgument, "target must be finite")
	}
	if target < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "target must be non-negative, got %f", target)
	}

	yield := func(n int) float64 {
		// Inputs are validated above; Project cannot fail here.
		y, _ := ExpectedYield(startingCount, n, res)
		return y
	}

	// The answer is at least 1 even for a zero target.
	// Double until the target is bracketed or the cap is hit.
	hi := 1
	for yield(hi) < target {
		if hi >= SearchCap {
			return 0, errors.Wrapf(ErrTargetUnreachable,
				"target %f of %s not reachable within %d pulls", target, res, SearchCap)
		}
		hi *= 2
		if hi > SearchCap {
			hi = SearchCap
		}
	}

	// Smallest n in (hi/2, hi] with yield(n) >= target.
	lo := hi / 2
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if yield(mid) >= target {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
