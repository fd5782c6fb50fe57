// Package summon models the Dragon's Call summon banner: per-pull drop
// expectations for each tracked resource, the guaranteed ember on every 5th
// pull, and the cumulative pull-count milestones.
package summon

// Resource identifies one tracked reward currency of the summon banner.
type Resource string

const (
	// ResourceAstralEmber is guaranteed to drop on every 5th pull, with
	// its chances renormalized over the regular table.
	ResourceAstralEmber Resource = "astral_ember"

	ResourceWyrmScale   Resource = "wyrm_scale"
	ResourceDragonSigil Resource = "dragon_sigil"

	// ResourceGoldTalon additionally yields a flat amount on every pull.
	ResourceGoldTalon Resource = "gold_talon"
)

// DropRate is one (chance, amount) row of a per-pull drop table.
type DropRate struct {
	Chance float64
	Amount int
}

// RateTable is a discrete partial distribution over drop amounts for one
// resource and a single pull. Chances sum to at most 1; the remaining mass is
// "no drop this pull".
type RateTable []DropRate

// ExpectedValue is the per-pull expectation of the raw table.
func (t RateTable) ExpectedValue() float64 {
	ev := 0.0
	for _, r := range t {
		ev += r.Chance * float64(r.Amount)
	}
	return ev
}

// TotalChance is the probability that the pull drops anything at all.
func (t RateTable) TotalChance() float64 {
	sum := 0.0
	for _, r := range t {
		sum += r.Chance
	}
	return sum
}

// GuaranteedExpectedValue is the per-pull expectation conditioned on the pull
// dropping something, i.e. with chances renormalized to sum to exactly 1.
func (t RateTable) GuaranteedExpectedValue() float64 {
	sum := t.TotalChance()
	if sum == 0 {
		return 0
	}
	return t.ExpectedValue() / sum
}

// Milestone grants a fixed ember bonus once the cumulative pull count reaches
// Threshold.
type Milestone struct {
	Threshold int
	Bonus     int
}

const (
	// GuaranteedPeriod is the pull cadence of the guaranteed ember drop.
	GuaranteedPeriod = 5

	// FlatGoldTalonPerPull is granted on every pull regardless of the
	// random table outcome.
	FlatGoldTalonPerPull = 5
)

// Banner rate tables. These are fixed per event and intentionally not
// configurable at runtime.
var rateTables = map[Resource]RateTable{
	ResourceAstralEmber: {
		{Chance: 0.07, Amount: 5},
		{Chance: 0.13, Amount: 3},
		{Chance: 0.06, Amount: 2},
		{Chance: 0.14, Amount: 1},
	},
	ResourceWyrmScale: {
		{Chance: 0.25, Amount: 2},
		{Chance: 0.50, Amount: 1},
	},
	ResourceDragonSigil: {
		{Chance: 0.02, Amount: 10},
		{Chance: 0.08, Amount: 5},
		{Chance: 0.20, Amount: 1},
	},
	ResourceGoldTalon: {
		{Chance: 0.50, Amount: 20},
		{Chance: 0.30, Amount: 50},
	},
}

// milestones are cumulative pull-count thresholds granting ember bonuses.
// Thresholds are strictly increasing.
var milestones = []Milestone{
	{Threshold: 10, Bonus: 2},
	{Threshold: 30, Bonus: 3},
	{Threshold: 60, Bonus: 4},
	{Threshold: 100, Bonus: 6},
	{Threshold: 200, Bonus: 10},
}

// resourceOrder fixes the iteration order of Resources for deterministic
// serialization.
var resourceOrder = []Resource{
	ResourceAstralEmber,
	ResourceWyrmScale,
	ResourceDragonSigil,
	ResourceGoldTalon,
}

// Resources lists the tracked resources in a stable order.
func Resources() []Resource {
	out := make([]Resource, len(resourceOrder))
	copy(out, resourceOrder)
	return out
}

// IsTracked reports whether r is a resource of this banner.
func IsTracked(r Resource) bool {
	_, ok := rateTables[r]
	return ok
}
