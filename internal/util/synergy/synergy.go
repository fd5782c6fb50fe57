// Package synergy evaluates a fielded team roster against a fixed set of
// composition heuristics: role coverage, faction synergy, wyrmspell loadout
// completeness and overdrive utilization. Evaluation is pure and
// deterministic; identical inputs always produce identical results.
package synergy

import (
	"fmt"

	"github.com/dragon-traveler/wiki-backend/internal/constant"
	"github.com/dragon-traveler/wiki-backend/internal/model"
)

// TagKind enumerates the closed set of rule outcomes.
type TagKind string

const (
	TagRoleGap            TagKind = "ROLE_GAP"
	TagFactionSynergy     TagKind = "FACTION_SYNERGY"
	TagWyrmspellSlotEmpty TagKind = "WYRMSPELL_SLOT_EMPTY"
	TagWyrmspellUnknown   TagKind = "WYRMSPELL_UNKNOWN"
	TagOverdriveImbalance TagKind = "OVERDRIVE_IMBALANCE"
)

const (
	DirectionLow  = "low"
	DirectionHigh = "high"
)

// Tag is one triggered rule outcome. Only the fields relevant to its Kind are
// populated.
type Tag struct {
	Kind TagKind `json:"kind"`

	// Role names the uncovered archetype for ROLE_GAP.
	Role string `json:"role,omitempty"`

	// Faction and Count describe the matched faction for FACTION_SYNERGY.
	Faction string `json:"faction,omitempty"`
	Count   int    `json:"count,omitempty"`

	// Slot names the loadout slot for the wyrmspell tags; Spell carries the
	// unrecognized spell name for WYRMSPELL_UNKNOWN.
	Slot  string `json:"slot,omitempty"`
	Spell string `json:"spell,omitempty"`

	// Direction is "low" or "high" for OVERDRIVE_IMBALANCE.
	Direction string `json:"direction,omitempty"`
}

// Input is one roster evaluation request. Roster may be empty; OverdriveCount
// is taken at face value and never cross-checked against the roster size.
type Input struct {
	Roster      []*model.Character
	Faction     string
	ContentType string

	OverdriveCount int

	// TeamWyrmspells maps loadout slot keys to spell names.
	TeamWyrmspells map[string]string

	// Wyrmspells is the lookup table of known spells by name.
	Wyrmspells map[string]*model.Wyrmspell
}

// Result is the aggregate evaluation of one roster.
type Result struct {
	// Score is the weighted sum of the four sub-scores, in [0, 100].
	Score int `json:"score"`

	Tags        []Tag    `json:"tags"`
	Suggestions []string `json:"suggestions"`
}

// Sub-score weights. They sum to 100 so the aggregate reads as a percentage.
const (
	weightRole      = 40
	weightFaction   = 25
	weightWyrmspell = 20
	weightOverdrive = 15
)

// FactionSynergyMinCount is the fewest same-faction members that activate the
// faction bonus.
const FactionSynergyMinCount = 2

// archetype groups character classes into the roles a balanced team covers.
type archetype struct {
	name    string
	classes []string
	// pveOnly archetypes are required only for sustained-damage content.
	pveOnly bool
}

// archetypes are evaluated in this order; it fixes the order of ROLE_GAP tags.
var archetypes = []archetype{
	{name: "frontline", classes: []string{constant.ClassGuardian, constant.ClassWarrior}},
	{name: "damage dealer", classes: []string{constant.ClassAssassin, constant.ClassMage, constant.ClassArcher}},
	{name: "healer", classes: []string{constant.ClassPriest}, pveOnly: true},
}

// Compute evaluates the roster. It never fails: unknown wyrmspells and
// out-of-range overdrive counts degrade to tags and suggestions.
func Compute(input *Input) *Result {
	res := &Result{
		Tags:        []Tag{},
		Suggestions: []string{},
	}

	roleScore := scoreRoles(input, res)
	factionScore := scoreFaction(input, res)
	wyrmScore := scoreWyrmspells(input, res)
	overdriveScore := scoreOverdrive(input, res)

	score := float64(weightRole)*roleScore +
		float64(weightFaction)*factionScore +
		float64(weightWyrmspell)*wyrmScore +
		float64(weightOverdrive)*overdriveScore
	res.Score = int(score + 0.5)

	return res
}

// scoreRoles tallies class coverage against the expected archetypes and flags
// each gap. The sub-score is the covered fraction of the required archetypes.
func scoreRoles(input *Input, res *Result) float64 {
	classCounts := make(map[string]int, len(constant.CharacterClasses))
	for _, ch := range input.Roster {
		classCounts[ch.CharacterClass]++
	}

	_, pve := constant.PvEContentTypes[input.ContentType]

	required, covered := 0, 0
	for _, a := range archetypes {
		if a.pveOnly && !pve {
			continue
		}
		required++

		n := 0
		for _, class := range a.classes {
			n += classCounts[class]
		}
		if n > 0 {
			covered++
			continue
		}
		res.Tags = append(res.Tags, Tag{Kind: TagRoleGap, Role: a.name})
		res.Suggestions = append(res.Suggestions,
			fmt.Sprintf("Add a %s (%s) to cover the %s role.",
				a.name, joinClasses(a.classes), a.name))
	}

	if required == 0 {
		return 1
	}
	return float64(covered) / float64(required)
}

// scoreFaction finds the dominant faction of the roster and grants the bonus
// when it matches the selected faction context with enough members. Magnitude
// scales with the match count.
func scoreFaction(input *Input, res *Result) float64 {
	if input.Faction == "" {
		return 1
	}

	counts := make(map[string]int, len(constant.FactionNames))
	for _, ch := range input.Roster {
		for _, f := range ch.Factions {
			counts[f]++
		}
	}

	// Ties resolve to the first faction in the canonical order so the
	// outcome never depends on map iteration.
	dominant, dominantCount := "", 0
	for _, f := range constant.FactionNames {
		if counts[f] > dominantCount {
			dominant, dominantCount = f, counts[f]
		}
	}

	if dominant != input.Faction || dominantCount < FactionSynergyMinCount {
		res.Suggestions = append(res.Suggestions,
			fmt.Sprintf("Field at least %d %s members to activate the faction bonus.",
				FactionSynergyMinCount, input.Faction))
		return 0
	}

	res.Tags = append(res.Tags, Tag{
		Kind:    TagFactionSynergy,
		Faction: dominant,
		Count:   dominantCount,
	})
	score := float64(dominantCount) / float64(constant.TeamSize)
	if score > 1 {
		score = 1
	}
	return score
}

// scoreWyrmspells checks the four loadout slots in canonical order. An empty
// slot costs score and yields a suggestion; a filled slot whose spell is not
// in the lookup table counts as unknown and contributes no bonus, but never
// aborts the evaluation.
func scoreWyrmspells(input *Input, res *Result) float64 {
	known := 0
	for _, slot := range constant.WyrmspellSlots {
		name := input.TeamWyrmspells[slot]
		if name == "" {
			res.Tags = append(res.Tags, Tag{Kind: TagWyrmspellSlotEmpty, Slot: slot})
			res.Suggestions = append(res.Suggestions,
				fmt.Sprintf("Slot a wyrmspell into the %s slot.", slot))
			continue
		}
		if _, ok := input.Wyrmspells[name]; !ok {
			res.Tags = append(res.Tags, Tag{Kind: TagWyrmspellUnknown, Slot: slot, Spell: name})
			continue
		}
		known++
	}
	return float64(known) / float64(len(constant.WyrmspellSlots))
}

// scoreOverdrive compares the overdrive count against the recommended range
// for the roster size and content type.
func scoreOverdrive(input *Input, res *Result) float64 {
	lo, hi := recommendedOverdrive(len(input.Roster), input.ContentType)
	count := input.OverdriveCount

	switch {
	case count < lo:
		res.Tags = append(res.Tags, Tag{Kind: TagOverdriveImbalance, Direction: DirectionLow})
		res.Suggestions = append(res.Suggestions,
			fmt.Sprintf("Assign overdrive order to at least %d members for this content.", lo))
		if lo == 0 {
			return 0
		}
		return float64(count) / float64(lo)
	case count > hi:
		res.Tags = append(res.Tags, Tag{Kind: TagOverdriveImbalance, Direction: DirectionHigh})
		res.Suggestions = append(res.Suggestions,
			fmt.Sprintf("Trim the overdrive order down to at most %d members.", hi))
		return float64(hi) / float64(count)
	default:
		return 1
	}
}

// recommendedOverdrive is the inclusive overdrive-count range for a roster.
// Arena comps burst on the opening rotation and want everyone ordered; other
// content wants at least half the roster.
func recommendedOverdrive(rosterSize int, contentType string) (int, int) {
	if rosterSize == 0 {
		return 0, 0
	}
	lo := (rosterSize + 1) / 2
	if contentType == constant.ContentTypeArena {
		lo = rosterSize
	}
	return lo, rosterSize
}

func joinClasses(classes []string) string {
	out := ""
	for i, c := range classes {
		if i > 0 {
			out += " or "
		}
		out += c
	}
	return out
}
