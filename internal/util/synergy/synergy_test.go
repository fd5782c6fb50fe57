package synergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragon-traveler/wiki-backend/internal/constant"
	"github.com/dragon-traveler/wiki-backend/internal/model"
)

func char(name, class string, factions ...string) *model.Character {
	return &model.Character{
		Name:           name,
		Quality:        constant.QualityLegend,
		CharacterClass: class,
		Factions:       factions,
	}
}

func spellTable(names ...string) map[string]*model.Wyrmspell {
	out := make(map[string]*model.Wyrmspell, len(names))
	for _, n := range names {
		out[n] = &model.Wyrmspell{Name: n, Type: constant.WyrmspellTypeBreach}
	}
	return out
}

func fullLoadout() map[string]string {
	return map[string]string{
		constant.WyrmspellSlotBreach:      "Emberfang",
		constant.WyrmspellSlotRefuge:      "Stonehide",
		constant.WyrmspellSlotWildcry:     "Galehowl",
		constant.WyrmspellSlotDragonsCall: "Eldertide",
	}
}

func balancedRoster() []*model.Character {
	return []*model.Character{
		char("Kaldor", constant.ClassGuardian, constant.FactionSanctumGlory),
		char("Brynn", constant.ClassWarrior, constant.FactionSanctumGlory),
		char("Vesryn", constant.ClassMage, constant.FactionSanctumGlory),
		char("Sylra", constant.ClassArcher, constant.FactionWildSpirit),
		char("Ilione", constant.ClassPriest, constant.FactionSanctumGlory),
	}
}

func TestComputeBalancedRosterScoresFull(t *testing.T) {
	res := Compute(&Input{
		Roster:         balancedRoster(),
		Faction:        constant.FactionSanctumGlory,
		ContentType:    constant.ContentTypeCampaign,
		OverdriveCount: 3,
		TeamWyrmspells: fullLoadout(),
		Wyrmspells:     spellTable("Emberfang", "Stonehide", "Galehowl", "Eldertide"),
	})

	assert.Equal(t, 95, res.Score)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, TagFactionSynergy, res.Tags[0].Kind)
	assert.Equal(t, constant.FactionSanctumGlory, res.Tags[0].Faction)
	assert.Equal(t, 4, res.Tags[0].Count)
	assert.Empty(t, res.Suggestions)
}

func TestComputeIsDeterministic(t *testing.T) {
	input := func() *Input {
		return &Input{
			Roster:         balancedRoster(),
			Faction:        constant.FactionSanctumGlory,
			ContentType:    constant.ContentTypeDragonTrial,
			OverdriveCount: 2,
			TeamWyrmspells: fullLoadout(),
			Wyrmspells:     spellTable("Emberfang", "Stonehide"),
		}
	}

	first := Compute(input())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compute(input()))
	}
}

func TestComputeEmptyRoster(t *testing.T) {
	t.Run("PvEFlagsAllRoles", func(t *testing.T) {
		res := Compute(&Input{
			Roster:      nil,
			ContentType: constant.ContentTypeGuildRaid,
		})

		var gaps []string
		for _, tag := range res.Tags {
			if tag.Kind == TagRoleGap {
				gaps = append(gaps, tag.Role)
			}
		}
		assert.Equal(t, []string{"frontline", "damage dealer", "healer"}, gaps)
	})

	t.Run("ArenaSkipsHealerRequirement", func(t *testing.T) {
		res := Compute(&Input{
			Roster:      nil,
			ContentType: constant.ContentTypeArena,
		})

		var gaps []string
		for _, tag := range res.Tags {
			if tag.Kind == TagRoleGap {
				gaps = append(gaps, tag.Role)
			}
		}
		assert.Equal(t, []string{"frontline", "damage dealer"}, gaps)
	})
}

func TestComputeFactionSynergy(t *testing.T) {
	t.Run("BelowThresholdSuggestsInstead", func(t *testing.T) {
		roster := []*model.Character{
			char("Kaldor", constant.ClassGuardian, constant.FactionIllusionVeil),
			char("Vesryn", constant.ClassMage, constant.FactionWildSpirit),
		}
		res := Compute(&Input{
			Roster:         roster,
			Faction:        constant.FactionIllusionVeil,
			ContentType:    constant.ContentTypeAll,
			OverdriveCount: 1,
			TeamWyrmspells: fullLoadout(),
			Wyrmspells:     spellTable("Emberfang", "Stonehide", "Galehowl", "Eldertide"),
		})

		for _, tag := range res.Tags {
			assert.NotEqual(t, TagFactionSynergy, tag.Kind)
		}
		assert.Contains(t, res.Suggestions[len(res.Suggestions)-1],
			constant.FactionIllusionVeil)
	})

	t.Run("DominantMismatchGrantsNothing", func(t *testing.T) {
		res := Compute(&Input{
			Roster:      balancedRoster(),
			Faction:     constant.FactionWildSpirit,
			ContentType: constant.ContentTypeAll,
		})

		for _, tag := range res.Tags {
			assert.NotEqual(t, TagFactionSynergy, tag.Kind)
		}
	})

	t.Run("NoContextSkipsRule", func(t *testing.T) {
		res := Compute(&Input{
			Roster:      balancedRoster(),
			Faction:     "",
			ContentType: constant.ContentTypeAll,
		})

		for _, tag := range res.Tags {
			assert.NotEqual(t, TagFactionSynergy, tag.Kind)
		}
	})
}

func TestComputeWyrmspells(t *testing.T) {
	t.Run("UnknownSpellDegradesGracefully", func(t *testing.T) {
		loadout := fullLoadout()
		loadout[constant.WyrmspellSlotWildcry] = "Moonless Hymn"

		res := Compute(&Input{
			Roster:         balancedRoster(),
			ContentType:    constant.ContentTypeCampaign,
			OverdriveCount: 3,
			TeamWyrmspells: loadout,
			Wyrmspells:     spellTable("Emberfang", "Stonehide", "Galehowl", "Eldertide"),
		})

		var unknown []Tag
		for _, tag := range res.Tags {
			if tag.Kind == TagWyrmspellUnknown {
				unknown = append(unknown, tag)
			}
		}
		require.Len(t, unknown, 1)
		assert.Equal(t, constant.WyrmspellSlotWildcry, unknown[0].Slot)
		assert.Equal(t, "Moonless Hymn", unknown[0].Spell)
	})

	t.Run("EmptySlotsNamedInCanonicalOrder", func(t *testing.T) {
		res := Compute(&Input{
			Roster:         balancedRoster(),
			ContentType:    constant.ContentTypeCampaign,
			OverdriveCount: 3,
			TeamWyrmspells: nil,
			Wyrmspells:     spellTable(),
		})

		var slots []string
		for _, tag := range res.Tags {
			if tag.Kind == TagWyrmspellSlotEmpty {
				slots = append(slots, tag.Slot)
			}
		}
		assert.Equal(t, constant.WyrmspellSlots, slots)
	})
}

func TestComputeOverdrive(t *testing.T) {
	base := func() *Input {
		return &Input{
			Roster:         balancedRoster(),
			ContentType:    constant.ContentTypeCampaign,
			TeamWyrmspells: fullLoadout(),
			Wyrmspells:     spellTable("Emberfang", "Stonehide", "Galehowl", "Eldertide"),
		}
	}

	t.Run("UnderRecommendedRange", func(t *testing.T) {
		input := base()
		input.OverdriveCount = 1

		res := Compute(input)
		require.Len(t, res.Tags, 1)
		assert.Equal(t, TagOverdriveImbalance, res.Tags[0].Kind)
		assert.Equal(t, DirectionLow, res.Tags[0].Direction)
	})

	t.Run("CountBeyondRosterSizeDoesNotFail", func(t *testing.T) {
		input := base()
		input.OverdriveCount = 9

		res := Compute(input)
		require.Len(t, res.Tags, 1)
		assert.Equal(t, TagOverdriveImbalance, res.Tags[0].Kind)
		assert.Equal(t, DirectionHigh, res.Tags[0].Direction)
	})

	t.Run("ArenaWantsEveryoneOrdered", func(t *testing.T) {
		input := base()
		input.ContentType = constant.ContentTypeArena
		input.OverdriveCount = 4

		res := Compute(input)
		var directions []string
		for _, tag := range res.Tags {
			if tag.Kind == TagOverdriveImbalance {
				directions = append(directions, tag.Direction)
			}
		}
		assert.Equal(t, []string{DirectionLow}, directions)
	})
}
