package constant

// Character qualities, from highest to lowest rarity.
const (
	QualityMyth       = "Myth"
	QualityLegendPlus = "Legend+"
	QualityLegend     = "Legend"
	QualityEpic       = "Epic"
	QualityElite      = "Elite"
)

var Qualities = []string{
	QualityMyth,
	QualityLegendPlus,
	QualityLegend,
	QualityEpic,
	QualityElite,
}

const (
	ClassGuardian = "Guardian"
	ClassWarrior  = "Warrior"
	ClassAssassin = "Assassin"
	ClassPriest   = "Priest"
	ClassMage     = "Mage"
	ClassArcher   = "Archer"
)

var CharacterClasses = []string{
	ClassGuardian,
	ClassWarrior,
	ClassAssassin,
	ClassPriest,
	ClassMage,
	ClassArcher,
}

const (
	FactionElementalEcho    = "Elemental Echo"
	FactionWildSpirit       = "Wild Spirit"
	FactionArcaneWisdom     = "Arcane Wisdom"
	FactionSanctumGlory     = "Sanctum Glory"
	FactionOtherworldReturn = "Otherworld Return"
	FactionIllusionVeil     = "Illusion Veil"
)

var FactionNames = []string{
	FactionElementalEcho,
	FactionWildSpirit,
	FactionArcaneWisdom,
	FactionSanctumGlory,
	FactionOtherworldReturn,
	FactionIllusionVeil,
}

// Wyrmspell slots a team loadout carries. Slot keys follow the dataset JSON
// field names; the display types differ only in capitalization and the
// apostrophe in Dragon's Call.
const (
	WyrmspellSlotBreach      = "breach"
	WyrmspellSlotRefuge      = "refuge"
	WyrmspellSlotWildcry     = "wildcry"
	WyrmspellSlotDragonsCall = "dragons_call"
)

var WyrmspellSlots = []string{
	WyrmspellSlotBreach,
	WyrmspellSlotRefuge,
	WyrmspellSlotWildcry,
	WyrmspellSlotDragonsCall,
}

const (
	WyrmspellTypeBreach      = "Breach"
	WyrmspellTypeRefuge      = "Refuge"
	WyrmspellTypeWildcry     = "Wildcry"
	WyrmspellTypeDragonsCall = "Dragon's Call"
)

const (
	ContentTypeAll         = "All"
	ContentTypeArena       = "Arena"
	ContentTypeCampaign    = "Campaign"
	ContentTypeDragonTrial = "Dragon Trial"
	ContentTypeGuildRaid   = "Guild Raid"
)

var ContentTypes = []string{
	ContentTypeAll,
	ContentTypeArena,
	ContentTypeCampaign,
	ContentTypeDragonTrial,
	ContentTypeGuildRaid,
}

// PvEContentTypes are the content types where sustained damage intake makes a
// healer effectively mandatory.
var PvEContentTypes = map[string]struct{}{
	ContentTypeCampaign:    {},
	ContentTypeDragonTrial: {},
	ContentTypeGuildRaid:   {},
}

const (
	TierSPlus = "S+"
	TierS     = "S"
	TierA     = "A"
	TierB     = "B"
	TierC     = "C"
	TierD     = "D"
)

var Tiers = []string{TierSPlus, TierS, TierA, TierB, TierC, TierD}

// TeamSize is the number of fielded members in a standard team.
const TeamSize = 5
