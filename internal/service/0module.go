package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewCode,
		NewGear,
		NewTeam,
		NewHealth,
		NewSummon,
		NewFaction,
		NewHowlkin,
		NewSynergy,
		NewArtifact,
		NewResource,
		NewSubclass,
		NewTierList,
		NewCharacter,
		NewWyrmspell,
		NewSuggestion,
		NewUsefulLink,
		NewStatusEffect,
		NewNoblePhantasm,
		NewGoldenAlliance,
	))
}
