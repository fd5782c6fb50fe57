package repo

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("repo", fx.Provide(
		NewCode,
		NewGear,
		NewTeam,
		NewFaction,
		NewHowlkin,
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
		NewSuggestionRejectRule,
	))
}
