package suggestverifs

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("suggestverifs", fx.Provide(
		NewPayloadVerifier,
		NewRejectRuleVerifier,
		NewSuggestionVerifiers,
	))
}
