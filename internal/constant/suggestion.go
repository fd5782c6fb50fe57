package constant

import "time"

// Suggestion categories, matching the dataset each community suggestion
// gets appended to after moderation.
const (
	SuggestionCategoryCode         = "codes"
	SuggestionCategoryCharacter    = "character"
	SuggestionCategoryWyrmspell    = "wyrmspell"
	SuggestionCategoryStatusEffect = "status-effect"
	SuggestionCategoryLink         = "links"
	SuggestionCategoryTierList     = "tier-list"
	SuggestionCategoryTeam         = "team"
)

var SuggestionCategories = []string{
	SuggestionCategoryCode,
	SuggestionCategoryCharacter,
	SuggestionCategoryWyrmspell,
	SuggestionCategoryStatusEffect,
	SuggestionCategoryLink,
	SuggestionCategoryTierList,
	SuggestionCategoryTeam,
}

const (
	SuggestionStatusPending  = "pending"
	SuggestionStatusAccepted = "accepted"
	SuggestionStatusRejected = "rejected"
)

const (
	SuggestionIdempotencyLifetime     = time.Hour * 24
	SuggestionIdempotencyRedisHashKey = "suggestion:idempotency"

	SuggestionStreamName    = "dtwiki-suggestions"
	SuggestionSubject       = "SUGGESTION.SINGLE"
	SuggestionSubjectFilter = "SUGGESTION.*"
	SuggestionQueueName     = "dtwiki-suggestion-workers"
)
