package suggestutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dragon-traveler/wiki-backend/internal/constant"
)

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name     string
		category string
		payload  string
		errLike  string
	}{
		{"CodeOK", constant.SuggestionCategoryCode, `{"code":"DRAGON2026"}`, ""},
		{"CodeMissing", constant.SuggestionCategoryCode, `{"active":true}`, "missing required fields"},
		{"EmptyStringCountsAsMissing", constant.SuggestionCategoryWyrmspell, `{"name":""}`, "missing required fields"},
		{"NullCountsAsMissing", constant.SuggestionCategoryStatusEffect, `{"name":null}`, "missing required fields"},
		{"LinkNeedsBothFields", constant.SuggestionCategoryLink, `{"name":"Official Site"}`, "link"},
		{"NotJSON", constant.SuggestionCategoryCode, `{"code":`, "not valid JSON"},
		{"UnknownCategory", "gossip", `{}`, "unknown category"},
		{"TierListEmptyEntries", constant.SuggestionCategoryTierList, `{"name":"Arena Meta","entries":[]}`, "missing required fields"},
		{"TierListEntryMissingTier", constant.SuggestionCategoryTierList,
			`{"name":"Arena Meta","entries":[{"character_name":"Kaldor"}]}`, "missing 'tier'"},
		{"TeamMemberMissingName", constant.SuggestionCategoryTeam,
			`{"name":"Raid Core","members":[{"note":"lead"}]}`, "missing 'character_name'"},
		{"TeamOK", constant.SuggestionCategoryTeam,
			`{"name":"Raid Core","members":[{"character_name":"Kaldor"}]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(tt.category, []byte(tt.payload))
			if tt.errLike == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errLike)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("CodeDefaultsActive", func(t *testing.T) {
		out, err := Normalize(constant.SuggestionCategoryCode, []byte(`{"code":"DRAGON2026","junk":1}`))
		require.NoError(t, err)

		assert.Equal(t, "DRAGON2026", gjson.GetBytes(out, "code").String())
		assert.True(t, gjson.GetBytes(out, "active").Bool())
		assert.False(t, gjson.GetBytes(out, "junk").Exists())
	})

	t.Run("CodeKeepsExplicitInactive", func(t *testing.T) {
		out, err := Normalize(constant.SuggestionCategoryCode, []byte(`{"code":"OLD","active":false}`))
		require.NoError(t, err)
		assert.False(t, gjson.GetBytes(out, "active").Bool())
	})

	t.Run("CharacterFillsOptionalFields", func(t *testing.T) {
		out, err := Normalize(constant.SuggestionCategoryCharacter, []byte(`{"name":"Vesryn"}`))
		require.NoError(t, err)

		assert.Equal(t, "Vesryn", gjson.GetBytes(out, "name").String())
		assert.Equal(t, "", gjson.GetBytes(out, "title").String())
		assert.True(t, gjson.GetBytes(out, "is_global").Bool())
		assert.True(t, gjson.GetBytes(out, "factions").IsArray())
		assert.Len(t, gjson.GetBytes(out, "factions").Array(), 0)
	})

	t.Run("TeamFillsAllWyrmspellSlots", func(t *testing.T) {
		payload := `{
			"name": "Raid Core",
			"members": [
				{"character_name": "Kaldor", "overdrive_order": 1},
				{"character_name": "Ilione"}
			],
			"wyrmspells": {"breach": "Emberfang"}
		}`
		out, err := Normalize(constant.SuggestionCategoryTeam, []byte(payload))
		require.NoError(t, err)

		for _, slot := range constant.WyrmspellSlots {
			assert.True(t, gjson.GetBytes(out, "wyrmspells."+slot).Exists(), "slot %s", slot)
		}
		assert.Equal(t, "Emberfang", gjson.GetBytes(out, "wyrmspells.breach").String())
		assert.Equal(t, "", gjson.GetBytes(out, "wyrmspells.refuge").String())

		members := gjson.GetBytes(out, "members").Array()
		require.Len(t, members, 2)
		assert.Equal(t, int64(1), members[0].Get("overdrive_order").Int())
		assert.Equal(t, gjson.Null, members[1].Get("overdrive_order").Type)
		assert.True(t, members[1].Get("substitutes").IsArray())
	})

	t.Run("TierListRebuildsEntries", func(t *testing.T) {
		payload := `{"name":"Arena Meta","entries":[{"character_name":"Sylra","tier":"S+","extra":true}]}`
		out, err := Normalize(constant.SuggestionCategoryTierList, []byte(payload))
		require.NoError(t, err)

		entries := gjson.GetBytes(out, "entries").Array()
		require.Len(t, entries, 1)
		assert.Equal(t, "Sylra", entries[0].Get("character_name").String())
		assert.Equal(t, "S+", entries[0].Get("tier").String())
		assert.Equal(t, "", entries[0].Get("note").String())
		assert.False(t, entries[0].Get("extra").Exists())
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		_, err := Normalize("gossip", []byte(`{}`))
		assert.Error(t, err)
	})
}
