// Package suggestutil validates and normalizes community suggestion payloads.
// Each suggestion category maps to one dataset; a payload is only appended to
// its dataset after moderation, so normalization fills every optional field
// with an explicit default to keep the dataset shape uniform.
package suggestutil

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dragon-traveler/wiki-backend/internal/constant"
)

// requiredFields lists the fields that must be present and non-empty per
// category.
var requiredFields = map[string][]string{
	constant.SuggestionCategoryCode:         {"code"},
	constant.SuggestionCategoryWyrmspell:    {"name"},
	constant.SuggestionCategoryStatusEffect: {"name"},
	constant.SuggestionCategoryLink:         {"name", "link"},
	constant.SuggestionCategoryCharacter:    {"name"},
	constant.SuggestionCategoryTierList:     {"name", "entries"},
	constant.SuggestionCategoryTeam:         {"name", "members"},
}

// truthy mirrors the "present and non-empty" check: an absent key, an empty
// string, an empty array and an explicit null all count as missing.
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null:
		return false
	case gjson.String:
		return r.Str != ""
	default:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		return true
	}
}

// ValidatePayload checks the payload of one suggestion against its category's
// required fields. The returned error message is shown verbatim to the
// submitter as the reject reason.
func ValidatePayload(category string, payload []byte) error {
	if !gjson.ValidBytes(payload) {
		return errors.New("payload is not valid JSON")
	}

	required, ok := requiredFields[category]
	if !ok {
		return errors.Errorf("unknown category: %s", category)
	}

	var missing []string
	for _, f := range required {
		if !truthy(gjson.GetBytes(payload, f)) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required fields for '%s': %s", category, strings.Join(missing, ", "))
	}

	switch category {
	case constant.SuggestionCategoryTierList:
		for i, e := range gjson.GetBytes(payload, "entries").Array() {
			if e.Get("character_name").String() == "" {
				return errors.Errorf("entry %d is missing 'character_name'", i)
			}
			if e.Get("tier").String() == "" {
				return errors.Errorf("entry %d is missing 'tier'", i)
			}
		}
	case constant.SuggestionCategoryTeam:
		for i, m := range gjson.GetBytes(payload, "members").Array() {
			if m.Get("character_name").String() == "" {
				return errors.Errorf("member %d is missing 'character_name'", i)
			}
		}
	}

	return nil
}

// Normalize rewrites a validated payload into the exact shape of its dataset:
// required fields copied through, optional fields defaulted, unknown fields
// dropped.
func Normalize(category string, payload []byte) ([]byte, error) {
	out := []byte(`{}`)

	switch category {
	case constant.SuggestionCategoryCode:
		out = setString(out, payload, "code", "code")
		active := true
		if v := gjson.GetBytes(payload, "active"); v.Exists() {
			active = v.Bool()
		}
		out, _ = sjson.SetBytes(out, "active", active)

	case constant.SuggestionCategoryWyrmspell:
		out = setString(out, payload, "name", "name")
		out = setString(out, payload, "effect", "effect")
		out = setString(out, payload, "type", "type")

	case constant.SuggestionCategoryStatusEffect:
		out = setString(out, payload, "name", "name")
		out = setString(out, payload, "state", "state")
		out = setString(out, payload, "effect", "effect")
		out = setString(out, payload, "remark", "remark")

	case constant.SuggestionCategoryLink:
		out = setString(out, payload, "icon", "icon")
		out = setString(out, payload, "application", "application")
		out = setString(out, payload, "name", "name")
		out = setString(out, payload, "description", "description")
		out = setString(out, payload, "link", "link")

	case constant.SuggestionCategoryCharacter:
		out = setString(out, payload, "name", "name")
		out = setString(out, payload, "title", "title")
		out = setString(out, payload, "quality", "quality")
		out = setString(out, payload, "character_class", "character_class")
		out = setRaw(out, payload, "factions", "factions", `[]`)
		out = setBool(out, payload, "is_global", "is_global", true)
		out = setRaw(out, payload, "subclasses", "subclasses", `[]`)
		out = setString(out, payload, "height", "height")
		out = setString(out, payload, "weight", "weight")
		out = setString(out, payload, "origin", "origin")
		out = setString(out, payload, "lore", "lore")
		out = setString(out, payload, "quote", "quote")
		out = setRaw(out, payload, "abilities", "abilities", `[]`)
		out = setRaw(out, payload, "recommended_gear", "recommended_gear", `{}`)

	case constant.SuggestionCategoryTierList:
		out = setString(out, payload, "name", "name")
		out = setString(out, payload, "author", "author")
		out = setString(out, payload, "content_type", "content_type")
		out = setString(out, payload, "description", "description")
		out, _ = sjson.SetRawBytes(out, "entries", []byte(`[]`))
		for i, e := range gjson.GetBytes(payload, "entries").Array() {
			prefix := "entries." + strconv.Itoa(i)
			out, _ = sjson.SetBytes(out, prefix+".character_name", e.Get("character_name").String())
			out, _ = sjson.SetBytes(out, prefix+".tier", e.Get("tier").String())
			out, _ = sjson.SetBytes(out, prefix+".note", e.Get("note").String())
		}

	case constant.SuggestionCategoryTeam:
		out = setString(out, payload, "name", "name")
		out = setString(out, payload, "author", "author")
		out = setString(out, payload, "content_type", "content_type")
		out = setString(out, payload, "description", "description")
		out = setString(out, payload, "faction", "faction")
		out, _ = sjson.SetRawBytes(out, "members", []byte(`[]`))
		for i, m := range gjson.GetBytes(payload, "members").Array() {
			prefix := "members." + strconv.Itoa(i)
			out, _ = sjson.SetBytes(out, prefix+".character_name", m.Get("character_name").String())
			order := []byte(`null`)
			if v := m.Get("overdrive_order"); v.Exists() && v.Type != gjson.Null {
				order = []byte(v.Raw)
			}
			out, _ = sjson.SetRawBytes(out, prefix+".overdrive_order", order)
			subs := []byte(`[]`)
			if v := m.Get("substitutes"); v.IsArray() {
				subs = []byte(v.Raw)
			}
			out, _ = sjson.SetRawBytes(out, prefix+".substitutes", subs)
			out, _ = sjson.SetBytes(out, prefix+".note", m.Get("note").String())
		}
		for _, slot := range constant.WyrmspellSlots {
			out = setString(out, payload, "wyrmspells."+slot, "wyrmspells."+slot)
		}

	default:
		return nil, errors.Errorf("unknown category: %s", category)
	}

	return out, nil
}

func setString(doc, payload []byte, key, path string) []byte {
	out, _ := sjson.SetBytes(doc, key, gjson.GetBytes(payload, path).String())
	return out
}

func setBool(doc, payload []byte, key, path string, def bool) []byte {
	val := def
	if v := gjson.GetBytes(payload, path); v.Exists() {
		val = v.Bool()
	}
	out, _ := sjson.SetBytes(doc, key, val)
	return out
}

func setRaw(doc, payload []byte, key, path, def string) []byte {
	raw := def
	if v := gjson.GetBytes(payload, path); v.Exists() && v.Type != gjson.Null {
		raw = v.Raw
	}
	out, _ := sjson.SetRawBytes(doc, key, []byte(raw))
	return out
}
