package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Character struct {
	bun.BaseModel `bun:"characters,alias:ch"`

	CharacterID    int         `bun:",pk,autoincrement" json:"-"`
	Name           string      `json:"name"`
	Title          null.String `json:"title,omitempty" swaggertype:"string"`
	Quality        string      `json:"quality"`
	CharacterClass string      `json:"characterClass"`
	Factions       []string    `bun:",array" json:"factions"`
	IsGlobal       bool        `json:"isGlobal"`

	// Height, Weight, Origin and Lore are flavor fields; missing means the
	// source wiki page simply does not carry them, not that they are empty.
	Height null.String `json:"height,omitempty" swaggertype:"string"`
	Weight null.String `json:"weight,omitempty" swaggertype:"string"`
	Origin null.String `json:"origin,omitempty" swaggertype:"string"`
	Lore   null.String `json:"lore,omitempty" swaggertype:"string"`
	Quote  null.String `json:"quote,omitempty" swaggertype:"string"`

	Subclasses json.RawMessage `json:"subclasses,omitempty"`
	Abilities  json.RawMessage `json:"abilities,omitempty"`

	// RecommendedGear maps a gear slot to a recommended gear name.
	RecommendedGear json.RawMessage `json:"recommendedGear,omitempty"`
}
