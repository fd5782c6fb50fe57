package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type Gear struct {
	bun.BaseModel `bun:"gear,alias:gr"`

	GearID   int             `bun:",pk,autoincrement" json:"-"`
	Name     string          `json:"name"`
	Set      string          `json:"set"`
	Type     string          `json:"type"`
	Lore     string          `json:"lore,omitempty"`
	Stats    json.RawMessage `json:"stats,omitempty"`
	SetBonus *GearSetBonus   `json:"setBonus,omitempty"`
}

type GearSetBonus struct {
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

func (b *GearSetBonus) Scan(src any) error {
	return json.Unmarshal(src.([]byte), b)
}
