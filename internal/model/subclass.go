package model

import (
	"github.com/uptrace/bun"
)

type Subclass struct {
	bun.BaseModel `bun:"subclasses,alias:sc"`

	SubclassID     int      `bun:",pk,autoincrement" json:"-"`
	Name           string   `json:"name"`
	CharacterClass string   `json:"characterClass"`
	Tier           int      `json:"tier"`
	Bonuses        []string `bun:",array" json:"bonuses"`
	Effect         string   `json:"effect"`
}
