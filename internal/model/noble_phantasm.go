package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type NoblePhantasm struct {
	bun.BaseModel `bun:"noble_phantasms,alias:np"`

	NoblePhantasmID int    `bun:",pk,autoincrement" json:"-"`
	Name            string `json:"name"`

	// Character is the sole wielder; unbound phantasms carry none.
	Character null.String `json:"character,omitempty" swaggertype:"string"`

	IsGlobal bool                 `json:"isGlobal"`
	Lore     string               `json:"lore,omitempty"`
	Effects  NoblePhantasmEffects `json:"effects"`
	Skills   NoblePhantasmSkills  `json:"skills"`
}

type NoblePhantasmEffect struct {
	Tier        null.String `json:"tier,omitempty" swaggertype:"string"`
	TierLevel   null.Int    `json:"tierLevel,omitempty" swaggertype:"integer"`
	Description string      `json:"description"`
}

type NoblePhantasmEffects []NoblePhantasmEffect

func (e *NoblePhantasmEffects) Scan(src any) error {
	return json.Unmarshal(src.([]byte), e)
}

type NoblePhantasmSkill struct {
	Level       int         `json:"level"`
	Tier        null.String `json:"tier,omitempty" swaggertype:"string"`
	TierLevel   null.Int    `json:"tierLevel,omitempty" swaggertype:"integer"`
	Description string      `json:"description"`
}

type NoblePhantasmSkills []NoblePhantasmSkill

func (s *NoblePhantasmSkills) Scan(src any) error {
	return json.Unmarshal(src.([]byte), s)
}
