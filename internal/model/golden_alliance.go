package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type GoldenAlliance struct {
	bun.BaseModel `bun:"golden_alliances,alias:ga"`

	GoldenAllianceID int      `bun:",pk,autoincrement" json:"-"`
	Name             string   `json:"name"`
	Howlkins         []string `bun:",array" json:"howlkins"`

	Effects GoldenAllianceEffects `json:"effects"`
}

type GoldenAllianceEffect struct {
	Level int      `json:"level"`
	Stats []string `json:"stats"`
}

type GoldenAllianceEffects []GoldenAllianceEffect

func (e *GoldenAllianceEffects) Scan(src any) error {
	return json.Unmarshal(src.([]byte), e)
}
