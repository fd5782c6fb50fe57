package model

import (
	"github.com/uptrace/bun"
)

type Faction struct {
	bun.BaseModel `bun:"factions,alias:fa"`

	FactionID            int      `bun:",pk,autoincrement" json:"-"`
	Name                 string   `json:"name"`
	Wyrm                 string   `json:"wyrm"`
	Description          string   `json:"description"`
	RecommendedArtifacts []string `bun:",array" json:"recommendedArtifacts,omitempty"`
}
