package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type Artifact struct {
	bun.BaseModel `bun:"artifacts,alias:ar"`

	ArtifactID int             `bun:",pk,autoincrement" json:"-"`
	Name       string          `json:"name"`
	IsGlobal   bool            `json:"isGlobal"`
	Lore       string          `json:"lore,omitempty"`
	Quality    string          `json:"quality"`
	Effects    ArtifactEffects `json:"effects"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Treasures  json.RawMessage `json:"treasures,omitempty"`
}

type ArtifactEffect struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
}

type ArtifactEffects []ArtifactEffect

func (e *ArtifactEffects) Scan(src any) error {
	return json.Unmarshal(src.([]byte), e)
}
