package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type Howlkin struct {
	bun.BaseModel `bun:"howlkins,alias:hk"`

	HowlkinID int    `bun:",pk,autoincrement" json:"-"`
	Name      string `json:"name"`
	Quality   string `json:"quality"`

	// BasicStats maps a stat name to its base value.
	BasicStats    json.RawMessage `json:"basicStats,omitempty"`
	PassiveEffect string          `json:"passiveEffect,omitempty"`
}
