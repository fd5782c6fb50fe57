package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type Code struct {
	bun.BaseModel `bun:"codes,alias:cd"`

	CodeID  int             `bun:",pk,autoincrement" json:"-"`
	Code    string          `json:"code"`
	Active  bool            `json:"active"`
	Rewards json.RawMessage `json:"rewards,omitempty"`
}
