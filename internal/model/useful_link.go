package model

import (
	"github.com/uptrace/bun"
)

type UsefulLink struct {
	bun.BaseModel `bun:"useful_links,alias:ul"`

	LinkID      int    `bun:",pk,autoincrement" json:"-"`
	Icon        string `json:"icon,omitempty"`
	Application string `json:"application,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
}
