package model

import (
	"github.com/uptrace/bun"
)

type Wyrmspell struct {
	bun.BaseModel `bun:"wyrmspells,alias:ws"`

	WyrmspellID int    `bun:",pk,autoincrement" json:"-"`
	Name        string `json:"name"`
	Effect      string `json:"effect"`
	Type        string `json:"type"`
}
