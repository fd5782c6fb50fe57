package model

import (
	"github.com/uptrace/bun"
)

type StatusEffect struct {
	bun.BaseModel `bun:"status_effects,alias:se"`

	StatusEffectID int    `bun:",pk,autoincrement" json:"-"`
	Icon           string `json:"icon,omitempty"`
	Name           string `json:"name"`
	State          string `json:"state"`
	Effect         string `json:"effect"`
	Remark         string `json:"remark,omitempty"`
}
