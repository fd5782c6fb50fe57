package model

import (
	"github.com/uptrace/bun"
)

type Resource struct {
	bun.BaseModel `bun:"resources,alias:rc"`

	ResourceID  int    `bun:",pk,autoincrement" json:"-"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
