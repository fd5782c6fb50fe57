package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type TierList struct {
	bun.BaseModel `bun:"tier_lists,alias:tl"`

	TierListID  int         `bun:",pk,autoincrement" json:"-"`
	Name        string      `json:"name"`
	Author      string      `json:"author"`
	ContentType string      `json:"contentType"`
	Description string      `json:"description"`
	Entries     TierEntries `json:"entries"`
}

type TierEntry struct {
	CharacterName string `json:"characterName"`
	Tier          string `json:"tier"`
	Note          string `json:"note,omitempty"`
}

type TierEntries []TierEntry

func (e *TierEntries) Scan(src any) error {
	return json.Unmarshal(src.([]byte), e)
}
