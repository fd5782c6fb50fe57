package model

import (
	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Team struct {
	bun.BaseModel `bun:"teams,alias:tm"`

	TeamID      int          `bun:",pk,autoincrement" json:"-"`
	Name        string       `json:"name"`
	Author      string       `json:"author"`
	ContentType string       `json:"contentType"`
	Description string       `json:"description"`
	Faction     null.String  `json:"faction,omitempty" swaggertype:"string"`
	Members     TeamMembers  `json:"members"`
	Wyrmspells  *TeamLoadout `json:"wyrmspells"`
}

type TeamMember struct {
	CharacterName string `json:"characterName"`
	// OverdriveOrder is the member's activation slot in the overdrive
	// sequence; invalid means the member holds no overdrive slot.
	OverdriveOrder null.Int `json:"overdriveOrder,omitempty" swaggertype:"integer"`
	Substitutes    []string `json:"substitutes,omitempty"`
	Note           string   `json:"note,omitempty"`
}

type TeamMembers []TeamMember

func (m *TeamMembers) Scan(src any) error {
	return json.Unmarshal(src.([]byte), m)
}

// TeamLoadout is the wyrmspell assignment of the four fixed loadout slots.
// An empty string means the slot is left unassigned.
type TeamLoadout struct {
	Breach      string `json:"breach"`
	Refuge      string `json:"refuge"`
	Wildcry     string `json:"wildcry"`
	DragonsCall string `json:"dragonsCall"`
}

func (l *TeamLoadout) Scan(src any) error {
	return json.Unmarshal(src.([]byte), l)
}

// SlotMap flattens the loadout into a slot-keyed map, preserving unassigned
// slots as empty strings.
func (l *TeamLoadout) SlotMap() map[string]string {
	if l == nil {
		return map[string]string{}
	}
	return map[string]string{
		"breach":       l.Breach,
		"refuge":       l.Refuge,
		"wildcry":      l.Wildcry,
		"dragons_call": l.DragonsCall,
	}
}
