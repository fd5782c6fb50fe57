package types

// SynergyRequest evaluates a fielded team against the composition heuristics.
// Characters are referenced by name and resolved against the character
// dataset; overdriveCount is reported back verbatim even when it exceeds the
// roster size.
type SynergyRequest struct {
	CharacterNames []string          `json:"characterNames" validate:"max=5,dive,required,max=64" example:"Kaldor,Vesryn"`
	Faction        string            `json:"faction,omitempty" validate:"omitempty,faction"`
	ContentType    string            `json:"contentType" validate:"required,contenttype"`
	OverdriveCount int               `json:"overdriveCount" validate:"gte=0"`
	TeamWyrmspells map[string]string `json:"teamWyrmspells" validate:"omitempty,dive,keys,wyrmslot,endkeys,max=64"`
}
