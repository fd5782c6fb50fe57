package types

// SummonProjectionRequest asks for the expected yield of plannedActions pulls
// on the Dragon's Call banner, on top of startingCount already-performed ones.
type SummonProjectionRequest struct {
	StartingCount  int `json:"startingCount" validate:"gte=0"`
	PlannedActions int `json:"plannedActions" validate:"gte=0"`
}

// SummonProjectionResult mirrors summon.Projection for the wire.
type SummonProjectionResult struct {
	TotalActions       int                `json:"totalActions"`
	Expected           map[string]float64 `json:"expected"`
	GuaranteedCount    int                `json:"guaranteedCount"`
	MilestoneBonus     int                `json:"milestoneBonus"`
	NextGuaranteedPull int                `json:"nextGuaranteedPull"`
}

// SummonTargetRequest asks for the fewest pulls whose expected yield of one
// resource reaches target.
type SummonTargetRequest struct {
	StartingCount int     `json:"startingCount" validate:"gte=0"`
	Resource      string  `json:"resource" validate:"required,max=64"`
	Target        float64 `json:"target" validate:"gte=0"`
}

// SummonTargetResult reports the search outcome. Reachable is false when no
// pull count within the search cap meets the target; PlannedActions is only
// meaningful when Reachable is true.
type SummonTargetResult struct {
	Reachable      bool    `json:"reachable"`
	PlannedActions int     `json:"plannedActions,omitempty"`
	ExpectedYield  float64 `json:"expectedYield,omitempty"`
}
