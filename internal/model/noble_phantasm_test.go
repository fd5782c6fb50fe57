package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoblePhantasmEffectsScan(t *testing.T) {
	src := []byte(`[
		{"tier": "A", "tierLevel": 2, "description": "Boosts alliance attack."},
		{"description": "Unlocks the hidden skill."}
	]`)

	var effects NoblePhantasmEffects
	require.NoError(t, effects.Scan(src))
	require.Len(t, effects, 2)

	assert.Equal(t, "A", effects[0].Tier.String)
	assert.EqualValues(t, 2, effects[0].TierLevel.Int64)

	// optional tier fields stay invalid when the source omits them
	assert.False(t, effects[1].Tier.Valid)
	assert.False(t, effects[1].TierLevel.Valid)
	assert.Equal(t, "Unlocks the hidden skill.", effects[1].Description)
}

func TestNoblePhantasmSkillsScan(t *testing.T) {
	src := []byte(`[{"level": 3, "description": "Pierces Refuge wards."}]`)

	var skills NoblePhantasmSkills
	require.NoError(t, skills.Scan(src))
	require.Len(t, skills, 1)
	assert.Equal(t, 3, skills[0].Level)
	assert.False(t, skills[0].Tier.Valid)
}

func TestGoldenAllianceEffectsScan(t *testing.T) {
	src := []byte(`[
		{"level": 1, "stats": ["ATK +5%"]},
		{"level": 2, "stats": ["ATK +5%", "HP +8%"]}
	]`)

	var effects GoldenAllianceEffects
	require.NoError(t, effects.Scan(src))
	require.Len(t, effects, 2)
	assert.Equal(t, []string{"ATK +5%", "HP +8%"}, effects[1].Stats)
}
