package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

func TestLoadFile_ShippedRules(t *testing.T) {
	r, err := LoadFile(filepath.Join("..", "..", "configs", "rules.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), r)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, r Ruleset)
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, r Ruleset) {
				assert.Equal(t, Default(), r)
			},
		},
		{
			name: "overrides merge over defaults",
			yaml: "tokenomics: direct\nbreed_cost: 42\n",
			check: func(t *testing.T, r Ruleset) {
				assert.Equal(t, domain.TokenomicsDirect, r.Tokenomics)
				assert.Equal(t, uint64(42), r.BreedCost)
				assert.Equal(t, uint64(DefaultCleanupBurn), r.CleanupBurn)
				assert.False(t, r.BiomassMode())
			},
		},
		{name: "unknown key", yaml: "water_cooldwn: 600\n", wantErr: true},
		{name: "negative amount", yaml: "breed_cost: -1\n", wantErr: true},
		{name: "bad tokenomics", yaml: "tokenomics: burn\n", wantErr: true},
		{name: "too many slots", yaml: "max_pod_slots: 6\n", wantErr: true},
		{name: "default cooldown below min", yaml: "water_cooldown_default: 300\n", wantErr: true},
		{name: "weights out of order", yaml: "min_weight: 3000000\n", wantErr: true},
		{name: "malformed yaml", yaml: "breed_cost: [\n", wantErr: true},
		{name: "terp reward overflows rarity scaling", yaml: "max_terp_reward: 18446744073709551615\n", wantErr: true},
		{
			name: "terp reward at limit",
			yaml: "max_terp_reward: 72057594037927935\n",
			check: func(t *testing.T, r Ruleset) {
				assert.Equal(t, uint64(MaxTerpRewardLimit), r.MaxTerpReward)
				assert.LessOrEqual(t, NewEngine(r).RarityReward([]byte{0}), r.MaxTerpReward)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRuleset)
				return
			}
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, ErrMsgReadRulesFailed)
}
