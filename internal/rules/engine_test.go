package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

func TestEngine_Weight(t *testing.T) {
	e := NewEngine(Default())

	tests := []struct {
		name      string
		water     uint64
		nutrients uint64
		want      uint64
	}{
		{"no care", 0, 0, 2_000_000},
		{"water at threshold earns nothing", 10, 0, 2_000_000},
		{"water bonus", 12, 0, 2_080_000},
		{"nutrient bonus", 0, 10, 2_600_000},
		{"both bonuses add", 12, 10, 2_680_000},
		{"clamped to max", 10, 30, 3_500_000},
		{"overflowing nutrients saturate", 0, math.MaxUint64, 3_500_000},
		{"overflowing water saturates", math.MaxUint64, 0, 3_500_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Weight(tt.water, tt.nutrients))
		})
	}
}

func TestEngine_Weight_TruncatesOnce(t *testing.T) {
	r := Default()
	r.BaseWeight = 1_999_999
	e := NewEngine(r)

	tests := []struct {
		name      string
		water     uint64
		nutrients uint64
		want      uint64
	}{
		// 2% + 3% of 1,999,999 is 99,999.95, not 39,999 + 59,999
		{"water and nutrient percentages summed", 11, 1, 2_099_998},
		{"water only", 11, 0, 1_999_999 + 39_999},
		{"nutrients only", 0, 1, 1_999_999 + 59_999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Weight(tt.water, tt.nutrients))
		})
	}
}

func TestEngine_Weight_ClampsToMin(t *testing.T) {
	r := Default()
	r.BaseWeight = 100
	r.MinWeight = 100
	e := NewEngine(r)

	assert.Equal(t, uint64(100), e.Weight(0, 0))
}

func TestEngine_RarityReward(t *testing.T) {
	e := NewEngine(Default())

	assert.Zero(t, e.RarityReward(nil))

	var rare, common []byte
	for i := uint64(0); rare == nil || common == nil; i++ {
		p := domain.Itob(i)
		if ProfileHash(p)[0] < DefaultRarityThreshold {
			if rare == nil {
				rare = p
			}
		} else if common == nil {
			common = p
		}
	}

	assert.Zero(t, e.RarityReward(common))

	b := uint64(ProfileHash(rare)[0])
	want := uint64(DefaultMinTerpReward) + (DefaultRarityThreshold-b)*(DefaultMaxTerpReward-DefaultMinTerpReward)/DefaultRarityThreshold
	got := e.RarityReward(rare)
	assert.Equal(t, want, got)
	assert.GreaterOrEqual(t, got, uint64(DefaultMinTerpReward))
	assert.LessOrEqual(t, got, uint64(DefaultMaxTerpReward))
}

func TestEngine_RarityReward_TopByteZeroPaysMax(t *testing.T) {
	e := NewEngine(Default())

	for i := uint64(0); i < 100_000; i++ {
		p := domain.Itob(i)
		if ProfileHash(p)[0] == 0 {
			assert.Equal(t, uint64(DefaultMaxTerpReward), e.RarityReward(p))
			return
		}
	}
	t.Fatal("no profile with a zero leading digest byte found")
}

func TestGeneticHash(t *testing.T) {
	a := GeneticHash("ADDR", TagDNA, 1000, 7)
	require.Len(t, a, 32)

	assert.Equal(t, a, GeneticHash("ADDR", TagDNA, 1000, 7), "same inputs, same profile")
	assert.NotEqual(t, a, GeneticHash("ADDR", TagTerp, 1000, 7))
	assert.NotEqual(t, a, GeneticHash("ADDR", TagDNA, 1001, 7))
	assert.NotEqual(t, a, GeneticHash("ADDR", TagDNA, 1000, 8))
	assert.NotEqual(t, a, GeneticHash("OTHER", TagDNA, 1000, 7))
}
