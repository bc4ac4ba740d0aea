package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodKey(t *testing.T) {
	assert.Equal(t, "stage", PodKey(KeyStage, 0))
	assert.Equal(t, "stage_2", PodKey(KeyStage, 1))
	assert.Equal(t, "water_count_5", PodKey(KeyWaterCount, 4))
}

func TestGlobalConfig_StateLayout(t *testing.T) {
	g := GlobalConfig{
		Owner:        "OWNER",
		Period:       864000,
		CleanupCost:  500_000_000,
		BreedCost:    1_000_000_000,
		BudAssetID:   11,
		TotalBiomass: 2_680_000,
	}

	l := g.StateLayout()

	want := []string{
		"owner", "period", "cleanup_cost", "breed_cost", "bud_asset", "terp_asset",
		"slot_asset", "seed_counter", "biomass_counter", "total_biomass",
		"cure_vault_bal", "terp_registry",
	}
	assert.Len(t, l, len(want))
	for _, k := range want {
		assert.Contains(t, l, k)
	}
	assert.Equal(t, []byte("OWNER"), l[KeyOwner].Bytes)
	assert.Equal(t, uint64(11), l[KeyBudAsset].Uint)
	assert.Equal(t, uint64(2_680_000), l[KeyTotalBiomass].Uint)
}

func TestAccountState_StateLayout(t *testing.T) {
	a := &AccountState{
		Address: "ADDR",
		Pods: []PodState{
			{Stage: StageGrowing2, WaterCount: 3, LastWatered: 1800, PlantedAssetID: 42},
			{Stage: StageReadyToHarvest, WaterCount: 10, DNA: []byte{1, 2}},
		},
		Progress: AccountProgress{HarvestCount: 4, PodSlotCount: 2},
	}

	l := a.StateLayout()

	assert.Equal(t, uint64(2), l["stage"].Uint)
	assert.Equal(t, uint64(42), l["planted_seed"].Uint)
	assert.Equal(t, uint64(5), l["stage_2"].Uint)
	assert.Equal(t, uint64(10), l["water_count_2"].Uint)
	assert.Equal(t, []byte{1, 2}, l["dna_2"].Bytes)
	assert.Equal(t, uint64(4), l["harvest_count"].Uint)
	assert.Equal(t, uint64(2), l["pod_slots"].Uint)
	assert.NotContains(t, l, "stage_3")

	keys := l.Keys()
	assert.Equal(t, "terp_profile_2", keys[len(keys)-2])
	assert.Equal(t, "water_count_2", keys[len(keys)-1])

	parsed, err := ParseAccountLayout("ADDR", l)
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

func TestParseAccountLayout_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"missing slots", Layout{KeyHarvestCount: UintValue(1)}},
		{"zero slots", Layout{KeyPodSlots: UintValue(0)}},
		{"too many slots", Layout{KeyPodSlots: UintValue(PodSlotLimit + 1)}},
		{"bad stage", Layout{KeyPodSlots: UintValue(1), KeyStage: UintValue(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccountLayout("ADDR", tt.layout)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestAccountState_CloneIsDeep(t *testing.T) {
	a := &AccountState{
		Pods:     []PodState{{Stage: StageGrowing1, DNA: []byte{9}}},
		Progress: AccountProgress{PodSlotCount: 1},
	}

	c := a.Clone()
	c.Pods[0].Stage = StageGrowing4
	c.Pods[0].DNA[0] = 0

	assert.Equal(t, StageGrowing1, a.Pods[0].Stage)
	assert.Equal(t, byte(9), a.Pods[0].DNA[0])
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrCooldownActive))
	assert.True(t, IsRejection(ErrUnauthorized))
	assert.False(t, IsRejection(ErrInvariantViolation))
	assert.False(t, IsRejection(nil))
	assert.False(t, IsRejection(assert.AnError))
}
