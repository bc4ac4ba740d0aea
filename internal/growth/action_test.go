package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		tag     string
		want    Action
		wantErr bool
	}{
		{tag: "water", want: Action{Name: domain.ActionWater}},
		{tag: "water_2", want: Action{Name: domain.ActionWater, Pod: 1}},
		{tag: "harvest_5", want: Action{Name: domain.ActionHarvest, Pod: 4}},
		{tag: "plant_seed_3", want: Action{Name: domain.ActionPlantSeed, Pod: 2}},
		{tag: "cleanup_4", want: Action{Name: domain.ActionCleanup, Pod: 3}},
		{tag: "set_asa_ids", want: Action{Name: domain.ActionSetAssetIDs}},
		{tag: "claim_slot_token", want: Action{Name: domain.ActionClaimSlotToken}},
		{tag: "water_1", wantErr: true},
		{tag: "water_6", wantErr: true},
		{tag: "water_02", wantErr: true},
		{tag: "breed_2", wantErr: true},
		{tag: "mint_seed_2", wantErr: true},
		{tag: "", wantErr: true},
		{tag: "_2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseAction(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAction_Tag(t *testing.T) {
	assert.Equal(t, "water", Action{Name: domain.ActionWater}.Tag())
	assert.Equal(t, "nutrients_3", Action{Name: domain.ActionNutrients, Pod: 2}.Tag())
}

func TestBiomassNote_Rejects(t *testing.T) {
	_, _, err := BiomassNote([]byte("weight:12,seed:4"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, _, err = BiomassNote(pairNote(domain.NoteFieldParent1, 1, domain.NoteFieldParent2, 2))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
