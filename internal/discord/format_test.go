package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "999", formatAmount(999))
	assert.Equal(t, "1,000,000", formatAmount(1_000_000))
}

func TestFormatStage(t *testing.T) {
	tests := []struct {
		stage domain.Stage
		want  string
	}{
		{domain.StageEmpty, "🪴 Empty"},
		{domain.StageGrowing1, "🌱 Seedling"},
		{domain.StageReadyToHarvest, "✨ Ready To Harvest"},
		{domain.StageAwaitingCleanup, "🧹 Awaiting Cleanup"},
		{domain.Stage(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatStage(tt.stage))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "never", formatTimestamp(0))
	assert.Equal(t, "<t:1700000000:R>", formatTimestamp(1_700_000_000))
}

func TestPodFields(t *testing.T) {
	a := &domain.AccountState{
		Address: "ADDR",
		Pods: []domain.PodState{
			{Stage: domain.StageGrowing3, WaterCount: 4, LastWatered: 100, NutrientCount: 1200},
			{},
		},
		Progress: domain.AccountProgress{PodSlotCount: 2},
	}

	fields := podFields(a)
	require.Len(t, fields, 2)
	assert.Equal(t, "Pod 1", fields[0].Name)
	assert.Contains(t, fields[0].Value, "🌾 Budding")
	assert.Contains(t, fields[0].Value, "💧 4 (last <t:100:R>)")
	assert.Contains(t, fields[0].Value, "🧪 1,200 (last never)")
	assert.Equal(t, "🪴 Empty", fields[1].Value)
}

func TestSummarizeEvents(t *testing.T) {
	assert.Equal(t, "Done.", summarizeEvents(nil))
	assert.Equal(t, "• Watered\n• Stage Advanced", summarizeEvents([]domain.ActionEvent{
		{Type: domain.EventTypePodWatered},
		{Type: domain.EventTypeStageAdvanced},
	}))
}

func TestGlobalEmbed(t *testing.T) {
	e := globalEmbed(&domain.GlobalConfig{SeedCounter: 12_345, Version: 9})
	require.NotEmpty(t, e.Fields)
	assert.Equal(t, "12,345", e.Fields[0].Value)
	assert.Equal(t, FooterGrowPod, e.Footer.Text)
}
