package growpod_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growpod"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/metrics"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/mocks"
)

func TestStatsJob_Process(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *mocks.MockGrowPodService)
		wantErr bool
	}{
		{
			name: "records gauges",
			setup: func(m *mocks.MockGrowPodService) {
				m.On("CountAccounts", mock.Anything).Return(int64(12), nil).Once()
				m.On("GetGlobal", mock.Anything).Return(&domain.GlobalConfig{Version: 5, TotalBiomass: 77}, nil).Once()
			},
		},
		{
			name: "not deployed yet",
			setup: func(m *mocks.MockGrowPodService) {
				m.On("CountAccounts", mock.Anything).Return(int64(0), nil).Once()
				m.On("GetGlobal", mock.Anything).Return(nil, domain.ErrGlobalConfigNotFound).Once()
			},
		},
		{
			name: "count fails",
			setup: func(m *mocks.MockGrowPodService) {
				m.On("CountAccounts", mock.Anything).Return(int64(0), errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockGrowPodService(t)
			tt.setup(svc)

			err := growpod.NewStatsJob(svc).Process(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStatsJob_SetsGauges(t *testing.T) {
	svc := mocks.NewMockGrowPodService(t)
	svc.On("CountAccounts", mock.Anything).Return(int64(3), nil).Once()
	svc.On("GetGlobal", mock.Anything).Return(&domain.GlobalConfig{Version: 9, CureVaultBal: 4}, nil).Once()

	assert.NoError(t, growpod.NewStatsJob(svc).Process(context.Background()))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.Accounts))
	assert.Equal(t, float64(9), testutil.ToFloat64(metrics.GlobalVersion))
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.CureVault))
}
