package growpod

import (
	"context"
	"errors"
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/metrics"
)

// StatsJob refreshes the state gauges from the store
type StatsJob struct {
	service Service
}

// NewStatsJob creates a gauge refresh job
func NewStatsJob(service Service) *StatsJob {
	return &StatsJob{service: service}
}

// Name identifies the job in logs
func (j *StatsJob) Name() string {
	return "growpod_stats"
}

// Process reads the account count and the global record into the gauges
func (j *StatsJob) Process(ctx context.Context) error {
	n, err := j.service.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	metrics.Accounts.Set(float64(n))

	g, err := j.service.GetGlobal(ctx)
	if errors.Is(err, domain.ErrGlobalConfigNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get global config: %w", err)
	}
	metrics.RecordGlobal(g)
	return nil
}
