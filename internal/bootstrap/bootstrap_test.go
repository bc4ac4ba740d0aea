package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/config"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/worker"
)

func TestOpenStore(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		hasSQL bool
	}{
		{"memory", config.StoreDriverMemory, false},
		{"sqlite", config.StoreDriverSQLite, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := &config.Config{
				StoreDriver: tt.driver,
				SQLitePath:  filepath.Join(t.TempDir(), "growpod.db"),
			}

			store, err := OpenStore(ctx, cfg)
			require.NoError(t, err)
			defer store.Close()

			assert.Equal(t, tt.hasSQL, store.SQL != nil)
			require.NoError(t, store.Pool.Ping(ctx))

			_, err = store.GrowPod.GetGlobalConfig(ctx)
			assert.ErrorIs(t, err, domain.ErrGlobalConfigNotFound)

			n, err := store.GrowPod.CountAccounts(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "etcd"})
	assert.ErrorContains(t, err, ErrMsgUnknownStoreDriver)
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	var names []string
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Minute).Format(LogFileTimestampFormat))
		names = append(names, name)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	sort.Strings(left)

	want := append([]string{}, names[12-LogFileRetentionCount:]...)
	want = append(want, "keep.txt")
	sort.Strings(want)
	assert.Equal(t, want, left)
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := &config.Config{
		DeadLetterPath: filepath.Join(t.TempDir(), "nested", "deadletter.jsonl"),
	}

	bus, pub, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, pub)

	assert.DirExists(t, filepath.Dir(cfg.DeadLetterPath))
	require.NoError(t, pub.Shutdown(context.Background()))
}

func TestGracefulShutdown_SkipsNilComponents(t *testing.T) {
	pool := worker.NewPool(context.Background(), 1, 1, time.Second)
	pool.Start()

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{WorkerPool: pool})
	})
}
