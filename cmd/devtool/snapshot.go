package main

import (
	"context"
	"fmt"
	"time"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/bootstrap"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/config"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/snapshot"
)

type SnapshotCommand struct{}

func (c *SnapshotCommand) Name() string {
	return "snapshot"
}

func (c *SnapshotCommand) Description() string {
	return "Export or import game state (export <file>, import <file>)"
}

func (c *SnapshotCommand) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: snapshot <export|import> <file>")
	}
	subcmd, path := args[0], args[1]

	cfg, err := config.LoadStore()
	if err != nil {
		return err
	}
	if cfg.StoreDriver == config.StoreDriverMemory {
		return fmt.Errorf("snapshots need a persistent store driver")
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch subcmd {
	case "export":
		PrintHeader("Exporting snapshot")
		h, err := snapshot.ExportFile(ctx, store.GrowPod, path, time.Now().UTC())
		if err != nil {
			return err
		}
		PrintSuccess("Wrote %d account(s) to %s", h.Accounts, path)
	case "import":
		PrintHeader("Importing snapshot")
		h, err := snapshot.ImportFile(ctx, store.GrowPod, path)
		if err != nil {
			return err
		}
		PrintSuccess("Restored %d account(s) exported at %s", h.Accounts, h.ExportedAt.Format(time.RFC3339))
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
	return nil
}
