// Package snapshot dumps and restores the GrowPod store as zstd-compressed
// JSON lines: a header, the global record, then one account per line.
package snapshot

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

// ErrStoreNotEmpty is returned when importing over a deployed store
var ErrStoreNotEmpty = errors.New(ErrMsgStoreNotEmpty)

// Header is the first line of a snapshot
type Header struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Accounts   int64     `json:"accounts"`
}

// Export writes the whole store to w. Accounts are read page by page outside
// a transaction, so writers should be stopped for a consistent dump.
func Export(ctx context.Context, repo repository.GrowPod, w io.Writer, now time.Time) (*Header, error) {
	global, err := repo.GetGlobalConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}
	count, err := repo.CountAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenCompression, err)
	}
	bw := bufio.NewWriterSize(enc, bufferSize)
	je := json.NewEncoder(bw)

	header := &Header{Version: FormatVersion, ExportedAt: now.UTC(), Accounts: count}
	if err := je.Encode(header); err != nil {
		enc.Close()
		return nil, err
	}
	if err := je.Encode(global); err != nil {
		enc.Close()
		return nil, err
	}

	var written int64
	after := ""
	for {
		page, err := repo.ListAccounts(ctx, after, exportPageSize)
		if err != nil {
			enc.Close()
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for i := range page {
			if err := je.Encode(&page[i]); err != nil {
				enc.Close()
				return nil, err
			}
		}
		written += int64(len(page))
		if len(page) < exportPageSize {
			break
		}
		after = page[len(page)-1].Address
	}
	if written != count {
		enc.Close()
		return nil, fmt.Errorf("%s: header says %d, wrote %d", ErrMsgCountMismatch, count, written)
	}

	if err := bw.Flush(); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgExported, "accounts", written, "version", global.Version)
	return header, nil
}

// Import restores a snapshot into a store that has never been deployed.
// Everything is written in one transaction.
func Import(ctx context.Context, repo repository.GrowPod, r io.Reader) (*Header, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenCompression, err)
	}
	defer dec.Close()

	jd := json.NewDecoder(bufio.NewReaderSize(dec, bufferSize))

	var header Header
	if err := jd.Decode(&header); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadHeader, err)
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("%s: %d", ErrMsgUnsupported, header.Version)
	}

	var global domain.GlobalConfig
	if err := jd.Decode(&global); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadGlobal, err)
	}

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.CreateGlobalConfig(ctx, &global); err != nil {
		if errors.Is(err, domain.ErrGlobalConfigExists) {
			return nil, ErrStoreNotEmpty
		}
		return nil, fmt.Errorf("failed to create global config: %w", err)
	}

	var n int64
	for {
		var a domain.AccountState
		if err := jd.Decode(&a); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s %d: %w", ErrMsgReadAccount, n+1, err)
		}
		if uint64(len(a.Pods)) != a.Progress.PodSlotCount {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgReadAccount, a.Address, domain.ErrInvariantViolation)
		}
		if err := tx.CreateAccount(ctx, &a); err != nil {
			return nil, fmt.Errorf("failed to create account %s: %w", a.Address, err)
		}
		n++
	}
	if n != header.Accounts {
		return nil, fmt.Errorf("%s: header says %d, read %d", ErrMsgCountMismatch, header.Accounts, n)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgImported, "accounts", n, "version", global.Version)
	return &header, nil
}

// ExportFile writes a snapshot to path, creating parent directories
func ExportFile(ctx context.Context, repo repository.GrowPod, path string, now time.Time) (*Header, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	h, err := Export(ctx, repo, f, now)
	if cerr := f.Close(); err == nil && cerr != nil {
		return nil, cerr
	}
	return h, err
}

// ImportFile restores a snapshot from path
func ImportFile(ctx context.Context, repo repository.GrowPod, path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Import(ctx, repo, f)
}
