// Package store persists the financial snapshot between runs.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rpgo/runway-calculator/internal/config"
	"github.com/rpgo/runway-calculator/internal/domain"
)

// SnapshotKey is the single key the snapshot record is stored under
const SnapshotKey = "financial_snapshot"

// ErrUnknownBackend is returned by Open for an unrecognized storage backend
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a key-value persistence backend for the snapshot
type Store interface {
	// Save replaces the stored snapshot
	Save(ctx context.Context, s domain.Snapshot) error
	// Load returns the stored snapshot, or nil when nothing has been saved
	Load(ctx context.Context) (*domain.Snapshot, error)
	// Clear removes the stored snapshot; clearing an empty store is not an error
	Clear(ctx context.Context) error
	Close() error
}

// Open selects and opens the configured backend
func Open(ctx context.Context, cfg config.StorageSettings) (Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case config.BackendSQLite, "":
		return OpenSQLite(ctx, cfg.Path)
	case config.BackendFile:
		return OpenFile(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func encodeSnapshot(s domain.Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot decodes a stored record over the defaults so fields added after the
// record was written take their default values.
func decodeSnapshot(data []byte) (*domain.Snapshot, error) {
	s := domain.DefaultSnapshot()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}
