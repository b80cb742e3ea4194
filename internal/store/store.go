// Package store persists game snapshots at orchestrator checkpoints. The
// core never blocks on storage mid-mutation; saves happen only at hole
// start, hole completion and game completion.
package store

import (
	"context"

	"github.com/wedgewood/wolfgoatpig/internal/game"
)

// Store saves and loads game snapshots. The on-disk format is opaque to the
// engine; a loaded snapshot resumes a game at its next hole boundary.
type Store interface {
	Save(ctx context.Context, gameID string, snap game.Snapshot) error
	Load(ctx context.Context, gameID string) (game.Snapshot, error)
}
