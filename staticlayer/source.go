package staticlayer

import (
	"context"

	"go.viam.com/localplanner/costmap"
)

// SnapshotSource is the external occupancy-map collaborator the static
// layer polls at a fixed rate while waiting for its first snapshot.
type SnapshotSource interface {
	// TryGetSnapshot returns the latest snapshot and true if one is
	// available, or the zero Snapshot and false if none has arrived
	// yet. It must not block.
	TryGetSnapshot(ctx context.Context) (costmap.Snapshot, bool, error)
}
