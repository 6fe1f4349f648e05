package staticlayer

import "github.com/pkg/errors"

// ErrNotInitialized is returned when a layer method is called before
// the first snapshot has been accepted.
var ErrNotInitialized = errors.New("static layer: not initialized, no snapshot received yet")

// NewMalformedSnapshotError wraps a shape-validation failure: the
// layer rejects the snapshot and retains its prior state.
func NewMalformedSnapshotError(cause error) error {
	return errors.Wrap(cause, "static layer: malformed snapshot")
}
