// Package staticlayer implements a static costmap layer: it turns
// occupancy snapshots and patches into master-grid cell values under a
// configurable interpretation, and reports a dirty rectangle to the
// layered costmap orchestrator.
//
// The mutable-state locking follows the single Mutex convention used
// throughout go.viam.com/rdk/components/base/wheeled: ingestion
// (OnSnapshot/OnPatch) and stamping (UpdateBounds/UpdateCosts) share one
// lock so a stamp never observes a partially-rewritten private grid.
package staticlayer

import (
	"context"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
)

const pollPeriod = 100 * time.Millisecond // 10 Hz

// Layer is the static costmap layer. It is created once per controller
// boot and initialized by WaitForFirstSnapshot before any other method
// may be called.
type Layer struct {
	cfg    Config
	interp costmap.Interpretation
	logger golog.Logger

	mu          sync.Mutex
	private     *costmap.Grid
	dirty       costmap.DirtyRect
	mapReceived bool
}

// NewLayer constructs a Layer from a validated Config.
func NewLayer(cfg Config, logger golog.Logger) (*Layer, error) {
	if err := cfg.Validate("static_layer"); err != nil {
		return nil, err
	}
	return &Layer{
		cfg:    cfg,
		logger: logger,
		interp: costmap.Interpretation{
			TrackUnknownSpace: cfg.TrackUnknownSpace,
			LethalThreshold:   cfg.LethalThreshold,
			UnknownCostValue:  cfg.UnknownCostValue,
			TrinaryCostmap:    cfg.TrinaryCostmap,
		},
	}, nil
}

// WaitForFirstSnapshot blocks, polling source at 10 Hz, until a
// snapshot is available or ctx is done. This is the only intentionally
// blocking operation in the layer.
func (l *Layer) WaitForFirstSnapshot(ctx context.Context, source SnapshotSource, layered costmap.LayeredCostmap) error {
	for {
		snap, ok, err := source.TryGetSnapshot(ctx)
		if err != nil {
			return err
		}
		if ok {
			return l.OnSnapshot(snap, layered)
		}
		if !utils.SelectContextOrWait(ctx, pollPeriod) {
			return ctx.Err()
		}
	}
}

// OnSnapshot ingests a full-map occupancy replacement. Malformed
// snapshots (shape doesn't match the cell buffer) are rejected and the
// layer's prior state is retained.
func (l *Layer) OnSnapshot(snap costmap.Snapshot, layered costmap.LayeredCostmap) error {
	if err := costmap.ValidateShape(snap.Width, snap.Height, len(snap.Cells)); err != nil {
		return NewMalformedSnapshotError(err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !layered.IsRolling() {
		master := layered.GetCostmap()
		if masterShapeDiffers(master, snap) {
			layered.ResizeMap(snap.Width, snap.Height, snap.ResolutionM, snap.OriginX, snap.OriginY, layered.IsSizeLocked())
		}
	}
	if l.private == nil || localShapeDiffers(l.private, snap) {
		l.private = costmap.NewGrid(snap.Width, snap.Height, snap.ResolutionM, snap.OriginX, snap.OriginY)
	}

	for i, raw := range snap.Cells {
		l.private.Cells[i] = l.interp.Interpret(raw)
	}
	l.dirty = costmap.WholeGrid(l.private)
	l.mapReceived = true
	l.logger.Debugw("static layer accepted snapshot", "width", snap.Width, "height", snap.Height)
	return nil
}

func masterShapeDiffers(master *costmap.Grid, snap costmap.Snapshot) bool {
	return master.SizeX != snap.Width || master.SizeY != snap.Height ||
		master.Resolution != snap.ResolutionM || master.OriginX != snap.OriginX || master.OriginY != snap.OriginY
}

func localShapeDiffers(private *costmap.Grid, snap costmap.Snapshot) bool {
	return private.SizeX != snap.Width || private.SizeY != snap.Height ||
		private.Resolution != snap.ResolutionM || private.OriginX != snap.OriginX || private.OriginY != snap.OriginY
}

// OnPatch ingests a windowed occupancy update. It is a no-op unless the
// layer is configured to subscribe to updates. The dirty rectangle
// becomes the patch rectangle outright, replacing any prior pending
// rectangle rather than growing to cover it.
func (l *Layer) OnPatch(patch costmap.Patch) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cfg.SubscribeToUpdates {
		return nil
	}
	if l.private == nil {
		return ErrNotInitialized
	}
	for row := 0; row < patch.Height; row++ {
		for col := 0; col < patch.Width; col++ {
			v := patch.Cells[row*patch.Width+col]
			l.private.SetCost(patch.OriginCellX+col, patch.OriginCellY+row, v)
		}
	}
	l.dirty = costmap.DirtyRect{X: patch.OriginCellX, Y: patch.OriginCellY, W: patch.Width, H: patch.Height, Valid: true}
	return nil
}

// UpdateBounds expands (minX, minY, maxX, maxY) to include the dirty
// rectangle's world-frame extent. extraBoundsPushed lets a caller force
// the expansion even with no pending dirty cells.
func (l *Layer) UpdateBounds(
	robotPose geom2d.Pose2D, minX, minY, maxX, maxY float64, extraBoundsPushed bool,
) (float64, float64, float64, float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cfg.Enabled || !l.mapReceived || (!l.dirty.Valid && !extraBoundsPushed) {
		return minX, minY, maxX, maxY
	}

	rect := l.dirty
	if !rect.Valid {
		rect = costmap.WholeGrid(l.private)
	}
	dMinX, dMinY, dMaxX, dMaxY := rect.WorldBounds(l.private)
	l.dirty = costmap.DirtyRect{}

	return min(minX, dMinX), min(minY, dMinY), max(maxX, dMaxX), max(maxY, dMaxY)
}

// UpdateCosts stamps the private grid onto master's [minI,maxI) x
// [minJ,maxJ) rectangle: a direct cell-index copy for a world-fixed
// master, or a world-coordinate lookup per master cell for a rolling
// one.
func (l *Layer) UpdateCosts(master *costmap.Grid, layered costmap.LayeredCostmap, minI, minJ, maxI, maxJ int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cfg.Enabled {
		return nil
	}
	if l.private == nil {
		return ErrNotInitialized
	}

	if !layered.IsRolling() {
		return l.stampNonRolling(master, minI, minJ, maxI, maxJ)
	}
	return l.stampRolling(master, minI, minJ, maxI, maxJ)
}

func (l *Layer) stampNonRolling(master *costmap.Grid, minI, minJ, maxI, maxJ int) error {
	for j := minJ; j < maxJ; j++ {
		for i := minI; i < maxI; i++ {
			incoming := l.private.GetCost(i, j)
			if !l.cfg.UseMaximum {
				master.SetCost(i, j, incoming)
				continue
			}
			master.SetCost(i, j, l.mergeMaximum(incoming, master.GetCost(i, j)))
		}
	}
	return nil
}

func (l *Layer) stampRolling(master *costmap.Grid, minI, minJ, maxI, maxJ int) error {
	for j := minJ; j < maxJ; j++ {
		for i := minI; i < maxI; i++ {
			wx, wy := master.MapToWorld(i, j)
			mx, my, ok := l.private.WorldToMap(wx, wy)
			if !ok {
				continue
			}
			incoming := l.private.GetCost(mx, my)
			if incoming == costmap.NoInfo {
				continue
			}
			if !l.cfg.UseMaximum {
				master.SetCost(i, j, incoming)
				continue
			}
			master.SetCost(i, j, l.mergeMaximum(incoming, master.GetCost(i, j)))
		}
	}
	return nil
}

// mergeMaximum resolves an incoming cell against the master's current
// value by taking the more obstructed of the two, with unknown space
// treated as more obstructed than any known-free cell only when the
// layer tracks unknown space.
func (l *Layer) mergeMaximum(incoming, current costmap.CellValue) costmap.CellValue {
	if l.cfg.TrackUnknownSpace {
		if incoming == costmap.Lethal {
			return costmap.Lethal
		}
		return maxCell(incoming, current)
	}
	if current == costmap.NoInfo {
		return incoming
	}
	return maxCell(incoming, current)
}

func maxCell(a, b costmap.CellValue) costmap.CellValue {
	if a > b {
		return a
	}
	return b
}
