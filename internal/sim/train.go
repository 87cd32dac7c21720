package sim

import (
	"math"

	"github.com/railgrid/railgrid/internal/core"
)

// TrainState is the per-vehicle simulation state.
type TrainState uint8

const (
	TrainDisabled  TrainState = iota // pool slot unused: not simulated, not rendered
	TrainHidden                      // rendered differently, not advanced
	TrainDriving                     // advancing along the current cell's curve
	TrainBlocked                     // next cell cannot currently be entered
	TrainLoading                     // reserved extension point
	TrainUnloading                   // reserved extension point
	TrainDerailed                    // terminal, non-recoverable
)

// String returns the string representation of a train state.
func (s TrainState) String() string {
	switch s {
	case TrainDisabled:
		return "Disabled"
	case TrainHidden:
		return "Hidden"
	case TrainDriving:
		return "Driving"
	case TrainBlocked:
		return "Blocked"
	case TrainLoading:
		return "Loading"
	case TrainUnloading:
		return "Unloading"
	case TrainDerailed:
		return "Derailed"
	default:
		return "Unknown"
	}
}

// ModelKind selects the visual model of a train. Presentation only.
type ModelKind uint8

const (
	ModelEngine ModelKind = iota
	ModelFreight
	ModelPassenger
)

// Train is a vehicle moving continuously along the rail network, one cell
// at a time. Pos and RotationDeg are derived each frame for rendering.
type Train struct {
	State TrainState
	Model ModelKind

	TilePrev    Coord
	TileCurrent Coord
	TileNext    Coord

	ConnUsed   ConnectionKind
	FromSector Sector
	ToSector   Sector
	Progress   float64 // fraction of the current cell traversed, in [0,1)

	SpeedDrive  float64 // cells per second while driving
	SpeedLoad   float64
	SpeedUnload float64

	Pos         core.Vec2
	RotationDeg float64
}

// headingLookahead is how far ahead on the cell curve the orientation
// sample is taken.
const headingLookahead = 0.1

// updateTrain advances one non-disabled train by one frame.
func (w *World) updateTrain(t *Train) {
	switch t.State {
	case TrainBlocked:
		// Re-check only the cell kind; a rebuilt cell lets the train
		// resume even when its connections changed underneath it.
		if w.Grid.At(t.TileNext).Kind == KindRail {
			t.State = TrainDriving
		}
	case TrainDriving:
		t.Progress += t.SpeedDrive * w.dt
		if t.Progress >= 1.0 {
			w.handOff(t)
		}
		if t.State == TrainDriving {
			w.placeTrain(t, t.Progress)
		}
	default:
		// Hidden, Loading, Unloading, and Derailed trains are not
		// advanced within the simulated scope.
	}
}

// handOff moves a train that finished its cell onto the next one, or
// blocks it at the boundary when the next cell cannot be entered.
func (w *World) handOff(t *Train) {
	required := NextEntrySectorFor(t.ToSector)
	next := w.Grid.At(t.TileNext)

	if next.Kind != KindRail || !w.Grid.HasConnectionForEntry(t.TileNext, required) {
		t.State = TrainBlocked
		t.Progress = 1.0
		w.placeTrain(t, 1.0) // stall visually at the boundary
		w.stats.BlockEvents++
		return
	}

	t.Progress = math.Mod(t.Progress, 1.0)
	t.TilePrev = t.TileCurrent
	t.TileCurrent = t.TileNext

	conn, ok := traversalConnection(next, required)
	if !ok {
		// Malformed connection state: keep the previous routing rather
		// than propagate an invalid sector.
		t.State = TrainBlocked
		t.Progress = 1.0
		w.stats.BlockEvents++
		return
	}

	exit := ExitSectorFor(conn, required)
	t.ConnUsed = conn
	t.FromSector = required
	t.ToSector = exit
	t.TileNext = w.Grid.NeighborOf(t.TileCurrent, exit)
}

// traversalConnection resolves which of a cell's connections a train
// entering through the given sector will use: a lone active connection
// serving the entry wins; on a crossing the straight matching the entry
// axis is taken; otherwise the first connection serving the entry, falling
// back to inactive-but-present options so an unlucky switch position
// degrades gracefully instead of reversing the train.
func traversalConnection(cell *Cell, entry Sector) (ConnectionKind, bool) {
	d, ok := entry.Direction()
	if !ok {
		return 0, false
	}

	active := cell.Active.Kinds()
	if len(active) == 1 && active[0].HasEndpoint(d) {
		return active[0], true
	}
	if len(active) > 1 {
		if d == North || d == South {
			if cell.Active.Has(ConnNS) {
				return ConnNS, true
			}
		} else if cell.Active.Has(ConnEW) {
			return ConnEW, true
		}
		for _, k := range active {
			if k.HasEndpoint(d) {
				return k, true
			}
		}
	}

	// No active connection serves the entry; fall back to any option.
	for _, k := range cell.Options.Kinds() {
		if k.HasEndpoint(d) {
			return k, true
		}
	}
	return 0, false
}

// placeTrain computes the world position and heading for the train at the
// given progress along its current cell: a smooth curve from the entry
// edge through the cell center to the exit edge.
func (w *World) placeTrain(t *Train, progress float64) {
	start := SectorEdge(t.TileCurrent, t.FromSector)
	mid := CellCenter(t.TileCurrent)
	end := SectorEdge(t.TileCurrent, t.ToSector)

	t.Pos = CurveThrough(start, mid, end, progress)

	ahead := CurveThrough(start, mid, end, progress+headingLookahead)
	if delta := ahead.Sub(t.Pos); !delta.IsZero() {
		t.RotationDeg = delta.HeadingDegrees()
	}
}
