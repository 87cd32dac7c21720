package sim

import (
	"math"

	"github.com/railgrid/railgrid/internal/core"
)

// Speeds carries the per-state train speeds in cells per second.
type Speeds struct {
	Drive  float64
	Load   float64
	Unload float64
}

// DefaultSpeeds returns the stock speed set.
func DefaultSpeeds() Speeds {
	return Speeds{Drive: 1.6, Load: 0.4, Unload: 0.4}
}

// World owns one complete simulation session: the grid, the train pool,
// and the transient brush trail. Multiple independent worlds can coexist;
// nothing is shared. All updates happen synchronously inside Step, so the
// world needs no locking.
type World struct {
	Grid   *Grid
	Trains []Train
	Brush  *BrushTrail

	dt     float64
	speeds Speeds
	tick   uint64
	stats  core.SimStatus
}

// NewWorld creates a world with an empty grid of the given side length,
// a train pool of the given capacity (all slots disabled), and a frame
// duration derived from the tick rate.
func NewWorld(side, capacity, tickRate int) *World {
	if capacity < 1 {
		capacity = 1
	}
	if tickRate < 1 {
		tickRate = 60
	}
	return &World{
		Grid:   NewGrid(side),
		Trains: make([]Train, capacity),
		Brush:  NewBrushTrail(side * side),
		dt:     1.0 / float64(tickRate),
		speeds: DefaultSpeeds(),
	}
}

// SetSpeeds overrides the speeds applied to trains added after the call.
func (w *World) SetSpeeds(s Speeds) {
	if s.Drive > 0 {
		w.speeds = s
	}
}

// Dt returns the fixed frame duration in seconds.
func (w *World) Dt() float64 {
	return w.dt
}

// Tick returns the number of frames simulated since the last reset.
func (w *World) Tick() uint64 {
	return w.tick
}

// Status summarizes the world for the HUD and session persistence.
func (w *World) Status() core.SimStatus {
	st := w.stats
	st.Tick = w.tick
	for i := range w.Trains {
		switch w.Trains[i].State {
		case TrainDisabled:
		case TrainBlocked:
			st.Trains++
			st.Blocked++
		default:
			st.Trains++
		}
	}
	return st
}

// Reset clears the grid, disables every train, and drops editing state.
// Scenario setup runs against the freshly reset world.
func (w *World) Reset() {
	w.Grid = NewGrid(w.Grid.Side)
	for i := range w.Trains {
		w.Trains[i] = Train{}
	}
	w.Brush = NewBrushTrail(w.Grid.Side * w.Grid.Side)
	w.tick = 0
	w.stats = core.SimStatus{}
}

// AddTrain places a driving train at the given cell, entering through the
// given edge sector. It resolves the initial connection, exit sector, and
// next tile from the grid, and returns false when the pool is full or the
// cell cannot route the entry.
func (w *World) AddTrain(model ModelKind, at Coord, entry Sector) bool {
	at = w.Grid.Clamp(at)
	cell := w.Grid.At(at)
	conn, ok := traversalConnection(cell, entry)
	if !ok {
		return false
	}

	slot := -1
	for i := range w.Trains {
		if w.Trains[i].State == TrainDisabled {
			slot = i
			break
		}
	}
	if slot < 0 {
		return false
	}

	exit := ExitSectorFor(conn, entry)
	t := Train{
		State:       TrainDriving,
		Model:       model,
		TilePrev:    at,
		TileCurrent: at,
		TileNext:    w.Grid.NeighborOf(at, exit),
		ConnUsed:    conn,
		FromSector:  entry,
		ToSector:    exit,
		SpeedDrive:  w.speeds.Drive,
		SpeedLoad:   w.speeds.Load,
		SpeedUnload: w.speeds.Unload,
	}
	w.placeTrain(&t, 0)
	w.Trains[slot] = t
	return true
}

// Step advances the simulation by one frame. Order is fixed for
// deterministic replay: trains move against the pre-edit grid first, then
// edits from this frame's input mutate the grid, becoming visible to
// trains on the next frame.
func (w *World) Step(in core.InputFrame) {
	for i := range w.Trains {
		if w.Trains[i].State != TrainDisabled {
			w.updateTrain(&w.Trains[i])
		}
	}

	w.applyEdits(in)
	w.tick++
}

// applyEdits consumes this frame's editing input.
func (w *World) applyEdits(in core.InputFrame) {
	cell, sector, onGrid := w.locate(in.Pointer)

	if in.Has(core.ActionPaint) && onGrid {
		if w.Brush.Observe(w.Grid, cell, sector) {
			w.stats.Painted++
		}
		return
	}

	// Paint not held: the gesture (if any) has ended.
	if w.Brush.Len() > 0 {
		if w.Brush.Flush(w.Grid) {
			w.stats.Painted++
		}
	}

	if !onGrid {
		return
	}
	if in.Has(core.ActionBulldoze) {
		if w.Bulldoze(cell) {
			w.stats.Bulldozed++
		}
	}
	if in.Has(core.ActionToggleSwitch) {
		w.CycleActiveConnection(cell)
	}
}

// locate resolves a pointer sample to a cell and sector.
func (w *World) locate(p core.Pointer) (Coord, Sector, bool) {
	if !p.Valid {
		return Coord{}, SectorNone, false
	}
	x := math.Floor(p.X)
	z := math.Floor(p.Z)
	c := Coord{X: int(x), Z: int(z)}
	if !w.Grid.InBounds(c) {
		return Coord{}, SectorNone, false
	}
	return c, SectorFromLocal(p.X-x, p.Z-z), true
}

// Bulldoze resets a rail cell to empty with no connections and zero
// rotation. The clear is vetoed when any driving train currently occupies
// that exact cell, comparing both coordinates.
func (w *World) Bulldoze(c Coord) bool {
	c = w.Grid.Clamp(c)
	cell := w.Grid.At(c)
	if cell.Kind != KindRail {
		return false
	}
	for i := range w.Trains {
		t := &w.Trains[i]
		if t.State == TrainDriving && t.TileCurrent == c {
			return false
		}
	}
	*cell = Cell{}
	return true
}

// CycleActiveConnection advances a switch cell to its next connection in
// kind order. Cells with fewer than two options, and crossings, are left
// alone. Returns the newly active kind and whether anything changed.
func (w *World) CycleActiveConnection(c Coord) (ConnectionKind, bool) {
	cell := w.Grid.At(c)
	if cell.Options.Count() < 2 || cell.Options == crossingSet {
		return 0, false
	}

	kinds := cell.Options.Kinds()
	current := -1
	for i, k := range kinds {
		if cell.Active.Has(k) {
			current = i
			break
		}
	}
	next := kinds[(current+1)%len(kinds)]
	w.Grid.SetActiveConnection(c, next)
	return next, true
}
