package sim

import (
	"testing"

	"github.com/railgrid/railgrid/internal/core"
)

// buildLoop lays a small rectangular loop with corners at (2,2) and (4,4).
func buildLoop(g *Grid) {
	g.AddConnection(C(2, 2), ConnES)
	g.AddConnection(C(3, 2), ConnEW)
	g.AddConnection(C(4, 2), ConnSW)
	g.AddConnection(C(4, 3), ConnNS)
	g.AddConnection(C(4, 4), ConnNW)
	g.AddConnection(C(3, 4), ConnEW)
	g.AddConnection(C(2, 4), ConnNE)
	g.AddConnection(C(2, 3), ConnNS)
}

// stepUntilHandOff steps the world until the train leaves its current
// cell or the step budget runs out.
func stepUntilHandOff(t *testing.T, w *World, train *Train) {
	t.Helper()
	start := train.TileCurrent
	in := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		w.Step(in)
		if train.TileCurrent != start || train.State != TrainDriving {
			return
		}
	}
	t.Fatal("train never finished its cell")
}

func TestTrainFollowsLoop(t *testing.T) {
	w := NewWorld(8, 4, 60)
	buildLoop(w.Grid)

	if !w.AddTrain(ModelEngine, C(3, 2), SectorW) {
		t.Fatal("AddTrain failed on a connected cell")
	}
	train := &w.Trains[0]

	wantPath := []Coord{C(4, 2), C(4, 3), C(4, 4), C(3, 4), C(2, 4), C(2, 3), C(2, 2), C(3, 2)}
	for _, want := range wantPath {
		stepUntilHandOff(t, w, train)
		if train.State != TrainDriving {
			t.Fatalf("train blocked unexpectedly at %v (next %v)", train.TileCurrent, train.TileNext)
		}
		if train.TileCurrent != want {
			t.Fatalf("train at %v, want %v", train.TileCurrent, want)
		}
	}
}

func TestTrainEntrySectorsChainAcrossCells(t *testing.T) {
	w := NewWorld(8, 4, 60)
	buildLoop(w.Grid)
	w.AddTrain(ModelEngine, C(3, 2), SectorW)
	train := &w.Trains[0]

	stepUntilHandOff(t, w, train)
	// Left (3,2) through E, so it enters (4,2) through W.
	if train.FromSector != SectorW {
		t.Errorf("FromSector = %v, want W", train.FromSector)
	}
	// (4,2) carries the S-W curve, so the exit must be S.
	if train.ToSector != SectorS {
		t.Errorf("ToSector = %v, want S", train.ToSector)
	}
	if train.ConnUsed != ConnSW {
		t.Errorf("ConnUsed = %v, want S-W", train.ConnUsed)
	}
}

func TestHandOffDeterminism(t *testing.T) {
	// Two identical worlds stepped identically stay in lockstep.
	run := func() *World {
		w := NewWorld(8, 4, 60)
		buildLoop(w.Grid)
		w.AddTrain(ModelEngine, C(3, 2), SectorW)
		in := core.NewInputFrame()
		for i := 0; i < 500; i++ {
			w.Step(in)
		}
		return w
	}

	w1, w2 := run(), run()
	t1, t2 := w1.Trains[0], w2.Trains[0]
	if t1.TileCurrent != t2.TileCurrent || t1.TileNext != t2.TileNext {
		t.Errorf("tiles diverged: %v/%v vs %v/%v",
			t1.TileCurrent, t1.TileNext, t2.TileCurrent, t2.TileNext)
	}
	if t1.Progress != t2.Progress || t1.ToSector != t2.ToSector {
		t.Errorf("motion diverged: %v/%v vs %v/%v",
			t1.Progress, t1.ToSector, t2.Progress, t2.ToSector)
	}
}

func TestTrainBlocksAtEmptyCell(t *testing.T) {
	w := NewWorld(8, 4, 60)
	// A single straight segment heading east into nothing.
	w.Grid.AddConnection(C(2, 2), ConnEW)
	w.Grid.AddConnection(C(3, 2), ConnEW)
	w.AddTrain(ModelEngine, C(2, 2), SectorW)
	train := &w.Trains[0]

	in := core.NewInputFrame()
	for i := 0; i < 200 && train.TileCurrent == C(2, 2); i++ {
		w.Step(in)
	}
	if train.TileCurrent != C(3, 2) {
		t.Fatalf("train should reach (3,2), at %v", train.TileCurrent)
	}

	// Next cell (4,2) is empty; the train must block without advancing.
	for i := 0; i < 200 && train.State == TrainDriving; i++ {
		w.Step(in)
	}
	if train.State != TrainBlocked {
		t.Fatalf("train state = %v, want Blocked", train.State)
	}
	if train.TileCurrent != C(3, 2) {
		t.Errorf("blocked train moved to %v", train.TileCurrent)
	}

	// The stall position sits at the boundary between the two cells.
	if train.Pos.X != 4.0 {
		t.Errorf("blocked train position X = %v, want 4.0", train.Pos.X)
	}

	// Rebuilding the missing cell lets it resume on the next update.
	w.Grid.AddConnection(C(4, 2), ConnEW)
	w.Step(in)
	if train.State != TrainDriving {
		t.Errorf("train state after rebuild = %v, want Driving", train.State)
	}
}

func TestTrainBlocksWhenEntryNotServed(t *testing.T) {
	w := NewWorld(8, 4, 60)
	w.Grid.AddConnection(C(2, 2), ConnEW)
	// The next cell is rail but only connects N-S; a train arriving from
	// the west finds no connection serving its entry.
	w.Grid.AddConnection(C(3, 2), ConnNS)
	w.AddTrain(ModelEngine, C(2, 2), SectorW)
	train := &w.Trains[0]

	in := core.NewInputFrame()
	for i := 0; i < 200 && train.State == TrainDriving; i++ {
		w.Step(in)
	}
	if train.State != TrainBlocked {
		t.Fatalf("train state = %v, want Blocked", train.State)
	}
	if train.TileCurrent != C(2, 2) {
		t.Errorf("blocked train advanced to %v", train.TileCurrent)
	}
}

func TestCrossingPicksStraightByEntryAxis(t *testing.T) {
	w := NewWorld(8, 4, 60)
	w.Grid.AddConnection(C(3, 2), ConnEW)
	cross := C(4, 2)
	w.Grid.AddConnection(cross, ConnNS)
	w.Grid.AddConnection(cross, ConnEW)
	w.Grid.AddConnection(C(5, 2), ConnEW)

	w.AddTrain(ModelEngine, C(3, 2), SectorW)
	train := &w.Trains[0]

	stepUntilHandOff(t, w, train)
	if train.TileCurrent != cross {
		t.Fatalf("train at %v, want the crossing", train.TileCurrent)
	}
	if train.ConnUsed != ConnEW {
		t.Errorf("entering from W must traverse E-W, got %v", train.ConnUsed)
	}
	if train.ToSector != SectorE {
		t.Errorf("ToSector = %v, want E", train.ToSector)
	}
}

func TestSwitchRoutesActiveConnection(t *testing.T) {
	w := NewWorld(8, 4, 60)
	w.Grid.AddConnection(C(3, 2), ConnEW)
	sw := C(4, 2)
	w.Grid.AddConnection(sw, ConnEW) // added first: active
	w.Grid.AddConnection(sw, ConnSW) // switch branch, inactive

	w.AddTrain(ModelEngine, C(3, 2), SectorW)
	train := &w.Trains[0]
	stepUntilHandOff(t, w, train)
	if train.ConnUsed != ConnEW {
		t.Fatalf("default active route should be E-W, got %v", train.ConnUsed)
	}

	// Toggle the switch and run a second train through.
	w.Grid.SetActiveConnection(sw, ConnSW)
	w.AddTrain(ModelEngine, C(3, 2), SectorW)
	second := &w.Trains[1]
	stepUntilHandOff(t, w, second)
	if second.ConnUsed != ConnSW {
		t.Errorf("after toggle the route should be S-W, got %v", second.ConnUsed)
	}
	if second.ToSector != SectorS {
		t.Errorf("ToSector = %v, want S", second.ToSector)
	}
}

func TestHandOffThroughInactiveOption(t *testing.T) {
	w := NewWorld(8, 4, 60)
	w.Grid.AddConnection(C(2, 2), ConnEW)
	sw := C(3, 2)
	w.Grid.AddConnection(sw, ConnNS) // added first: active
	w.Grid.AddConnection(sw, ConnSW) // inactive, but the only option touching W

	if !w.AddTrain(ModelEngine, C(2, 2), SectorW) {
		t.Fatal("AddTrain failed on a connected cell")
	}
	train := &w.Trains[0]
	stepUntilHandOff(t, w, train)

	if train.State != TrainDriving {
		t.Fatalf("train state = %v, want Driving", train.State)
	}
	if train.TileCurrent != sw {
		t.Fatalf("train at %v, want the switch cell", train.TileCurrent)
	}
	// The active N-S has no west endpoint; routing must fall back to the
	// present S-W option rather than send the train backwards through N-S.
	if train.ConnUsed != ConnSW {
		t.Errorf("ConnUsed = %v, want S-W", train.ConnUsed)
	}
	if train.FromSector != SectorW || train.ToSector != SectorS {
		t.Errorf("sectors = %v -> %v, want W -> S", train.FromSector, train.ToSector)
	}
	if train.TileNext != C(3, 3) {
		t.Errorf("TileNext = %v, want (3,3)", train.TileNext)
	}
}

func TestTrainPositionStaysOnCurve(t *testing.T) {
	w := NewWorld(8, 4, 60)
	buildLoop(w.Grid)
	w.AddTrain(ModelEngine, C(3, 2), SectorW)
	train := &w.Trains[0]

	in := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		w.Step(in)
		if train.State != TrainDriving {
			t.Fatalf("train blocked at step %d", i)
		}
		// The loop spans cells (2,2)..(4,4); positions must stay inside.
		if train.Pos.X < 2.0 || train.Pos.X > 5.0 || train.Pos.Z < 2.0 || train.Pos.Z > 5.0 {
			t.Fatalf("position %+v escaped the loop extent", train.Pos)
		}
	}
}
