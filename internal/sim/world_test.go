package sim

import (
	"testing"

	"github.com/railgrid/railgrid/internal/core"
)

func paintFrame(x, z float64) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionPaint)
	in.Pointer = core.Pointer{X: x, Z: z, Valid: true}
	return in
}

func TestPaintGestureThroughStep(t *testing.T) {
	w := NewWorld(16, 4, 60)

	// Drag top-to-bottom through cell (5,5): N, C, S samples.
	w.Step(paintFrame(5.5, 5.1))
	w.Step(paintFrame(5.5, 5.5))
	w.Step(paintFrame(5.5, 5.9))
	// Release: next frame has no paint action.
	w.Step(core.NewInputFrame())

	if !w.Grid.HasConnection(C(5, 5), ConnNS) {
		t.Error("drag through N-C-S should paint the N-S connection")
	}
	if got := w.Status().Painted; got != 1 {
		t.Errorf("Painted = %d, want 1", got)
	}
}

func TestPaintAcrossCellsBakesEachCell(t *testing.T) {
	w := NewWorld(16, 4, 60)

	// Horizontal drag across two cells, sampling three sectors in each.
	for _, x := range []float64{4.1, 4.5, 4.9, 5.1, 5.5, 5.9} {
		w.Step(paintFrame(x, 4.5))
	}
	w.Step(core.NewInputFrame())

	if !w.Grid.HasConnection(C(4, 4), ConnEW) {
		t.Error("first cell should carry E-W")
	}
	if !w.Grid.HasConnection(C(5, 4), ConnEW) {
		t.Error("second cell should carry E-W after release")
	}
	if got := w.Status().Painted; got != 2 {
		t.Errorf("Painted = %d, want 2", got)
	}
}

func TestPointerOutsideGridIsIgnored(t *testing.T) {
	w := NewWorld(8, 4, 60)

	in := core.NewInputFrame()
	in.Set(core.ActionPaint)
	in.Pointer = core.Pointer{X: -1.5, Z: 3.0, Valid: true}
	w.Step(in)
	in.Pointer = core.Pointer{X: 100, Z: 3.0, Valid: true}
	w.Step(in)

	if w.Brush.Len() != 0 {
		t.Error("off-grid pointer samples must not enter the trail")
	}
}

func TestBulldozeVetoedByOccupyingTrain(t *testing.T) {
	w := NewWorld(8, 4, 60)
	w.Grid.AddConnection(C(2, 2), ConnEW)
	w.Grid.AddConnection(C(3, 2), ConnEW)
	w.Grid.AddConnection(C(5, 2), ConnEW)
	w.AddTrain(ModelEngine, C(2, 2), SectorW)

	if w.Bulldoze(C(2, 2)) {
		t.Error("clearing the cell under a driving train must be vetoed")
	}
	// Same row, different column: the veto compares both coordinates.
	if !w.Bulldoze(C(5, 2)) {
		t.Error("a cell sharing only the row with the train must clear")
	}
	cell := w.Grid.At(C(5, 2))
	if cell.Kind != KindEmpty || !cell.Options.IsEmpty() || cell.RotationDeg != 0 {
		t.Error("bulldozed cell should be fully reset")
	}
}

func TestBulldozeOnEmptyCellIsNoOp(t *testing.T) {
	w := NewWorld(8, 4, 60)
	if w.Bulldoze(C(4, 4)) {
		t.Error("bulldozing an empty cell reports nothing done")
	}
}

func TestEditsApplyAfterTrainUpdate(t *testing.T) {
	// An edit made this frame must not affect this frame's train update:
	// trains read pre-edit grid state.
	w := NewWorld(8, 4, 60)
	w.Grid.AddConnection(C(2, 2), ConnEW)
	w.AddTrain(ModelEngine, C(2, 2), SectorW)
	train := &w.Trains[0]

	// Drive until the frame where the hand-off would happen.
	in := core.NewInputFrame()
	for train.Progress+train.SpeedDrive*w.Dt() < 1.0 {
		w.Step(in)
	}

	// This frame both advances the train into the hand-off check and
	// paints the missing next cell. The train must still block, because
	// the paint lands after the trains move.
	w.Step(paintFrame(3.1, 2.5))
	w.Step(paintFrame(3.5, 2.5))
	w.Step(paintFrame(3.9, 2.5))
	w.Step(core.NewInputFrame())

	if train.State != TrainBlocked {
		t.Fatalf("train state = %v, want Blocked before the edit lands", train.State)
	}

	// With (3,2) now rail, the next update resumes driving.
	w.Step(core.NewInputFrame())
	if train.State != TrainDriving {
		t.Errorf("train state = %v, want Driving after the edit", train.State)
	}
}

func TestCycleActiveConnection(t *testing.T) {
	w := NewWorld(8, 4, 60)
	c := C(3, 3)
	w.Grid.AddConnection(c, ConnNS)
	w.Grid.AddConnection(c, ConnNE)
	w.Grid.AddConnection(c, ConnSW)

	// Active starts at N-S; cycling walks the options in kind order.
	next, ok := w.CycleActiveConnection(c)
	if !ok || next != ConnNE {
		t.Fatalf("first cycle = %v/%v, want N-E", next, ok)
	}
	next, _ = w.CycleActiveConnection(c)
	if next != ConnSW {
		t.Fatalf("second cycle = %v, want S-W", next)
	}
	next, _ = w.CycleActiveConnection(c)
	if next != ConnNS {
		t.Fatalf("third cycle = %v, want N-S (wrapped)", next)
	}

	// Crossings and single connections do not cycle.
	cross := C(5, 5)
	w.Grid.AddConnection(cross, ConnNS)
	w.Grid.AddConnection(cross, ConnEW)
	if _, ok := w.CycleActiveConnection(cross); ok {
		t.Error("crossing must not cycle")
	}
	single := C(6, 6)
	w.Grid.AddConnection(single, ConnNS)
	if _, ok := w.CycleActiveConnection(single); ok {
		t.Error("single connection must not cycle")
	}
}

func TestAddTrainRequiresServingConnection(t *testing.T) {
	w := NewWorld(8, 2, 60)
	if w.AddTrain(ModelEngine, C(2, 2), SectorW) {
		t.Error("AddTrain on an empty cell should fail")
	}

	w.Grid.AddConnection(C(2, 2), ConnNS)
	if w.AddTrain(ModelEngine, C(2, 2), SectorW) {
		t.Error("AddTrain with an unserved entry should fail")
	}
	if !w.AddTrain(ModelEngine, C(2, 2), SectorN) {
		t.Error("AddTrain with a served entry should succeed")
	}
}

func TestTrainPoolCapacity(t *testing.T) {
	w := NewWorld(8, 2, 60)
	w.Grid.AddConnection(C(2, 2), ConnEW)

	if !w.AddTrain(ModelEngine, C(2, 2), SectorW) {
		t.Fatal("first train should fit")
	}
	if !w.AddTrain(ModelFreight, C(2, 2), SectorW) {
		t.Fatal("second train should fit")
	}
	if w.AddTrain(ModelEngine, C(2, 2), SectorW) {
		t.Error("pool of two must reject a third train")
	}
}

func TestStatusAndReset(t *testing.T) {
	w := NewWorld(8, 4, 60)
	w.Grid.AddConnection(C(2, 2), ConnEW)
	w.AddTrain(ModelEngine, C(2, 2), SectorW)

	in := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		w.Step(in)
	}

	st := w.Status()
	if st.Tick != 120 {
		t.Errorf("Tick = %d, want 120", st.Tick)
	}
	if st.Trains != 1 {
		t.Errorf("Trains = %d, want 1", st.Trains)
	}
	if st.Blocked != 1 || st.BlockEvents == 0 {
		t.Errorf("expected a blocked train, status %+v", st)
	}

	w.Reset()
	st = w.Status()
	if st.Tick != 0 || st.Trains != 0 || st.BlockEvents != 0 {
		t.Errorf("reset should zero the status, got %+v", st)
	}
	if w.Grid.At(C(2, 2)).Kind != KindEmpty {
		t.Error("reset should clear the grid")
	}
}
