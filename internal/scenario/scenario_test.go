package scenario

import (
	"math/rand"
	"testing"

	"github.com/railgrid/railgrid/internal/core"
	"github.com/railgrid/railgrid/internal/sim"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"empty", "loop", "crossing", "junction", "yard"} {
		if !Exists(name) {
			t.Errorf("scenario %q not registered", name)
		}
	}
	infos := List()
	if len(infos) < 5 {
		t.Errorf("List() returned %d scenarios, want at least 5", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name > infos[i].Name {
			t.Error("List() should be sorted by name")
		}
	}
}

func TestBuildUnknownScenario(t *testing.T) {
	w := sim.NewWorld(16, 4, 60)
	if err := Build("no-such-layout", w, nil); err == nil {
		t.Error("unknown scenario should return an error")
	}
}

func TestLoopRunsWithoutBlocking(t *testing.T) {
	w := sim.NewWorld(16, 4, 60)
	if err := Build("loop", w, nil); err != nil {
		t.Fatalf("Build(loop) failed: %v", err)
	}

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		w.Step(in)
	}
	st := w.Status()
	if st.Trains != 2 {
		t.Errorf("loop should carry 2 trains, got %d", st.Trains)
	}
	if st.Blocked != 0 || st.BlockEvents != 0 {
		t.Errorf("closed loop should never block, status %+v", st)
	}
}

func TestCrossingTrainsTraverse(t *testing.T) {
	w := sim.NewWorld(16, 4, 60)
	if err := Build("crossing", w, nil); err != nil {
		t.Fatalf("Build(crossing) failed: %v", err)
	}

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		w.Step(in)
	}

	// Both trains eventually reach the far ends of their open lines and
	// block there; neither may block at the crossing itself.
	mid := w.Grid.Side / 2
	for i := range w.Trains {
		tr := &w.Trains[i]
		if tr.State == sim.TrainDisabled {
			continue
		}
		if tr.TileCurrent == sim.C(mid, mid) && tr.State == sim.TrainBlocked {
			t.Errorf("train %d blocked on the crossing cell", i)
		}
	}
}

func TestJunctionSwitchRedirects(t *testing.T) {
	w := sim.NewWorld(16, 4, 60)
	if err := Build("junction", w, nil); err != nil {
		t.Fatalf("Build(junction) failed: %v", err)
	}
	mid := w.Grid.Side / 2

	// Default route is the straight; toggling sends traffic down the branch.
	if next, ok := w.CycleActiveConnection(sim.C(mid, mid)); !ok || next != sim.ConnSW {
		t.Fatalf("junction toggle = %v/%v, want S-W", next, ok)
	}

	in := core.NewInputFrame()
	train := &w.Trains[0]
	for i := 0; i < 2000 && train.TileCurrent != sim.C(mid, mid); i++ {
		w.Step(in)
	}
	if train.TileCurrent != sim.C(mid, mid) {
		t.Fatal("train never reached the junction")
	}
	if train.ConnUsed != sim.ConnSW {
		t.Errorf("train should take the branch, used %v", train.ConnUsed)
	}
}

func TestYardIsSeedDeterministic(t *testing.T) {
	build := func(seed int64) *sim.World {
		w := sim.NewWorld(16, 4, 60)
		if err := Build("yard", w, rand.New(rand.NewSource(seed))); err != nil {
			t.Fatalf("Build(yard) failed: %v", err)
		}
		return w
	}

	w1, w2 := build(42), build(42)
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			c := sim.C(x, z)
			if *w1.Grid.At(c) != *w2.Grid.At(c) {
				t.Fatalf("yard layouts diverged at %v", c)
			}
		}
	}
}
