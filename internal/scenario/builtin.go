package scenario

import (
	"math/rand"

	"github.com/railgrid/railgrid/internal/sim"
)

func init() {
	Register("empty", "Empty Grid", buildEmpty)
	Register("loop", "Closed Loop", buildLoop)
	Register("crossing", "Level Crossing", buildCrossing)
	Register("junction", "Junction Switch", buildJunction)
	Register("yard", "Scattered Yard", buildYard)
}

func buildEmpty(w *sim.World, _ *rand.Rand) {}

// buildLoop lays a rectangular loop roughly centered on the grid with two
// trains chasing each other.
func buildLoop(w *sim.World, _ *rand.Rand) {
	side := w.Grid.Side
	left, top := side/4, side/4
	right, bottom := side-side/4-1, side-side/4-1

	for x := left + 1; x < right; x++ {
		w.Grid.AddConnection(sim.C(x, top), sim.ConnEW)
		w.Grid.AddConnection(sim.C(x, bottom), sim.ConnEW)
	}
	for z := top + 1; z < bottom; z++ {
		w.Grid.AddConnection(sim.C(left, z), sim.ConnNS)
		w.Grid.AddConnection(sim.C(right, z), sim.ConnNS)
	}
	w.Grid.AddConnection(sim.C(left, top), sim.ConnES)
	w.Grid.AddConnection(sim.C(right, top), sim.ConnSW)
	w.Grid.AddConnection(sim.C(right, bottom), sim.ConnNW)
	w.Grid.AddConnection(sim.C(left, bottom), sim.ConnNE)

	w.AddTrain(sim.ModelEngine, sim.C(left+1, top), sim.SectorW)
	w.AddTrain(sim.ModelFreight, sim.C(right-1, bottom), sim.SectorE)
}

// buildCrossing lays one north-south and one east-west line meeting at a
// level crossing in the middle, with a train on each line.
func buildCrossing(w *sim.World, _ *rand.Rand) {
	side := w.Grid.Side
	mid := side / 2

	for x := 1; x < side-1; x++ {
		w.Grid.AddConnection(sim.C(x, mid), sim.ConnEW)
	}
	for z := 1; z < side-1; z++ {
		w.Grid.AddConnection(sim.C(mid, z), sim.ConnNS)
	}

	w.AddTrain(sim.ModelEngine, sim.C(1, mid), sim.SectorW)
	w.AddTrain(sim.ModelPassenger, sim.C(mid, 1), sim.SectorN)
}

// buildJunction lays a straight east-west line with a curve branching
// south at the midpoint; the branch starts inactive, so the junction
// demonstrates the switch toggle.
func buildJunction(w *sim.World, _ *rand.Rand) {
	side := w.Grid.Side
	mid := side / 2

	for x := 1; x < side-1; x++ {
		w.Grid.AddConnection(sim.C(x, mid), sim.ConnEW)
	}
	w.Grid.AddConnection(sim.C(mid, mid), sim.ConnSW)
	for z := mid + 1; z < side-1; z++ {
		w.Grid.AddConnection(sim.C(mid, z), sim.ConnNS)
	}

	w.AddTrain(sim.ModelEngine, sim.C(1, mid), sim.SectorW)
}

// buildYard scatters short disconnected segments for free-form editing
// practice. Layout depends on the seed.
func buildYard(w *sim.World, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	side := w.Grid.Side
	kinds := []sim.ConnectionKind{
		sim.ConnNS, sim.ConnNE, sim.ConnNW, sim.ConnES, sim.ConnEW, sim.ConnSW,
	}

	pieces := side * side / 16
	for i := 0; i < pieces; i++ {
		c := sim.C(1+rng.Intn(side-2), 1+rng.Intn(side-2))
		w.Grid.AddConnection(c, kinds[rng.Intn(len(kinds))])
	}
}
