package sim

import "github.com/railgrid/railgrid/internal/core"

// Coord identifies a cell by integer grid coordinates.
type Coord struct {
	X, Z int
}

// C is a shorthand constructor for a coordinate.
func C(x, z int) Coord {
	return Coord{X: x, Z: z}
}

// Offset returns the coordinate one step in the given direction.
func (c Coord) Offset(d Dir) Coord {
	dx, dz := d.Delta()
	return Coord{X: c.X + dx, Z: c.Z + dz}
}

// CellKind classifies what occupies a grid cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindRail
	KindTodo // reserved for buildings and other future occupants
)

// Cell is a single addressable unit of the grid.
//
// Options is the set of connections physically present; Active is the
// subset currently traversable by trains. Variant and RotationDeg are
// derived presentation values, recomputed whenever Options changes.
type Cell struct {
	Kind        CellKind
	Options     ConnSet
	Active      ConnSet
	Variant     TrackVariant
	RotationDeg int
}

// Grid is a fixed square grid of cells, stored row-major.
type Grid struct {
	Side  int
	cells []Cell
}

// NewGrid creates an empty grid with the given side length.
func NewGrid(side int) *Grid {
	if side < 1 {
		side = 1
	}
	return &Grid{
		Side:  side,
		cells: make([]Cell, side*side),
	}
}

// Index converts a coordinate to a flat array index.
func (g *Grid) Index(c Coord) int {
	return c.Z*g.Side + c.X
}

// CoordAt converts a flat array index back to a coordinate.
func (g *Grid) CoordAt(i int) Coord {
	return Coord{X: i % g.Side, Z: i / g.Side}
}

// InBounds reports whether the coordinate lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Side && c.Z >= 0 && c.Z < g.Side
}

// Clamp restricts a coordinate to grid bounds on both axes.
func (g *Grid) Clamp(c Coord) Coord {
	return Coord{
		X: core.Clamp(c.X, 0, g.Side-1),
		Z: core.Clamp(c.Z, 0, g.Side-1),
	}
}

// At returns the cell at the given coordinate, clamped to grid bounds.
// Lookups never fail; out-of-range coordinates resolve to the nearest
// border cell.
func (g *Grid) At(c Coord) *Cell {
	return &g.cells[g.Index(g.Clamp(c))]
}

// AddConnection adds a connection kind to a cell and marks the cell as
// rail. The first connection added becomes active; a second becomes
// active only when the resulting pair is the straight crossing (then both
// are active); any other addition stays inactive until toggled explicitly.
func (g *Grid) AddConnection(c Coord, k ConnectionKind) {
	cell := g.At(c)
	if cell.Options.Has(k) {
		return
	}
	cell.Options.Add(k)
	cell.Kind = KindRail

	switch {
	case cell.Options.Count() == 1:
		cell.Active = cell.Options
	case cell.Options == crossingSet:
		cell.Active = cell.Options
	}
	// Otherwise the previously active subset is kept; the new connection
	// waits for an explicit switch toggle.

	g.refreshVariant(cell)
}

// RemoveConnection removes a connection kind from a cell. When the last
// connection goes, the cell reverts to empty.
func (g *Grid) RemoveConnection(c Coord, k ConnectionKind) {
	cell := g.At(c)
	if !cell.Options.Has(k) {
		return
	}
	cell.Options.Remove(k)
	cell.Active.Remove(k)

	switch {
	case cell.Options.IsEmpty():
		*cell = Cell{}
		return
	case cell.Options.Count() == 1 || cell.Active.IsEmpty():
		// A lone connection is always active; likewise, removing the
		// active member of a switch promotes the remaining options.
		if cell.Options.Count() == 1 {
			cell.Active = cell.Options
		} else {
			cell.Active = NewConnSet(cell.Options.Kinds()[0])
		}
	}

	g.refreshVariant(cell)
}

// HasConnection reports whether the cell carries the given kind.
func (g *Grid) HasConnection(c Coord, k ConnectionKind) bool {
	return g.At(c).Options.Has(k)
}

// ConnectionCount returns the number of connections present in the cell.
func (g *Grid) ConnectionCount(c Coord) int {
	return g.At(c).Options.Count()
}

// HasConnectionForEntry reports whether any connection of the cell has an
// endpoint at the edge named by the entry sector. Non-edge sectors never
// match.
func (g *Grid) HasConnectionForEntry(c Coord, entry Sector) bool {
	d, ok := entry.Direction()
	if !ok {
		return false
	}
	return g.At(c).Options.ServesEntry(d)
}

// SetActiveConnection makes the given kind the traversable connection of
// a switch cell. It returns false when the kind is not present. Crossing
// cells keep both straights active regardless.
func (g *Grid) SetActiveConnection(c Coord, k ConnectionKind) bool {
	cell := g.At(c)
	if !cell.Options.Has(k) {
		return false
	}
	if cell.Options == crossingSet {
		cell.Active = cell.Options
		return true
	}
	cell.Active = NewConnSet(k)
	return true
}

// NeighborOf returns the cell entered when leaving through the given exit
// sector, clamped to grid bounds on both axes. Non-edge sectors return
// the cell itself.
func (g *Grid) NeighborOf(c Coord, exit Sector) Coord {
	d, ok := exit.Direction()
	if !ok {
		return g.Clamp(c)
	}
	return g.Clamp(c.Offset(d))
}

// refreshVariant recomputes the derived visual variant. Combinations the
// resolver does not cover keep their prior variant.
func (g *Grid) refreshVariant(cell *Cell) {
	if v, rot, ok := ResolveVariant(cell.Options); ok {
		cell.Variant = v
		cell.RotationDeg = rot
	}
}
