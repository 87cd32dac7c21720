package sim

import "github.com/railgrid/railgrid/internal/core"

// Sector is one of nine named sub-regions of a cell: four edges, four
// corners, and the center. Sectors address both gesture samples and a
// train's sub-cell entry/exit points. The zero value SectorNone is the
// undefined placeholder.
type Sector uint8

const (
	SectorNone Sector = iota
	SectorNW
	SectorN
	SectorNE
	SectorW
	SectorC
	SectorE
	SectorSW
	SectorS
	SectorSE
)

// String returns the string representation of a sector.
func (s Sector) String() string {
	switch s {
	case SectorNW:
		return "NW"
	case SectorN:
		return "N"
	case SectorNE:
		return "NE"
	case SectorW:
		return "W"
	case SectorC:
		return "C"
	case SectorE:
		return "E"
	case SectorSW:
		return "SW"
	case SectorS:
		return "S"
	case SectorSE:
		return "SE"
	default:
		return "None"
	}
}

// sectorForDir maps an edge direction to its edge sector.
var sectorForDir = [4]Sector{
	North: SectorN,
	East:  SectorE,
	South: SectorS,
	West:  SectorW,
}

// Direction returns the edge direction named by an edge sector.
// Corner, center, and undefined sectors have no direction.
func (s Sector) Direction() (Dir, bool) {
	switch s {
	case SectorN:
		return North, true
	case SectorE:
		return East, true
	case SectorS:
		return South, true
	case SectorW:
		return West, true
	default:
		return North, false
	}
}

// IsEdge reports whether the sector is one of the four edge sectors,
// the only valid entry/exit points for trains.
func (s Sector) IsEdge() bool {
	_, ok := s.Direction()
	return ok
}

// sectorGrid is the 3x3 classification table indexed by [row][col].
var sectorGrid = [3][3]Sector{
	{SectorNW, SectorN, SectorNE},
	{SectorW, SectorC, SectorE},
	{SectorSW, SectorS, SectorSE},
}

// sectorOffsets holds centroid offsets from the cell center in units of
// one sector width (a third of a cell).
var sectorOffsets = [...]core.Vec2{
	SectorNone: {},
	SectorNW:   {X: -1, Z: -1},
	SectorN:    {X: 0, Z: -1},
	SectorNE:   {X: 1, Z: -1},
	SectorW:    {X: -1, Z: 0},
	SectorC:    {},
	SectorE:    {X: 1, Z: 0},
	SectorSW:   {X: -1, Z: 1},
	SectorS:    {X: 0, Z: 1},
	SectorSE:   {X: 1, Z: 1},
}

// SectorFromLocal classifies a point in cell-local [0,1)x[0,1) space.
// Thresholds at 1/3 and 2/3 are half-open: a value of exactly 1/3 falls
// in the middle band.
func SectorFromLocal(fx, fz float64) Sector {
	col := 2
	switch {
	case fx < 1.0/3.0:
		col = 0
	case fx < 2.0/3.0:
		col = 1
	}
	row := 2
	switch {
	case fz < 1.0/3.0:
		row = 0
	case fz < 2.0/3.0:
		row = 1
	}
	return sectorGrid[row][col]
}

// CellCenter returns the world position of a cell's center. A cell spans
// one world unit per axis.
func CellCenter(c Coord) core.Vec2 {
	return core.Vec2{X: float64(c.X) + 0.5, Z: float64(c.Z) + 0.5}
}

// SectorCenter returns the world position of a sector's centroid within
// the cell. The undefined sector yields the zero vector.
func SectorCenter(c Coord, s Sector) core.Vec2 {
	if s == SectorNone || int(s) >= len(sectorOffsets) {
		return core.Vec2{}
	}
	return CellCenter(c).Add(sectorOffsets[s].Scale(1.0 / 3.0))
}

// SectorEdge returns the position of an edge sector pushed onto the cell
// boundary it names: half a sector width outward from the centroid.
// Corner, center, and undefined sectors have no edge position and yield
// the zero vector.
func SectorEdge(c Coord, s Sector) core.Vec2 {
	d, ok := s.Direction()
	if !ok {
		return core.Vec2{}
	}
	dx, dz := d.Delta()
	return CellCenter(c).Add(core.Vec2{X: float64(dx), Z: float64(dz)}.Scale(0.5))
}

// ExitSectorFor returns the sector a vehicle leaves through when it
// entered the given connection at the given edge. If the entry sector is
// not an endpoint of the connection the entry is returned unchanged, so
// malformed state degrades to standing still instead of teleporting.
func ExitSectorFor(k ConnectionKind, entry Sector) Sector {
	a, b := k.Endpoints()
	switch entry {
	case sectorForDir[a]:
		return sectorForDir[b]
	case sectorForDir[b]:
		return sectorForDir[a]
	default:
		return entry
	}
}

// NextEntrySectorFor maps the edge sector a vehicle exits through to the
// opposite edge sector of the neighbor it enters (N<->S, E<->W).
// Non-edge sectors yield SectorNone.
func NextEntrySectorFor(exit Sector) Sector {
	d, ok := exit.Direction()
	if !ok {
		return SectorNone
	}
	return sectorForDir[d.Opposite()]
}
