// Package sim implements the rail network simulation: the tile connectivity
// model, sector geometry, the brush gesture recognizer, and the per-frame
// train motion state machine. The package is UI-agnostic and deterministic.
package sim

import "math/bits"

// Dir is one of the four edge directions of a grid cell.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dz) grid offset for moving one cell in this
// direction. North decreases Z, South increases Z (row order).
func (d Dir) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	return (d + 2) & 3
}

// ConnectionKind is one of the six undirected pairings of edge directions
// a rail segment can join within a cell: the two straights and the four
// diagonal curves.
type ConnectionKind uint8

const (
	ConnNS ConnectionKind = iota // straight North-South
	ConnNE                       // curve North-East
	ConnNW                       // curve North-West
	ConnES                       // curve East-South
	ConnEW                       // straight East-West
	ConnSW                       // curve South-West
)

// ConnectionKindCount is the number of connection kinds.
const ConnectionKindCount = 6

var connEndpoints = [ConnectionKindCount][2]Dir{
	ConnNS: {North, South},
	ConnNE: {North, East},
	ConnNW: {North, West},
	ConnES: {East, South},
	ConnEW: {East, West},
	ConnSW: {South, West},
}

// Endpoints returns the two edge directions this connection joins.
func (k ConnectionKind) Endpoints() (Dir, Dir) {
	e := connEndpoints[k%ConnectionKindCount]
	return e[0], e[1]
}

// HasEndpoint reports whether the connection touches the given edge.
func (k ConnectionKind) HasEndpoint(d Dir) bool {
	a, b := k.Endpoints()
	return a == d || b == d
}

// String returns the string representation of a connection kind.
func (k ConnectionKind) String() string {
	switch k {
	case ConnNS:
		return "N-S"
	case ConnNE:
		return "N-E"
	case ConnNW:
		return "N-W"
	case ConnES:
		return "E-S"
	case ConnEW:
		return "E-W"
	case ConnSW:
		return "S-W"
	default:
		return "Unknown"
	}
}

// ConnectionFromEndpoints returns the connection kind joining the two
// given directions, or false when the directions are equal.
func ConnectionFromEndpoints(a, b Dir) (ConnectionKind, bool) {
	if a == b {
		return 0, false
	}
	for k := ConnectionKind(0); k < ConnectionKindCount; k++ {
		if k.HasEndpoint(a) && k.HasEndpoint(b) {
			return k, true
		}
	}
	return 0, false
}

// ConnSet is a set of connection kinds, stored as a bitset.
// It is a distinct type from ConnectionKind: a kind is a single value,
// a set carries membership, union, and population count.
type ConnSet uint8

// NewConnSet builds a set from the given kinds.
func NewConnSet(kinds ...ConnectionKind) ConnSet {
	var s ConnSet
	for _, k := range kinds {
		s.Add(k)
	}
	return s
}

// Add inserts a kind into the set.
func (s *ConnSet) Add(k ConnectionKind) {
	*s |= 1 << k
}

// Remove deletes a kind from the set.
func (s *ConnSet) Remove(k ConnectionKind) {
	*s &^= 1 << k
}

// Has reports membership.
func (s ConnSet) Has(k ConnectionKind) bool {
	return s&(1<<k) != 0
}

// Count returns the number of kinds in the set.
func (s ConnSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// IsEmpty reports whether the set has no members.
func (s ConnSet) IsEmpty() bool {
	return s == 0
}

// Kinds returns the members in ascending kind order.
func (s ConnSet) Kinds() []ConnectionKind {
	kinds := make([]ConnectionKind, 0, s.Count())
	for k := ConnectionKind(0); k < ConnectionKindCount; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// ServesEntry reports whether any member touches the given edge direction.
func (s ConnSet) ServesEntry(d Dir) bool {
	for k := ConnectionKind(0); k < ConnectionKindCount; k++ {
		if s.Has(k) && k.HasEndpoint(d) {
			return true
		}
	}
	return false
}

// crossingSet is the one two-member combination where both connections
// are traversable at once.
var crossingSet = NewConnSet(ConnNS, ConnEW)
