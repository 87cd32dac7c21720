package sim

// trailPoint is one recorded gesture sample: the cell under the pointer
// and the sector within it.
type trailPoint struct {
	Cell   Coord
	Sector Sector
}

// BrushTrail accumulates the sequence of sectors an edit gesture has
// visited within one cell and bakes it into a rail connection once the
// gesture leaves the cell or ends. The trail is transient editing state;
// it is never persisted.
type BrushTrail struct {
	points []trailPoint
	limit  int
}

// NewBrushTrail creates a trail bounded to the given number of samples
// (typically the grid cell count).
func NewBrushTrail(limit int) *BrushTrail {
	if limit < 3 {
		limit = 3
	}
	return &BrushTrail{
		points: make([]trailPoint, 0, limit),
		limit:  limit,
	}
}

// Len returns the number of recorded samples.
func (b *BrushTrail) Len() int {
	return len(b.points)
}

// Observe feeds one per-frame pointer sample into the trail. When the
// pointer crosses into a new cell, the pending trail is baked into the
// first recorded cell and a fresh trail starts with the new sample.
// It returns true when a connection was committed to the grid.
func (b *BrushTrail) Observe(g *Grid, cell Coord, sector Sector) bool {
	if sector == SectorNone {
		return false
	}
	p := trailPoint{Cell: cell, Sector: sector}

	if len(b.points) == 0 {
		b.append(p)
		return false
	}

	last := b.points[len(b.points)-1]
	switch {
	case last == p:
		// No duplicate consecutive entries.
		return false
	case last.Cell == cell:
		b.append(p)
		return false
	default:
		baked := b.bake(g)
		b.points = b.points[:0]
		b.append(p)
		return baked
	}
}

// Flush bakes any pending trail and clears it. Called when the gesture
// ends, regardless of trail length.
func (b *BrushTrail) Flush(g *Grid) bool {
	baked := b.bake(g)
	b.points = b.points[:0]
	return baked
}

func (b *BrushTrail) append(p trailPoint) {
	if len(b.points) < b.limit {
		b.points = append(b.points, p)
	}
}

// bake classifies the first and last recorded sector against the stroke
// table and, on a match, commits the connection to the trail's first
// cell. Trails shorter than three samples carry too little direction
// information and are discarded.
func (b *BrushTrail) bake(g *Grid) bool {
	if len(b.points) < 3 {
		return false
	}
	first := b.points[0]
	last := b.points[len(b.points)-1]

	kind, ok := classifyStroke(first.Sector, last.Sector)
	if !ok {
		return false
	}
	g.AddConnection(first.Cell, kind)
	return true
}

// strokePair is an unordered sector pair, normalized by strokeKey.
type strokePair struct {
	a, b Sector
}

func strokeKey(a, b Sector) strokePair {
	if a > b {
		a, b = b, a
	}
	return strokePair{a: a, b: b}
}

// strokeTable maps an entry/exit sector pair to the connection it paints.
// Straights match their edge pair or either diagonal corner-pair proxy
// (a gesture hugging one side of the cell still crosses it lengthwise);
// the four diagonal curves match their corner-adjacent edge pairs.
// Anything else is a no-op.
var strokeTable = map[strokePair]ConnectionKind{
	strokeKey(SectorN, SectorS):   ConnNS,
	strokeKey(SectorSW, SectorNW): ConnNS,
	strokeKey(SectorNE, SectorSE): ConnNS,
	strokeKey(SectorE, SectorW):   ConnEW,
	strokeKey(SectorNW, SectorNE): ConnEW,
	strokeKey(SectorSW, SectorSE): ConnEW,
	strokeKey(SectorS, SectorE):   ConnES,
	strokeKey(SectorS, SectorW):   ConnSW,
	strokeKey(SectorN, SectorW):   ConnNW,
	strokeKey(SectorN, SectorE):   ConnNE,
}

func classifyStroke(first, last Sector) (ConnectionKind, bool) {
	k, ok := strokeTable[strokeKey(first, last)]
	return k, ok
}
