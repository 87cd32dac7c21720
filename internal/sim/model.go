package sim

// TrackVariant is the visual model chosen for a cell, derived purely from
// its connection options. VariantNone doubles as the "unresolved" value
// for combinations the lookup tables do not cover.
type TrackVariant uint8

const (
	VariantNone TrackVariant = iota
	VariantStraight
	VariantCurve
	VariantCross
	VariantMerge
	VariantMergeMirror
)

// String returns the string representation of a track variant.
func (v TrackVariant) String() string {
	switch v {
	case VariantStraight:
		return "Straight"
	case VariantCurve:
		return "Curve"
	case VariantCross:
		return "Cross"
	case VariantMerge:
		return "Merge"
	case VariantMergeMirror:
		return "MergeMirror"
	default:
		return "None"
	}
}

type variantEntry struct {
	variant  TrackVariant
	rotation int
}

// singleVariants keys a lone connection to its model and rotation.
var singleVariants = map[ConnSet]variantEntry{
	NewConnSet(ConnNS): {VariantStraight, 0},
	NewConnSet(ConnEW): {VariantStraight, 90},
	NewConnSet(ConnNE): {VariantCurve, 0},
	NewConnSet(ConnES): {VariantCurve, 90},
	NewConnSet(ConnSW): {VariantCurve, 180},
	NewConnSet(ConnNW): {VariantCurve, 270},
}

// pairVariants covers the 9 resolved two-connection combinations: the
// straight crossing plus a straight with an adjoining curve on either
// side. The remaining 6 curve-curve pairs stay unresolved.
var pairVariants = map[ConnSet]variantEntry{
	crossingSet:                 {VariantCross, 0},
	NewConnSet(ConnNS, ConnNE): {VariantMerge, 0},
	NewConnSet(ConnEW, ConnES): {VariantMerge, 90},
	NewConnSet(ConnNS, ConnSW): {VariantMerge, 180},
	NewConnSet(ConnEW, ConnNW): {VariantMerge, 270},
	NewConnSet(ConnNS, ConnNW): {VariantMergeMirror, 0},
	NewConnSet(ConnEW, ConnNE): {VariantMergeMirror, 90},
	NewConnSet(ConnNS, ConnES): {VariantMergeMirror, 180},
	NewConnSet(ConnEW, ConnSW): {VariantMergeMirror, 270},
}

// ResolveVariant derives the visual variant and rotation for a set of
// connection options. It returns ok=false for combinations it does not
// resolve (no connections, unresolved pairs, three or more connections);
// callers keep the prior variant in that case.
func ResolveVariant(options ConnSet) (TrackVariant, int, bool) {
	switch options.Count() {
	case 1:
		if e, ok := singleVariants[options]; ok {
			return e.variant, e.rotation, true
		}
	case 2:
		if e, ok := pairVariants[options]; ok {
			return e.variant, e.rotation, true
		}
	}
	return VariantNone, 0, false
}
