package sim

import "github.com/railgrid/railgrid/internal/core"

// CurveThrough evaluates a cubic Bezier that passes exactly through start
// at t=0 and end at t=1, using the midpoint as the shared tangent anchor:
// the inner control points sit halfway between the midpoint and each
// endpoint. The same three-point formulation serves straight and diagonal
// tiles alike, which keeps train motion visually continuous. t is clamped
// to [0,1].
func CurveThrough(start, mid, end core.Vec2, t float64) core.Vec2 {
	t = core.ClampF(t, 0, 1)

	c1 := start.Add(mid).Scale(0.5)
	c2 := mid.Add(end).Scale(0.5)

	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t

	return start.Scale(b0).
		Add(c1.Scale(b1)).
		Add(c2.Scale(b2)).
		Add(end.Scale(b3))
}
