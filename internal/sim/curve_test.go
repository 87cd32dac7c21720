package sim

import (
	"math"
	"testing"

	"github.com/railgrid/railgrid/internal/core"
)

func vecNear(a, b core.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestCurveEndpointExactness(t *testing.T) {
	tests := []struct {
		name             string
		start, mid, end  core.Vec2
	}{
		{"straight", core.Vec2{X: 0, Z: 0.5}, core.Vec2{X: 0.5, Z: 0.5}, core.Vec2{X: 1, Z: 0.5}},
		{"diagonal", core.Vec2{X: 0.5, Z: 0}, core.Vec2{X: 0.5, Z: 0.5}, core.Vec2{X: 1, Z: 0.5}},
		{"arbitrary", core.Vec2{X: -3, Z: 7}, core.Vec2{X: 2, Z: -1}, core.Vec2{X: 9, Z: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurveThrough(tc.start, tc.mid, tc.end, 0); !vecNear(got, tc.start, 1e-12) {
				t.Errorf("t=0: got %+v, want %+v", got, tc.start)
			}
			if got := CurveThrough(tc.start, tc.mid, tc.end, 1); !vecNear(got, tc.end, 1e-12) {
				t.Errorf("t=1: got %+v, want %+v", got, tc.end)
			}
		})
	}
}

func TestCurveClampsParameter(t *testing.T) {
	start := core.Vec2{X: 0, Z: 0}
	mid := core.Vec2{X: 1, Z: 1}
	end := core.Vec2{X: 2, Z: 0}

	if got := CurveThrough(start, mid, end, -0.5); !vecNear(got, start, 1e-12) {
		t.Errorf("t<0 should clamp to start, got %+v", got)
	}
	if got := CurveThrough(start, mid, end, 1.5); !vecNear(got, end, 1e-12) {
		t.Errorf("t>1 should clamp to end, got %+v", got)
	}
}

func TestCurveStaysContinuous(t *testing.T) {
	// Successive samples along the curve should move by small bounded steps.
	start := core.Vec2{X: 4.5, Z: 4.0}
	mid := core.Vec2{X: 4.5, Z: 4.5}
	end := core.Vec2{X: 5.0, Z: 4.5}

	prev := CurveThrough(start, mid, end, 0)
	for i := 1; i <= 100; i++ {
		p := CurveThrough(start, mid, end, float64(i)/100)
		d := p.Sub(prev)
		if math.Hypot(d.X, d.Z) > 0.05 {
			t.Fatalf("discontinuity at t=%v: step %+v", float64(i)/100, d)
		}
		prev = p
	}
}
