package engine

import "github.com/mariosromano/ribmaker/internal/model"

// EvaluateSpline interpolates a smooth curve through the given control
// points using a uniform Catmull-Rom spline and returns resolution+1 points.
// The curve is C1-continuous, passes through every control point, and
// reproduces the endpoints exactly. Callers must supply at least two control
// points; the generator guarantees this.
func EvaluateSpline(ctrl model.Profile, resolution int) model.Profile {
	if resolution < 1 {
		resolution = 1
	}
	n := len(ctrl)
	out := make(model.Profile, 0, resolution+1)

	// Two control points define a straight segment; the clamped Catmull-Rom
	// form would bow it into a cubic.
	if n == 2 {
		for k := 0; k <= resolution; k++ {
			switch k {
			case 0:
				out = append(out, ctrl[0])
			case resolution:
				out = append(out, ctrl[1])
			default:
				t := float64(k) / float64(resolution)
				out = append(out, model.CurvePoint{
					Depth:    ctrl[0].Depth + t*(ctrl[1].Depth-ctrl[0].Depth),
					Position: ctrl[0].Position + t*(ctrl[1].Position-ctrl[0].Position),
				})
			}
		}
		return out
	}

	for k := 0; k <= resolution; k++ {
		if k == 0 {
			out = append(out, ctrl[0])
			continue
		}
		if k == resolution {
			out = append(out, ctrl[n-1])
			continue
		}

		f := float64(k) / float64(resolution) * float64(n-1)
		seg := int(f)
		if seg > n-2 {
			seg = n - 2
		}
		t := f - float64(seg)

		p0 := ctrl[clampIndex(seg-1, n)]
		p1 := ctrl[seg]
		p2 := ctrl[seg+1]
		p3 := ctrl[clampIndex(seg+2, n)]

		out = append(out, model.CurvePoint{
			Depth:    catmullRom(p0.Depth, p1.Depth, p2.Depth, p3.Depth, t),
			Position: catmullRom(p0.Position, p1.Position, p2.Position, p3.Position, t),
		})
	}
	return out
}

// catmullRom evaluates one uniform Catmull-Rom segment at local t in [0, 1].
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
