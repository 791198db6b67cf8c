package path

// Interpolator evaluates a single scalar component of a curve fitted
// through points (the first entry is the start value, the last is the
// target value, and anything in between is a user-declared waypoint) at
// normalized parameter t in [0,1]. Implementations must not retain points.
type Interpolator func(t float64, points []float64) float64

// Linear walks the control points as a piecewise-linear curve: t=0 yields
// points[0], t=1 yields points[len(points)-1], and intermediate values
// interpolate linearly within the enclosing segment.
var Linear Interpolator = func(t float64, points []float64) float64 {
	n := len(points)
	switch n {
	case 0:
		return 0
	case 1:
		return points[0]
	}
	segIndex, u := segment(t, n)
	return points[segIndex] + u*(points[segIndex+1]-points[segIndex])
}

// CatmullRom fits a Catmull-Rom spline through the control points, giving a
// smooth curve that still passes exactly through every waypoint (unlike
// Linear, it has continuous tangents at the interior points). It is the
// default interpolator used when a tween declares waypoints without
// explicitly choosing a path.
var CatmullRom Interpolator = func(t float64, points []float64) float64 {
	n := len(points)
	switch n {
	case 0:
		return 0
	case 1:
		return points[0]
	case 2:
		return points[0] + t*(points[1]-points[0])
	}
	i, u := segment(t, n)
	p0 := points[clamp(i-1, 0, n-1)]
	p1 := points[i]
	p2 := points[i+1]
	p3 := points[clamp(i+2, 0, n-1)]
	return catmullRom1D(p0, p1, p2, p3, u)
}

// segment maps t in [0,1] across len(points)-1 segments, returning the
// index of the segment's leading control point and the local parameter
// within that segment.
func segment(t float64, n int) (index int, u float64) {
	segments := n - 1
	pos := t * float64(segments)
	index = int(pos)
	if index >= segments {
		index = segments - 1
	}
	if index < 0 {
		index = 0
	}
	u = pos - float64(index)
	return index, u
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func catmullRom1D(p0, p1, p2, p3, u float64) float64 {
	u2 := u * u
	u3 := u2 * u
	return 0.5 * ((2 * p1) +
		(-p0+p2)*u +
		(2*p0-5*p1+4*p2-p3)*u2 +
		(-p0+3*p1-3*p2+p3)*u3)
}
