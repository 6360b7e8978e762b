package outline

import "github.com/gogpu/gg"

// WindowRadius is the half-width of the smoothing window.
const WindowRadius = 3

// Smooth returns the moving average of r over a window of WindowRadius
// points on each side. The window is clamped at the ends of the slice, not
// wrapped. If r is closed the result is re-closed on its first point.
func Smooth(r Ring) Ring {
	if len(r) == 0 {
		return nil
	}
	out := make(Ring, len(r))
	last := len(r) - 1
	for i := range r {
		lo, hi := max(0, i-WindowRadius), min(last, i+WindowRadius)
		var sum gg.Point
		for j := lo; j <= hi; j++ {
			sum = sum.Add(r[j])
		}
		out[i] = sum.Div(float64(hi - lo + 1))
	}
	if r.Closed() {
		out[last] = out[0]
	}
	return out
}
