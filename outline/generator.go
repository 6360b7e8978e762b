package outline

import (
	"math"

	"github.com/gogpu/gg"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

// MinSegments is the lower bound on the number of distinct ring points.
const MinSegments = 48

// Ring is a closed sequence of outline points in canvas pixel space.
// The last point repeats the first.
type Ring []gg.Point

// Closed reports whether r has at least two points and ends where it starts.
func (r Ring) Closed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}

// Center returns the mean of the distinct points of r.
func (r Ring) Center() gg.Point {
	pts := r
	if r.Closed() {
		pts = r[:len(r)-1]
	}
	if len(pts) == 0 {
		return gg.Point{}
	}
	var sum gg.Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}

// SegmentCount returns the number of distinct points generated for a ring
// with the given jitter intensity at fontSize.
func SegmentCount(intensity, fontSize float64) int {
	n := int(math.Floor(math.Floor(intensity/2) * cloudfont.SegmentMultiplier(fontSize)))
	if n < MinSegments {
		return MinSegments
	}
	return n
}

// Generate returns a ring of radius offset around center whose radius is
// modulated by sin(3θ)·intensity/100. Intensity 0 yields a circle.
func Generate(center gg.Point, offset, intensity, fontSize float64) Ring {
	n := SegmentCount(intensity, fontSize)
	ring := make(Ring, 0, n+1)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := offset * (1 + math.Sin(3*angle)*(intensity/100))
		ring = append(ring, gg.Pt(center.X+math.Cos(angle)*r, center.Y+math.Sin(angle)*r))
	}
	return append(ring, ring[0])
}

// GenerateEllipse returns an elliptical ring with radii rx and ry whose
// radii are both shifted by sin(3θ)·strength/60.
func GenerateEllipse(center gg.Point, rx, ry, strength, fontSize float64) Ring {
	n := SegmentCount(strength, fontSize)
	ring := make(Ring, 0, n+1)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		v := math.Sin(3*angle) * (strength / 60)
		ring = append(ring, gg.Pt(center.X+math.Cos(angle)*(rx+v), center.Y+math.Sin(angle)*(ry+v)))
	}
	return append(ring, ring[0])
}

// Scale returns r scaled by factor toward center.
func (r Ring) Scale(center gg.Point, factor float64) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = center.Add(p.Sub(center).Mul(factor))
	}
	return out
}
