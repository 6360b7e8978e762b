package outline

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Segment is one cubic Bezier piece of a fitted path.
type Segment struct {
	Start, Control1, Control2, End gg.Point
}

// Bez returns s as a gg cubic curve.
func (s Segment) Bez() gg.CubicBez {
	return gg.NewCubicBez(s.Start, s.Control1, s.Control2, s.End)
}

// Path is a closed chain of segments.
type Path []Segment

// Fit converts r into len(r)-1 cubic segments. For each pair of consecutive
// points the controls are
//
//	cp1 = cur + (next-cur)/3
//	cp2 = next - (nextNext-cur)/6
//
// with nextNext wrapping around the end of r.
func Fit(r Ring) Path {
	if len(r) < 2 {
		return nil
	}
	path := make(Path, 0, len(r)-1)
	for i := 0; i < len(r)-1; i++ {
		cur, next, nextNext := r[i], r[i+1], r[(i+2)%len(r)]
		path = append(path, Segment{
			Start:    cur,
			Control1: cur.Add(next.Sub(cur).Div(3)),
			Control2: next.Sub(nextNext.Sub(cur).Div(6)),
			End:      next,
		})
	}
	return path
}

// SVGData returns the path as SVG path data: a move-to, one C command per
// segment with two-decimal coordinates, and a closing Z.
func (p Path) SVGData() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(p) * 48)
	b.WriteString("M ")
	writePoint(&b, p[0].Start)
	for _, s := range p {
		b.WriteString(" C ")
		writePoint(&b, s.Control1)
		b.WriteString(", ")
		writePoint(&b, s.Control2)
		b.WriteString(", ")
		writePoint(&b, s.End)
	}
	b.WriteString(" Z")
	return b.String()
}

// Bounds returns the tight bounding box of the path.
func (p Path) Bounds() gg.Rect {
	if len(p) == 0 {
		return gg.Rect{}
	}
	box := p[0].Bez().BoundingBox()
	for _, s := range p[1:] {
		box = box.Union(s.Bez().BoundingBox())
	}
	return box
}

func writePoint(b *strings.Builder, pt gg.Point) {
	b.WriteString(strconv.FormatFloat(pt.X, 'f', 2, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(pt.Y, 'f', 2, 64))
}
