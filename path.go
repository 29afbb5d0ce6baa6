// seehuhn.de/go/vectorize - trace bitmaps into vector paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vectorize

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Tag identifies the kind of a path segment.
// The numeric values are part of the flat API.
type Tag int

const (
	TagNone   Tag = 0 // no segment
	TagCurve  Tag = 1 // cubic Bézier curve
	TagCorner Tag = 2 // two straight lines meeting at a vertex
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagCurve:
		return "curve"
	case TagCorner:
		return "corner"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Segment is one piece of a closed outline. The start point of a segment
// is the end point of the previous segment.
//
// For a curve, Pts holds the two control points and the end point of a
// cubic Bézier curve. For a corner, Pts[1] is the vertex and Pts[2] the
// end point, while Pts[0] is not used.
type Segment struct {
	Tag Tag
	Pts [3]vec.Vec2
}

// End returns the end point of the segment.
func (s Segment) End() vec.Vec2 {
	return s.Pts[2]
}

// Layout of the flat buffers.
const (
	PointStride   = 2                           // float64 values per point
	SegmentStride = 4                           // points per segment
	SegmentSize   = PointStride * SegmentStride // float64 values per segment
	CornerSize    = 3 * PointStride             // float64 values for a corner
)

// Unset is stored in flat segment buffers in place of the control point
// which corner segments do not have.
const Unset = -1.23432101234321e+308

// Path is one closed outline of a [Result].
//
// A Path is a view into the result it came from. After the result has
// been closed, and for a nil *Path, all methods behave as for an empty
// path: counts are zero, [Path.Sign] is true, and buffer accessors fail.
type Path struct {
	res *Result
	idx int
}

func (p *Path) data() *pathData {
	if p == nil || p.res.Closed() {
		return nil
	}
	return &p.res.paths[p.idx]
}

func (p *Path) check() (*pathData, error) {
	if p == nil {
		return nil, fmt.Errorf("path: %w", ErrNilArgument)
	}
	d := p.data()
	if d == nil {
		return nil, ErrClosed
	}
	return d, nil
}

// Next returns the path following p, or nil if p is the last path.
func (p *Path) Next() *Path {
	if p.data() == nil || p.idx+1 >= len(p.res.paths) {
		return nil
	}
	return &p.res.views[p.idx+1]
}

// Area returns the area enclosed by the path, in pixels.
func (p *Path) Area() int {
	d := p.data()
	if d == nil {
		return 0
	}
	return d.area
}

// Sign returns true for an outer boundary and false for the boundary of
// a hole.
func (p *Path) Sign() bool {
	d := p.data()
	if d == nil {
		return true
	}
	return d.outer
}

// SegmentCount returns the number of segments of the path.
func (p *Path) SegmentCount() int {
	d := p.data()
	if d == nil {
		return 0
	}
	return len(d.segs)
}

// SegmentTag returns the tag of segment i, or [TagNone] if there is no
// such segment.
func (p *Path) SegmentTag(i int) Tag {
	s, ok := p.Segment(i)
	if !ok {
		return TagNone
	}
	return s.Tag
}

// Segment returns segment i of the path.
func (p *Path) Segment(i int) (Segment, bool) {
	d := p.data()
	if d == nil || i < 0 || i >= len(d.segs) {
		return Segment{}, false
	}
	return d.segs[i], true
}

// Segments returns a copy of all segments of the path.
func (p *Path) Segments() []Segment {
	d := p.data()
	if d == nil {
		return nil
	}
	return slices.Clone(d.segs)
}

// start returns the start point of segment i, which is the end point of
// the previous segment. The outline is closed, so segment 0 starts where
// the last segment ends.
func (d *pathData) start(i int) vec.Vec2 {
	n := len(d.segs)
	return d.segs[(i+n-1)%n].Pts[2]
}

// SegmentPoints copies the points of all segments into buf.
//
// The buffer must hold exactly [SegmentSize] values per segment. For every
// segment, the start point, the two control points and the end point are
// stored, each as an x, y pair. For corners, the first control point is
// stored as ([Unset], [Unset]) and the second is the vertex.
//
// If an error is returned, buf is not modified.
func (p *Path) SegmentPoints(buf []float64) error {
	d, err := p.check()
	if err != nil {
		return err
	}
	n := len(d.segs)
	if len(buf) != n*SegmentSize {
		return fmt.Errorf("%d values for %d segments: %w", len(buf), n, ErrBufferSize)
	}

	for i, s := range d.segs {
		out := buf[i*SegmentSize : (i+1)*SegmentSize]
		start := d.start(i)
		out[0], out[1] = start.X, start.Y
		if s.Tag == TagCorner {
			out[2], out[3] = Unset, Unset
		} else {
			out[2], out[3] = s.Pts[0].X, s.Pts[0].Y
		}
		out[4], out[5] = s.Pts[1].X, s.Pts[1].Y
		out[6], out[7] = s.Pts[2].X, s.Pts[2].Y
	}
	return nil
}

// CornerPoints copies the start point, the vertex and the end point of
// corner segment i into buf, which must have length [CornerSize].
//
// If an error is returned, buf is not modified. In particular, buf is left
// untouched if segment i is not a corner.
func (p *Path) CornerPoints(i int, buf []float64) error {
	d, s, err := p.segmentWithTag(i, TagCorner)
	if err != nil {
		return err
	}
	if len(buf) != CornerSize {
		return fmt.Errorf("%d values for a corner: %w", len(buf), ErrBufferSize)
	}

	start := d.start(i)
	buf[0], buf[1] = start.X, start.Y
	buf[2], buf[3] = s.Pts[1].X, s.Pts[1].Y
	buf[4], buf[5] = s.Pts[2].X, s.Pts[2].Y
	return nil
}

// CurvePoints copies the start point, the two control points and the end
// point of curve segment i into buf, which must have length
// [SegmentSize].
//
// If an error is returned, buf is not modified. In particular, buf is left
// untouched if segment i is not a curve.
func (p *Path) CurvePoints(i int, buf []float64) error {
	d, s, err := p.segmentWithTag(i, TagCurve)
	if err != nil {
		return err
	}
	if len(buf) != SegmentSize {
		return fmt.Errorf("%d values for a curve: %w", len(buf), ErrBufferSize)
	}

	start := d.start(i)
	buf[0], buf[1] = start.X, start.Y
	buf[2], buf[3] = s.Pts[0].X, s.Pts[0].Y
	buf[4], buf[5] = s.Pts[1].X, s.Pts[1].Y
	buf[6], buf[7] = s.Pts[2].X, s.Pts[2].Y
	return nil
}

func (p *Path) segmentWithTag(i int, tag Tag) (*pathData, Segment, error) {
	d, err := p.check()
	if err != nil {
		return nil, Segment{}, err
	}
	if i < 0 || i >= len(d.segs) {
		return nil, Segment{}, fmt.Errorf("segment %d of %d: %w", i, len(d.segs), ErrIndex)
	}
	s := d.segs[i]
	if s.Tag != tag {
		return nil, Segment{}, fmt.Errorf("segment %d is a %s, not a %s: %w",
			i, s.Tag, tag, ErrTagMismatch)
	}
	return d, s, nil
}
