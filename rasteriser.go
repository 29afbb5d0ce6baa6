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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// crossing is the intersection of an edge with the centre line of a
// scanline.
type crossing struct {
	x   float64
	dir int // +1 for downward edges, -1 for upward edges
}

// Rasteriser converts paths into bilevel pixel spans, by sampling the
// path at pixel centres. It is used to render traced outlines back into
// a [Bitmap].
//
// Create one instance and reuse it for multiple paths; internal buffers
// grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	edges     []edge
	crossings []crossing

	edgeYMin, edgeYMax float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle, the
// identity transformation and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the public fields to their defaults, keeping the
// capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.crossings = r.crossings[:0]
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// The number of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// FillNonZero fills the path using the nonzero winding rule.
// For every scanline, the runs of covered pixels are delivered via emit
// as half-open intervals [xMin, xMax).
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin, xMax int)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// For every scanline, the runs of covered pixels are delivered via emit
// as half-open intervals [xMin, xMax).
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin, xMax int)) {
	r.fill(p, fillEvenOdd, emit)
}

// fillRule identifies which fill rule to apply.
type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (rule fillRule) inside(winding int) bool {
	if rule == fillEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin, xMax int)) {
	if !r.collectPathEdges(p) {
		return
	}

	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)
	yMin := max(int(math.Floor(r.edgeYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Ceil(r.edgeYMax)), int(r.Clip.URy))

	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		r.crossings = r.crossings[:0]
		for i := range r.edges {
			e := &r.edges[i]
			top, bot := min(e.y0, e.y1), max(e.y0, e.y1)
			if yc < top || yc >= bot {
				continue
			}
			dir := 1
			if e.y1 < e.y0 {
				dir = -1
			}
			r.crossings = append(r.crossings, crossing{
				x:   e.x0 + e.dxdy*(yc-e.y0),
				dir: dir,
			})
		}
		if len(r.crossings) < 2 {
			continue
		}
		slices.SortFunc(r.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		// Pixel x is covered if its centre x+0.5 lies inside a span.
		winding := 0
		var spanStart float64
		for _, c := range r.crossings {
			wasInside := rule.inside(winding)
			winding += c.dir
			isInside := rule.inside(winding)
			switch {
			case !wasInside && isInside:
				spanStart = c.x
			case wasInside && !isInside:
				x0 := max(int(math.Ceil(spanStart-0.5)), clipXMin)
				x1 := min(int(math.Ceil(c.x-0.5)), clipXMax)
				if x0 < x1 {
					emit(y, x0, x1)
				}
			}
		}
	}
}

// collectPathEdges walks the path, transforms to device space, and builds
// the edge list. It reports whether any non-horizontal edges were found.
func (r *Rasteriser) collectPathEdges(p *path.Data) bool {
	r.edges = r.edges[:0]
	r.edgeYMin = math.Inf(1)
	r.edgeYMax = math.Inf(-1)

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], r.addEdge)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], r.addEdge)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
		}
	}
	// fills close open subpaths implicitly
	if current != subpath {
		r.addEdge(current, subpath)
	}

	return len(r.edges) > 0
}

// addEdge adds an edge from user space coordinates, transforming to device space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})
	r.edgeYMin = min(r.edgeYMin, dy0, dy1)
	r.edgeYMax = max(r.edgeYMax, dy0, dy1)
}

// NewBitmapFromPath returns a w×h bitmap where a pixel is set if its
// centre lies inside d, using the nonzero winding rule.
func NewBitmapFromPath(d *path.Data, w, h int) (*Bitmap, error) {
	bm, err := NewBitmap(w, h)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return bm, nil
	}

	ras := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	ras.FillNonZero(d, func(y, xMin, xMax int) {
		for x := xMin; x < xMax; x++ {
			bm.words[bm.index(x, y)] |= mask(x)
		}
	})
	return bm, nil
}

// Render draws the traced outlines into a new bitmap of the size of the
// traced bitmap. A pixel is set if its centre lies inside the outlines.
//
// Rendering the result of a trace gives an approximation of the original
// bitmap, which is useful for previews and for checking parameters.
func (r *Result) Render() (*Bitmap, error) {
	if r.Closed() {
		return nil, ErrClosed
	}
	return NewBitmapFromPath(r.Data(false), r.width, r.height)
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
