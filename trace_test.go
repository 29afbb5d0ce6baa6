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
	"errors"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/vectorize/testcases"
)

func squareBitmap(t *testing.T, size, lo, hi int) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(size, size)
	if err != nil {
		t.Fatal(err)
	}
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			bm.SetPixel(x, y)
		}
	}
	return bm
}

func traceDefault(t *testing.T, bm *Bitmap) *Result {
	t.Helper()
	res, err := Trace(bm, NewParams())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(res.Close)
	return res
}

func TestTraceNil(t *testing.T) {
	bm := squareBitmap(t, 4, 1, 3)
	if res, err := Trace(nil, NewParams()); res != nil || !errors.Is(err, ErrNilArgument) {
		t.Errorf("Trace(nil, p) = %v, %v", res, err)
	}
	if res, err := Trace(bm, nil); res != nil || !errors.Is(err, ErrNilArgument) {
		t.Errorf("Trace(bm, nil) = %v, %v", res, err)
	}
}

func TestTraceEmpty(t *testing.T) {
	bm, _ := NewBitmap(10, 10)
	res := traceDefault(t, bm)
	if res.Closed() {
		t.Fatal("empty result is closed")
	}
	if res.Len() != 0 || res.First() != nil {
		t.Errorf("empty bitmap gave %d paths", res.Len())
	}
	if res.Width() != 10 || res.Height() != 10 {
		t.Errorf("result size %dx%d", res.Width(), res.Height())
	}
	out, err := res.Render()
	if err != nil {
		t.Fatal(err)
	}
	if out.Count() != 0 {
		t.Error("empty result renders pixels")
	}
}

func TestTraceSquare(t *testing.T) {
	res := traceDefault(t, squareBitmap(t, 8, 2, 6))

	if res.Len() != 1 {
		t.Fatalf("got %d paths, want 1", res.Len())
	}
	p := res.First()
	if !p.Sign() {
		t.Error("outline is not positive")
	}
	if a := p.Area(); a != 16 {
		t.Errorf("area = %d, want 16", a)
	}
	if p.Next() != nil {
		t.Error("Next() != nil")
	}

	n := p.SegmentCount()
	if n == 0 {
		t.Fatal("no segments")
	}
	for i := range n {
		if tag := p.SegmentTag(i); tag != TagCorner && tag != TagCurve {
			t.Errorf("segment %d has tag %s", i, tag)
		}
	}
	if tag := p.SegmentTag(n); tag != TagNone {
		t.Errorf("SegmentTag(%d) = %s", n, tag)
	}
	if tag := p.SegmentTag(-1); tag != TagNone {
		t.Errorf("SegmentTag(-1) = %s", tag)
	}

	// The outline stays within one pixel of the square.
	for _, s := range p.Segments() {
		for j, pt := range s.Pts {
			if j == 0 && s.Tag == TagCorner {
				continue
			}
			if pt.X < 1 || pt.X > 7 || pt.Y < 1 || pt.Y > 7 {
				t.Errorf("point %v outside the square", pt)
			}
		}
	}
}

// A 2×2 square is too small to keep its corners: potrace smooths every
// vertex of it (alpha = 2/3 is below the default alpha max of 1), so the
// tags are checked for consistency only.
func TestTraceTinySquare(t *testing.T) {
	res := traceDefault(t, squareBitmap(t, 4, 1, 3))

	if res.Len() != 1 {
		t.Fatalf("got %d paths, want 1", res.Len())
	}
	p := res.First()
	if !p.Sign() || p.Area() <= 0 {
		t.Errorf("sign = %t, area = %d", p.Sign(), p.Area())
	}
	n := p.SegmentCount()
	if n == 0 {
		t.Fatal("no segments")
	}
	first := p.SegmentTag(0)
	for i := 1; i < n; i++ {
		if tag := p.SegmentTag(i); tag != first {
			t.Errorf("segment %d is a %s, segment 0 is a %s", i, tag, first)
		}
	}
	checkSegmentAccessors(t, p)
}

func TestSegmentPoints(t *testing.T) {
	res := traceDefault(t, squareBitmap(t, 8, 2, 6))
	p := res.First()
	n := p.SegmentCount()

	for _, size := range []int{0, n*SegmentSize - 1, n*SegmentSize + 1, 2 * n * SegmentSize} {
		buf := slices.Repeat([]float64{42}, size)
		err := p.SegmentPoints(buf)
		if !errors.Is(err, ErrBufferSize) {
			t.Errorf("buffer of size %d: %v", size, err)
		}
		if slices.ContainsFunc(buf, func(v float64) bool { return v != 42 }) {
			t.Errorf("buffer of size %d was modified", size)
		}
	}

	buf := make([]float64, n*SegmentSize)
	if err := p.SegmentPoints(buf); err != nil {
		t.Fatal(err)
	}
	for i := range n {
		seg := buf[i*SegmentSize : (i+1)*SegmentSize]
		prev := buf[((i+n-1)%n)*SegmentSize : ((i+n-1)%n+1)*SegmentSize]
		if seg[0] != prev[6] || seg[1] != prev[7] {
			t.Errorf("segment %d starts at (%g, %g), previous ends at (%g, %g)",
				i, seg[0], seg[1], prev[6], prev[7])
		}

		s, _ := p.Segment(i)
		if s.Tag == TagCorner {
			if seg[2] != Unset || seg[3] != Unset {
				t.Errorf("corner %d has control point (%g, %g)", i, seg[2], seg[3])
			}
		}
		if seg[6] != s.End().X || seg[7] != s.End().Y {
			t.Errorf("segment %d: wrong end point", i)
		}
	}
}

// discBitmap returns a size×size bitmap with a filled disc of radius r
// at the centre. Pixels are set if their centre lies inside the disc.
func discBitmap(t *testing.T, size int, r float64) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(size, size)
	if err != nil {
		t.Fatal(err)
	}
	c := float64(size) / 2
	for y := range size {
		for x := range size {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			if dx*dx+dy*dy <= r*r {
				bm.SetPixel(x, y)
			}
		}
	}
	return bm
}

var tagSentinel = math.Float64frombits(0x7ff8dead0000beef)

func untouched(buf []float64) bool {
	return !slices.ContainsFunc(buf, func(v float64) bool {
		return math.Float64bits(v) != math.Float64bits(tagSentinel)
	})
}

// checkSegmentAccessors verifies that the corner and curve accessors of p
// only accept segments with the matching tag, and returns the number of
// curve segments.
func checkSegmentAccessors(t *testing.T, p *Path) int {
	t.Helper()

	curves := 0
	for i := range p.SegmentCount() {
		corner := slices.Repeat([]float64{tagSentinel}, CornerSize)
		curve := slices.Repeat([]float64{tagSentinel}, SegmentSize)
		s, _ := p.Segment(i)

		switch p.SegmentTag(i) {
		case TagCurve:
			curves++
			if err := p.CornerPoints(i, corner); !errors.Is(err, ErrTagMismatch) {
				t.Errorf("segment %d: CornerPoints gave %v", i, err)
			}
			if !untouched(corner) {
				t.Errorf("segment %d: corner buffer modified", i)
			}
			if err := p.CurvePoints(i, curve); err != nil {
				t.Errorf("segment %d: %v", i, err)
			}
			diff(t, []float64{
				curve[0], curve[1],
				s.Pts[0].X, s.Pts[0].Y,
				s.Pts[1].X, s.Pts[1].Y,
				s.Pts[2].X, s.Pts[2].Y,
			}, curve)
		case TagCorner:
			if err := p.CurvePoints(i, curve); !errors.Is(err, ErrTagMismatch) {
				t.Errorf("segment %d: CurvePoints gave %v", i, err)
			}
			if !untouched(curve) {
				t.Errorf("segment %d: curve buffer modified", i)
			}
			if err := p.CornerPoints(i, corner); err != nil {
				t.Errorf("segment %d: %v", i, err)
			}
			diff(t, []float64{
				corner[0], corner[1],
				s.Pts[1].X, s.Pts[1].Y,
				s.Pts[2].X, s.Pts[2].Y,
			}, corner)
		default:
			t.Fatalf("segment %d has no tag", i)
		}
	}
	return curves
}

func TestTagMismatch(t *testing.T) {
	disc := traceDefault(t, discBitmap(t, 32, 12))
	if disc.Len() != 1 {
		t.Fatalf("disc: got %d paths, want 1", disc.Len())
	}
	if n := checkSegmentAccessors(t, disc.First()); n == 0 {
		t.Error("disc outline has no curve segments")
	}

	res := traceDefault(t, squareBitmap(t, 16, 2, 14))
	p := res.First()
	if n := checkSegmentAccessors(t, p); n != 0 {
		t.Errorf("square outline has %d curve segments", n)
	}

	// index errors take precedence over buffer size errors
	short := slices.Repeat([]float64{tagSentinel}, 3)
	n := p.SegmentCount()
	if err := p.CornerPoints(n, short); !errors.Is(err, ErrIndex) {
		t.Errorf("CornerPoints(%d): %v", n, err)
	}
	if err := p.CurvePoints(-1, short); !errors.Is(err, ErrIndex) {
		t.Errorf("CurvePoints(-1): %v", err)
	}
	if !untouched(short) {
		t.Error("buffer modified on index error")
	}
}

func TestNilPath(t *testing.T) {
	var p *Path
	if p.Next() != nil || p.SegmentCount() != 0 || p.Area() != 0 || !p.Sign() {
		t.Error("nil path is not empty")
	}
	if p.SegmentTag(0) != TagNone || p.Segments() != nil {
		t.Error("nil path has segments")
	}
	if err := p.SegmentPoints(nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("SegmentPoints: %v", err)
	}
	if err := p.CornerPoints(0, make([]float64, CornerSize)); !errors.Is(err, ErrNilArgument) {
		t.Errorf("CornerPoints: %v", err)
	}
	if d := p.Data(); len(d.Cmds) != 0 {
		t.Error("nil path has geometry")
	}
}

func TestResultClose(t *testing.T) {
	res, err := Trace(squareBitmap(t, 8, 2, 6), NewParams())
	if err != nil {
		t.Fatal(err)
	}
	p := res.First()
	n := p.SegmentCount()

	res.Close()
	res.Close()
	if !res.Closed() || res.Len() != 0 || res.First() != nil {
		t.Error("result still has paths")
	}
	if p.SegmentCount() != 0 || p.Area() != 0 || !p.Sign() || p.Next() != nil {
		t.Error("path still valid after Close")
	}
	if err := p.SegmentPoints(make([]float64, n*SegmentSize)); !errors.Is(err, ErrClosed) {
		t.Errorf("SegmentPoints after Close: %v", err)
	}
	if _, err := res.Render(); !errors.Is(err, ErrClosed) {
		t.Errorf("Render after Close: %v", err)
	}
	if res.Width() != 8 {
		t.Error("Close changed the size")
	}
}

func TestNilResult(t *testing.T) {
	var res *Result
	if res.Width() != 0 || res.Height() != 0 || res.Len() != 0 {
		t.Errorf("nil result: %dx%d with %d paths", res.Width(), res.Height(), res.Len())
	}
	if !res.Closed() || res.First() != nil {
		t.Error("nil result has paths")
	}
	if d := res.Data(true); len(d.Cmds) != 0 {
		t.Errorf("nil result has %d path commands", len(d.Cmds))
	}
	if _, err := res.Render(); !errors.Is(err, ErrClosed) {
		t.Errorf("Render: %v", err)
	}
	res.Close()
}

func TestPathsIterator(t *testing.T) {
	bm := parseBitmap(t,
		"..........",
		".###..###.",
		".###..###.",
		".###..###.",
		"..........",
		"..........",
		".###......",
		".###......",
		".###......",
		"..........",
	)
	res := traceDefault(t, bm)
	if res.Len() != 3 {
		t.Fatalf("got %d paths, want 3", res.Len())
	}

	var visited []*Path
	for p := range res.Paths() {
		visited = append(visited, p)
	}
	for i, p := range visited {
		if p != res.Path(i) {
			t.Errorf("path %d out of order", i)
		}
	}
	if res.Path(3) != nil || res.Path(-1) != nil {
		t.Error("Path accepts invalid indices")
	}

	count := 0
	for range res.Paths() {
		count++
		break
	}
	if count != 1 {
		t.Error("iteration did not stop")
	}
}

func TestTraceHole(t *testing.T) {
	bm := squareBitmap(t, 32, 4, 28)
	for y := 10; y < 22; y++ {
		for x := 10; x < 22; x++ {
			bm.ClearPixel(x, y)
		}
	}
	res := traceDefault(t, bm)
	if res.Len() != 2 {
		t.Fatalf("got %d paths, want 2", res.Len())
	}
	outer, hole := res.Path(0), res.Path(1)
	if !outer.Sign() || hole.Sign() {
		t.Errorf("signs %t, %t", outer.Sign(), hole.Sign())
	}
	if outer.Area() != 24*24 || hole.Area() != 12*12 {
		t.Errorf("areas %d, %d", outer.Area(), hole.Area())
	}

	out, err := res.Render()
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(bm) {
		t.Errorf("render differs:\n%v", formatBitmap(out))
	}
}

func TestTurdSize(t *testing.T) {
	bm := parseBitmap(t,
		"........",
		".#....#.",
		"........",
		"...##...",
		"...##...",
		"........",
	)
	p := NewParams()
	res, err := Trace(bm, p)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()
	if res.Len() != 1 {
		t.Errorf("default turd size: %d paths, want 1", res.Len())
	}

	p.SetTurdSize(0)
	res2, err := Trace(bm, p)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Close()
	if res2.Len() != 3 {
		t.Errorf("turd size 0: %d paths, want 3", res2.Len())
	}
}

func TestTestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				bm, err := NewBitmapFromPath(tc.Shape, tc.Width, tc.Height)
				if err != nil {
					t.Fatal(err)
				}
				res := traceDefault(t, bm)

				if tc.Paths >= 0 && res.Len() != tc.Paths {
					t.Errorf("got %d paths, want %d", res.Len(), tc.Paths)
				}
				if p := res.First(); p != nil && !p.Sign() {
					t.Error("first path is a hole")
				}
				if tc.Paths == 0 {
					return
				}

				out, err := res.Render()
				if err != nil {
					t.Fatal(err)
				}
				limit := max(16, bm.Count()/8)
				if d := xorCount(bm, out); d > limit {
					t.Errorf("render differs in %d pixels (limit %d)", d, limit)
				}
			})
		}
	}
}
