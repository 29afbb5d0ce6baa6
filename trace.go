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
	"image/color"
	"iter"
	"time"

	"github.com/dennwc/gotrace"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"
)

// Result holds the paths found by [Trace].
//
// A Result owns its paths. The [Path] values handed out by a Result
// are views into it, and become invalid once [Result.Close] is called.
//
// A Result is not safe for concurrent use.
type Result struct {
	width, height int

	paths []pathData // nil once closed
	views []Path     // views[i] refers to paths[i]
}

// pathData is the converted form of one traced outline.
type pathData struct {
	area  int
	outer bool
	segs  []Segment
}

// Trace runs the tracing algorithm on bm, using the parameters p.
//
// Outlines are ordered depth first: every outline is followed by the
// holes it contains, and these in turn by the outlines inside the holes.
//
// If the tracer fails, the returned error wraps [ErrTraceFailed] and no
// partial result is returned.
func Trace(bm *Bitmap, p *Params) (*Result, error) {
	if bm == nil || p == nil {
		return nil, fmt.Errorf("trace: %w", ErrNilArgument)
	}

	log := Logger()
	start := time.Now()
	log.Debug("trace started",
		zap.Int("width", bm.w),
		zap.Int("height", bm.h),
		zap.Int("turdSize", p.TurdSize()),
		zap.Stringer("turnPolicy", p.TurnPolicy()),
		zap.Float64("alphaMax", p.AlphaMax()),
		zap.Bool("optiCurve", p.OptiCurve()),
		zap.Float64("optTolerance", p.OptTolerance()))

	tree, err := runTracer(bm, p)
	if err != nil {
		log.Warn("trace failed",
			zap.Int("width", bm.w),
			zap.Int("height", bm.h),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrTraceFailed, err)
	}

	res := &Result{
		width:  bm.w,
		height: bm.h,
		paths:  appendPaths(make([]pathData, 0, len(tree)), tree),
	}
	res.views = make([]Path, len(res.paths))
	for i := range res.views {
		res.views[i] = Path{res: res, idx: i}
	}

	log.Debug("trace finished",
		zap.Int("paths", len(res.paths)),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// runTracer hands the bitmap to the tracing library.
// A panic inside the library is reported as an error.
func runTracer(bm *Bitmap, p *Params) (paths []gotrace.Path, err error) {
	defer func() {
		if r := recover(); r != nil {
			paths = nil
			err = fmt.Errorf("tracer panic: %v", r)
		}
	}()

	param := &gotrace.Params{
		TurdSize:     p.TurdSize(),
		TurnPolicy:   gotrace.TurnPolicy(p.TurnPolicy()),
		AlphaMax:     p.AlphaMax(),
		OptiCurve:    p.OptiCurve(),
		OptTolerance: p.OptTolerance(),
	}
	return gotrace.Trace(gotrace.NewBitmapFromImage(bm, isBlack), param)
}

// isBlack recovers the pixel values from the colours reported by
// [Bitmap.At].
func isBlack(_, _ int, c color.Color) bool {
	g, ok := c.(color.Gray)
	return ok && g.Y < 0x80
}

func appendPaths(dst []pathData, tree []gotrace.Path) []pathData {
	for i := range tree {
		dst = append(dst, convertPath(&tree[i]))
		dst = appendPaths(dst, tree[i].Childs)
	}
	return dst
}

func convertPath(gp *gotrace.Path) pathData {
	segs := make([]Segment, len(gp.Curve))
	for i, s := range gp.Curve {
		switch s.Type {
		case gotrace.TypeCorner:
			segs[i].Tag = TagCorner
		case gotrace.TypeBezier:
			segs[i].Tag = TagCurve
		}
		for j, pt := range s.Pnt {
			segs[i].Pts[j] = vec.Vec2{X: pt.X, Y: pt.Y}
		}
	}
	return pathData{
		area:  gp.Area,
		outer: gp.Sign >= 0,
		segs:  segs,
	}
}

// Close releases the traced paths. All [Path] values obtained from the
// result behave like nil paths afterwards. Calling Close more than once
// has no effect.
func (r *Result) Close() {
	if r == nil {
		return
	}
	r.paths = nil
}

// Closed reports whether [Result.Close] has been called.
func (r *Result) Closed() bool {
	return r == nil || r.paths == nil
}

// Width returns the width of the traced bitmap, or 0 for a nil result.
func (r *Result) Width() int {
	if r == nil {
		return 0
	}
	return r.width
}

// Height returns the height of the traced bitmap, or 0 for a nil result.
func (r *Result) Height() int {
	if r == nil {
		return 0
	}
	return r.height
}

// Len returns the number of paths.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.paths)
}

// First returns the first path, or nil if there are no paths.
// The remaining paths can be reached using [Path.Next].
func (r *Result) First() *Path {
	return r.Path(0)
}

// Path returns the i-th path, or nil if i is out of range.
func (r *Result) Path(i int) *Path {
	if i < 0 || i >= r.Len() {
		return nil
	}
	return &r.views[i]
}

// Paths iterates over all paths of the result.
func (r *Result) Paths() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		for p := r.First(); p != nil; p = p.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
