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

package capi

import (
	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/internal/handle"
)

// state is the object behind a trace state handle.
type state struct {
	res *vectorize.Result

	// paths[i] is the handle of path i, or 0 if none has been issued yet.
	paths []Handle
}

// pathRef is the object behind a path handle.
type pathRef struct {
	st  *state
	idx int
}

func (st *state) pathHandle(i int) Handle {
	if i < 0 || i >= len(st.paths) {
		return 0
	}
	if st.paths[i] == 0 {
		st.paths[i] = newHandle(&pathRef{st: st, idx: i})
	}
	return st.paths[i]
}

// StateTrace traces a bitmap using the given parameters.
// The zero handle is returned if either handle is invalid or if tracing
// fails.
func StateTrace(bitmap, param Handle) Handle {
	bm, ok := lookup[*vectorize.Bitmap](bitmap, "StateTrace")
	if !ok {
		return 0
	}
	p, ok := lookup[*vectorize.Params](param, "StateTrace")
	if !ok {
		return 0
	}

	res, err := vectorize.Trace(bm, p)
	if err != nil {
		return 0
	}
	return newHandle(&state{
		res:   res,
		paths: make([]Handle, res.Len()),
	})
}

// StateDelete releases a trace state, together with all path handles
// obtained from it.
func StateDelete(h Handle) {
	st, ok := release[*state](h, "StateDelete")
	if !ok {
		return
	}
	for _, ph := range st.paths {
		if ph != 0 {
			objects.Delete(handle.Handle(ph))
		}
	}
	st.paths = nil
	st.res.Close()
}

// StatePathList returns the first path of a trace state, or the zero
// handle if there are no paths.
func StatePathList(h Handle) Handle {
	st, ok := lookup[*state](h, "StatePathList")
	if !ok {
		return 0
	}
	return st.pathHandle(0)
}

func lookupPath(h Handle, op string) (*pathRef, *vectorize.Path) {
	ref, ok := lookup[*pathRef](h, op)
	if !ok {
		return nil, nil
	}
	return ref, ref.st.res.Path(ref.idx)
}

// PathNext returns the path following h, or the zero handle at the end of
// the list.
func PathNext(h Handle) Handle {
	ref, p := lookupPath(h, "PathNext")
	if p.Next() == nil {
		return 0
	}
	return ref.st.pathHandle(ref.idx + 1)
}

// PathArea returns the area enclosed by a path, in pixels.
func PathArea(h Handle) int {
	_, p := lookupPath(h, "PathArea")
	return p.Area()
}

// PathSign reports whether a path is an outer boundary.
// For an invalid handle the result is true.
func PathSign(h Handle) bool {
	_, p := lookupPath(h, "PathSign")
	return p.Sign()
}

// PathSegmentCount returns the number of segments of a path.
func PathSegmentCount(h Handle) int {
	_, p := lookupPath(h, "PathSegmentCount")
	return p.SegmentCount()
}

// PathSegmentTag returns the tag of a segment: 1 for a curve, 2 for a
// corner and 0 if there is no such segment.
func PathSegmentTag(h Handle, index int) int {
	_, p := lookupPath(h, "PathSegmentTag")
	return int(p.SegmentTag(index))
}

// PathSegmentPoints fills buf with the points of all segments of a path,
// as described for [vectorize.Path.SegmentPoints].
// The length of buf must be exactly 8 times the number of segments.
func PathSegmentPoints(h Handle, buf []float64) bool {
	_, p := lookupPath(h, "PathSegmentPoints")
	return p != nil && p.SegmentPoints(buf) == nil
}

// PathSegmentCornerPoints fills buf, which must have length 6, with the
// start point, vertex and end point of a corner segment.
// Nothing is written if the segment is not a corner.
func PathSegmentCornerPoints(h Handle, index int, buf []float64) bool {
	_, p := lookupPath(h, "PathSegmentCornerPoints")
	return p != nil && p.CornerPoints(index, buf) == nil
}

// PathSegmentCurvePoints fills buf, which must have length 8, with the
// start point, the control points and the end point of a curve segment.
// Nothing is written if the segment is not a curve.
func PathSegmentCurvePoints(h Handle, index int, buf []float64) bool {
	_, p := lookupPath(h, "PathSegmentCurvePoints")
	return p != nil && p.CurvePoints(index, buf) == nil
}
