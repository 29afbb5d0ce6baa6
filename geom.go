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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Data converts the path into a closed subpath.
// Corners become two line segments, curves become cubic Bézier segments.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	p.appendData(d)
	return d
}

func (p *Path) appendData(d *path.Data) {
	pd := p.data()
	if pd == nil || len(pd.segs) == 0 {
		return
	}

	d.Cmds = append(d.Cmds, path.CmdMoveTo)
	d.Coords = append(d.Coords, pd.start(0))
	for _, s := range pd.segs {
		switch s.Tag {
		case TagCurve:
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords, s.Pts[0], s.Pts[1], s.Pts[2])
		case TagCorner:
			d.Cmds = append(d.Cmds, path.CmdLineTo, path.CmdLineTo)
			d.Coords = append(d.Coords, s.Pts[1], s.Pts[2])
		default:
			d.Cmds = append(d.Cmds, path.CmdLineTo)
			d.Coords = append(d.Coords, s.Pts[2])
		}
	}
	d.Cmds = append(d.Cmds, path.CmdClose)
}

// Data converts all paths of the result into a single path, with one
// closed subpath per traced outline. Holes have the opposite orientation
// of the outlines around them, so the result can be filled using either
// fill rule.
//
// If border is true, the path starts with a rectangle covering the
// traced bitmap. Filling such a path is not useful, it is meant for
// stroking or for exporting outlines.
func (r *Result) Data(border bool) *path.Data {
	d := &path.Data{}
	if border && r.Width() > 0 && r.Height() > 0 {
		w, h := float64(r.Width()), float64(r.Height())
		d.Cmds = append(d.Cmds,
			path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
		d.Coords = append(d.Coords,
			vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: w, Y: 0}, vec.Vec2{X: w, Y: h}, vec.Vec2{X: 0, Y: h})
	}
	for p := range r.Paths() {
		p.appendData(d)
	}
	return d
}

// Transform returns a copy of d with all points mapped through m.
// This is used to scale traced output from pixels to physical units.
func Transform(d *path.Data, m matrix.Matrix) *path.Data {
	out := &path.Data{
		Cmds:   slices.Clone(d.Cmds),
		Coords: make([]vec.Vec2, len(d.Coords)),
	}
	for i, pt := range d.Coords {
		out.Coords[i] = vec.Vec2{
			X: m[0]*pt.X + m[2]*pt.Y + m[4],
			Y: m[1]*pt.X + m[3]*pt.Y + m[5],
		}
	}
	return out
}
