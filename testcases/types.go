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

// Package testcases holds black and white test images for the tracer.
//
// Every test image is described by a shape in pixel coordinates. A pixel
// is black if its centre lies inside the shape, using the nonzero winding
// rule. Holes are drawn with the opposite orientation of the outline
// around them.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single tracing test.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Shape  *path.Data // the black area
	Width  int        // image width in pixels
	Height int        // image height in pixels

	// Paths is the number of outlines the tracer must find with the
	// default parameters, holes included. A negative value means that
	// the number is not checked.
	Paths int
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rectangle appends an axis-parallel rectangle to p. The rectangle is
// counter-clockwise in a y-down coordinate system if ccw is true.
func rectangle(p *path.Data, x1, y1, x2, y2 float64, ccw bool) *path.Data {
	if ccw {
		return p.MoveTo(pt(x1, y1)).LineTo(pt(x1, y2)).LineTo(pt(x2, y2)).LineTo(pt(x2, y1)).Close()
	}
	return p.MoveTo(pt(x1, y1)).LineTo(pt(x2, y1)).LineTo(pt(x2, y2)).LineTo(pt(x1, y2)).Close()
}
