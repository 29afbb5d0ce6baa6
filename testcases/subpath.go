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

package testcases

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "two_squares",
		Shape:  rectangle(rectangle(&path.Data{}, 4, 4, 24, 24, false), 36, 36, 60, 60, false),
		Width:  64,
		Height: 64,
		Paths:  2,
	},
	{
		Name:   "overlapping_rect",
		Shape:  rectangle(rectangle(&path.Data{}, 8, 8, 40, 40, false), 24, 24, 56, 56, false),
		Width:  64,
		Height: 64,
		Paths:  1,
	},
	{
		Name:   "ring_shape",
		Shape:  ringShape(&path.Data{}, 32, 32, 24, 12),
		Width:  64,
		Height: 64,
		Paths:  2,
	},
	{
		Name:   "round_ring",
		Shape:  ellipse(ellipse(&path.Data{}, 32, 32, 26, 26, false), 32, 32, 14, 14, true),
		Width:  64,
		Height: 64,
		Paths:  2,
	},
	{
		Name:   "multiple_rings",
		Shape:  multipleRings(48, 48),
		Width:  96,
		Height: 96,
		Paths:  6,
	},
	{
		Name:   "nested",
		Shape:  rectangle(ringShape(&path.Data{}, 32, 32, 28, 20), 24, 24, 40, 40, false),
		Width:  64,
		Height: 64,
		Paths:  3,
	},
	{
		Name:   "grid",
		Shape:  rectangleGrid(4, 4, 64, 64, 3),
		Width:  64,
		Height: 64,
		Paths:  16,
	},
}

// ringShape appends a square with a square hole to p.
// The hole has the opposite orientation, so that it stays empty under
// the nonzero rule.
func ringShape(p *path.Data, cx, cy, outerSize, innerSize float64) *path.Data {
	p = rectangle(p, cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize, false)
	return rectangle(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize, true)
}

// multipleRings builds three separate square rings.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 24, cy - 24, 18, 8},
		{cx + 24, cy - 24, 18, 8},
		{cx, cy + 24, 18, 8},
	}

	p := &path.Data{}
	for _, ring := range rings {
		p = ringShape(p, ring.cx, ring.cy, ring.outer, ring.inner)
	}
	return p
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			p = rectangle(p, x1, y1, x2, y2, false)
		}
	}
	return p
}
