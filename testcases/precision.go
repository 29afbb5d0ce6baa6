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

var precisionCases = []TestCase{
	// Pixel centres are at half-integer positions, so that the black
	// area depends on the sub-pixel offset of the shape.
	{
		Name:   "subpixel_offset_00",
		Shape:  offsetRectangle(10, 10, 20, 20, 0.0),
		Width:  40,
		Height: 40,
		Paths:  1,
	},
	{
		Name:   "subpixel_offset_25",
		Shape:  offsetRectangle(10, 10, 20, 20, 0.25),
		Width:  40,
		Height: 40,
		Paths:  1,
	},
	{
		Name:   "subpixel_offset_75",
		Shape:  offsetRectangle(10, 10, 20, 20, 0.75),
		Width:  40,
		Height: 40,
		Paths:  1,
	},

	// Speckles at or below the default despeckling limit vanish.
	{
		Name:   "speckles",
		Shape:  speckles(4, 4, 8, 1),
		Width:  32,
		Height: 32,
		Paths:  0,
	},
	{
		Name:   "speckles_large",
		Shape:  speckles(4, 4, 8, 2),
		Width:  32,
		Height: 32,
		Paths:  16,
	},

	// A single pixel wide line.
	{
		Name:   "thin_line",
		Shape:  rectangle(&path.Data{}, 4, 10, 28, 11, false),
		Width:  32,
		Height: 20,
		Paths:  1,
	},
}

// offsetRectangle builds a rectangle shifted by a sub-pixel offset.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(&path.Data{}, x1+offset, y1+offset, x1+w+offset, y1+h+offset, false)
}

// speckles builds a grid of size×size pixel squares, spaced step pixels
// apart.
func speckles(rows, cols int, step, size float64) *path.Data {
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x := 2 + float64(col)*step
			y := 2 + float64(row)*step
			p = rectangle(p, x, y, x+size, y+size, false)
		}
	}
	return p
}
