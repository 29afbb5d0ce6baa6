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

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Shape:  rectangle(&path.Data{}, 10, 10, 44, 44, false),
		Width:  64,
		Height: 64,
		Paths:  1,
	},
	{
		Name:   "square_small",
		Shape:  rectangle(&path.Data{}, 2, 2, 6, 6, false),
		Width:  8,
		Height: 8,
		Paths:  1,
	},
	{
		Name:   "triangle",
		Shape:  triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Paths:  1,
	},
	{
		Name:   "star",
		Shape:  fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Paths:  -1,
	},
	{
		Name:   "diamond",
		Shape:  diamond(32, 32, 24),
		Width:  64,
		Height: 64,
		Paths:  1,
	},
	{
		Name:   "full",
		Shape:  rectangle(&path.Data{}, -1, -1, 33, 33, false),
		Width:  32,
		Height: 32,
		Paths:  1,
	},
	{
		Name:   "empty",
		Shape:  &path.Data{},
		Width:  32,
		Height: 32,
		Paths:  0,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
// With the nonzero rule, the pentagon in the middle is filled.
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]float64, 0, 10)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts = append(pts, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := &path.Data{}
	for j, i := range []int{0, 2, 4, 1, 3} {
		v := pt(pts[2*i], pts[2*i+1])
		if j == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}
