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

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "circle",
		Shape:  ellipse(&path.Data{}, 32, 32, 20, 20, false),
		Width:  64,
		Height: 64,
		Paths:  1,
	},
	{
		Name:   "circle_small",
		Shape:  ellipse(&path.Data{}, 16, 16, 5, 5, false),
		Width:  32,
		Height: 32,
		Paths:  1,
	},
	{
		Name:   "circle_large",
		Shape:  ellipse(&path.Data{}, 128, 128, 100, 100, false),
		Width:  256,
		Height: 256,
		Paths:  1,
	},
	{
		Name:   "ellipse",
		Shape:  ellipse(&path.Data{}, 48, 32, 40, 16, false),
		Width:  96,
		Height: 64,
		Paths:  1,
	},
	{
		Name:   "half_disc",
		Shape:  halfDisc(32, 40, 24),
		Width:  64,
		Height: 64,
		Paths:  1,
	},
}

// ellipse appends an approximate ellipse, built from four cubic Bézier
// curves, to p. The orientation is reversed if ccw is true.
func ellipse(p *path.Data, cx, cy, rx, ry float64, ccw bool) *path.Data {
	kx := rx * kappa
	ky := ry * kappa
	if ccw {
		ky = -ky
		ry = -ry
	}

	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// halfDisc builds the upper half of a circle, closed by its diameter.
func halfDisc(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		Close()
}
