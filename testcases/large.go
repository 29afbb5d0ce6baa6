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

// largeCases contains test cases with many pixels, mostly used for
// benchmarks.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Shape:  rectangle(&path.Data{}, 50, 50, 462, 462, false),
		Width:  512,
		Height: 512,
		Paths:  1,
	},
	{
		Name:   "large_concentric",
		Shape:  ringShape(&path.Data{}, 256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Paths:  2,
	},
	{
		Name:   "large_diamond",
		Shape:  diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Paths:  1,
	},
	{
		Name:   "large_grid",
		Shape:  rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Paths:  64,
	},
	{
		Name:   "large_disc",
		Shape:  ellipse(&path.Data{}, 256, 256, 230, 230, false),
		Width:  512,
		Height: 512,
		Paths:  1,
	},
	{
		Name:   "large_clipped",
		Shape:  rectangle(&path.Data{}, -100, 100, 612, 400, false),
		Width:  512,
		Height: 512,
		Paths:  1,
	},
}
