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

// Command export writes the test images and the paths traced from them to
// JSON, for comparison with other implementations of the tracer.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	params := vectorize.NewParams()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc, params)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Shape  []jsonCommand `json:"shape"`
	Rows   []string      `json:"rows"`
	Paths  []jsonPath    `json:"paths"`
}

type jsonCommand struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonPath struct {
	Area     int           `json:"area"`
	Outer    bool          `json:"outer"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Tag string      `json:"tag"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase, params *vectorize.Params) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Shape:  shapeToJSON(tc.Shape),
	}

	bm, err := vectorize.NewBitmapFromPath(tc.Shape, tc.Width, tc.Height)
	if err != nil {
		return jtc, err
	}
	jtc.Rows = bitmapRows(bm)

	res, err := vectorize.Trace(bm, params)
	if err != nil {
		return jtc, err
	}
	defer res.Close()

	for p := range res.Paths() {
		jp := jsonPath{Area: p.Area(), Outer: p.Sign()}
		for _, seg := range p.Segments() {
			js := jsonSegment{Tag: seg.Tag.String()}
			pts := seg.Pts[:]
			if seg.Tag == vectorize.TagCorner {
				pts = pts[1:]
			}
			for _, v := range pts {
				js.Pts = append(js.Pts, []float64{v.X, v.Y})
			}
			jp.Segments = append(jp.Segments, js)
		}
		jtc.Paths = append(jtc.Paths, jp)
	}
	return jtc, nil
}

// bitmapRows draws the bitmap as text, one string per scanline, with '#'
// for set pixels and '.' for clear pixels.
func bitmapRows(bm *vectorize.Bitmap) []string {
	rows := make([]string, bm.Height())
	var b strings.Builder
	for y := range bm.Height() {
		b.Reset()
		for x := range bm.Width() {
			if bm.Pixel(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func shapeToJSON(d *path.Data) []jsonCommand {
	var cmds []jsonCommand
	for cmd, pts := range d.Iter() {
		c := jsonCommand{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			c.Cmd = "M"
		case path.CmdLineTo:
			c.Cmd = "L"
		case path.CmdQuadTo:
			c.Cmd = "Q"
		case path.CmdCubeTo:
			c.Cmd = "C"
		case path.CmdClose:
			c.Cmd = "Z"
		}
		for i, pt := range pts {
			c.Pts[i] = []float64{pt.X, pt.Y}
		}
		cmds = append(cmds, c)
	}
	return cmds
}
