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

// Command genpdf draws proof sheets for the tracer.
// For every test case, a PDF file is written which shows the black pixels
// of the test image in grey, overlaid with the traced outlines.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/testcases"
)

const proofDir = "testdata/proof"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	vectorize.SetLogger(logger)

	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	params := vectorize.NewParams()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(proofDir, name+".pdf")
			if err := generatePDF(tc, params, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("proof sheet written", zap.String("file", pdfPath))
		}
	}
}

func generatePDF(tc testcases.TestCase, params *vectorize.Params, pdfPath string) error {
	bm, err := vectorize.NewBitmapFromPath(tc.Shape, tc.Width, tc.Height)
	if err != nil {
		return err
	}
	res, err := vectorize.Trace(bm, params)
	if err != nil {
		return err
	}
	defer res.Close()

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test images have row 0 at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// black pixels of the test image, as horizontal runs
	if bm.Count() > 0 {
		page.SetFillColor(color.DeviceGray(0.8))
		for y := range bm.Height() {
			start := -1
			for x := 0; x <= bm.Width(); x++ {
				set := bm.Pixel(x, y)
				switch {
				case set && start < 0:
					start = x
				case !set && start >= 0:
					page.Rectangle(float64(start), float64(y), float64(x-start), 1)
					start = -1
				}
			}
		}
		page.Fill()
	}

	// traced outlines, in pixel units
	outline := res.Data(params.IncludeBorder())
	if len(outline.Cmds) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.1)
		drawPath(page, outline)
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the part of the PDF content stream writer used for
// path construction.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawPath(page pathBuilder, d *path.Data) {
	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
