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
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// NewBitmapFromImage converts an image into a bitmap, by comparing the
// brightness of every pixel against threshold.
//
// The threshold is clamped to [0, 1]. A pixel becomes black if its
// brightness is below the threshold, where transparent pixels count as
// white. With threshold 0 the bitmap is all white, with threshold 1 it is
// all black.
//
// Image coordinates have the origin at the top left, while the tracer uses
// Cartesian coordinates with the origin at the bottom left. The bitmap is
// therefore flipped: scanline 0 of the bitmap is the bottom row of the
// image.
func NewBitmapFromImage(img image.Image, threshold float64) (*Bitmap, error) {
	if img == nil {
		return nil, fmt.Errorf("image: %w", ErrNilArgument)
	}

	b := img.Bounds()
	bm, err := NewBitmap(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	src, ok := img.(*image.NRGBA)
	origin := b.Min
	if !ok {
		src = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
		origin = image.Point{}
	}

	// Brightness is the sum of the three colour channels, composited onto
	// a white background, so that it ranges from 0 to 3*255.
	cutoff := 3 * unitRange.clamp(threshold) * 256
	for y := range bm.h {
		for x := range bm.w {
			c := src.NRGBAAt(origin.X+x, origin.Y+y)
			alpha := int(c.A)
			sample := int(c.R) + int(c.G) + int(c.B)
			brightness := sample*alpha/256 + 3*(255-alpha)
			if float64(brightness) < cutoff {
				bm.words[bm.index(x, y)] |= mask(x)
			}
		}
	}

	bm.Flip()
	return bm, nil
}
