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

package capi

import "seehuhn.de/go/vectorize"

// BitmapNew returns a new, all-white bitmap.
// The zero handle is returned unless both dimensions are positive.
func BitmapNew(width, height int) Handle {
	bm, err := vectorize.NewBitmap(width, height)
	if err != nil {
		return 0
	}
	return newHandle(bm)
}

// BitmapNewFromArray returns a new bitmap where pixel (x, y) is set if
// values[x+width*y] is true. The zero handle is returned unless both
// dimensions are positive and len(values) equals width*height.
func BitmapNewFromArray(width, height int, values []bool) Handle {
	bm, err := vectorize.NewBitmapFromBools(width, height, values)
	if err != nil {
		return 0
	}
	return newHandle(bm)
}

// BitmapDelete releases a bitmap.
func BitmapDelete(h Handle) {
	release[*vectorize.Bitmap](h, "BitmapDelete")
}

// BitmapClear clears all pixels.
func BitmapClear(h Handle) {
	if bm, ok := lookup[*vectorize.Bitmap](h, "BitmapClear"); ok {
		bm.Clear()
	}
}

// BitmapDuplicate returns a handle to an independent copy of a bitmap.
func BitmapDuplicate(h Handle) Handle {
	bm, ok := lookup[*vectorize.Bitmap](h, "BitmapDuplicate")
	if !ok {
		return 0
	}
	return newHandle(bm.Clone())
}

// BitmapInvert toggles all pixels.
func BitmapInvert(h Handle) {
	if bm, ok := lookup[*vectorize.Bitmap](h, "BitmapInvert"); ok {
		bm.Invert()
	}
}

// BitmapFlip turns a bitmap upside down.
func BitmapFlip(h Handle) {
	if bm, ok := lookup[*vectorize.Bitmap](h, "BitmapFlip"); ok {
		bm.Flip()
	}
}

// BitmapGetPixel reports whether pixel (x, y) is set.
func BitmapGetPixel(h Handle, x, y int) bool {
	bm, ok := lookup[*vectorize.Bitmap](h, "BitmapGetPixel")
	return ok && bm.Pixel(x, y)
}

// BitmapSetPixel sets pixel (x, y). Coordinates outside the bitmap are
// ignored.
func BitmapSetPixel(h Handle, x, y int) {
	if bm, ok := lookup[*vectorize.Bitmap](h, "BitmapSetPixel"); ok {
		bm.SetPixel(x, y)
	}
}

// BitmapClearPixel clears pixel (x, y).
func BitmapClearPixel(h Handle, x, y int) {
	if bm, ok := lookup[*vectorize.Bitmap](h, "BitmapClearPixel"); ok {
		bm.ClearPixel(x, y)
	}
}

// BitmapInvertPixel toggles pixel (x, y).
func BitmapInvertPixel(h Handle, x, y int) {
	if bm, ok := lookup[*vectorize.Bitmap](h, "BitmapInvertPixel"); ok {
		bm.InvertPixel(x, y)
	}
}

// BitmapPutPixel sets pixel (x, y) if v is true and clears it otherwise.
func BitmapPutPixel(h Handle, x, y int, v bool) {
	if bm, ok := lookup[*vectorize.Bitmap](h, "BitmapPutPixel"); ok {
		bm.PutPixel(x, y, v)
	}
}
