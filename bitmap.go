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
	"image/color"
	"math/bits"
	"slices"
)

const wordBits = 64

// MaxBitmapWords limits the storage of a single bitmap to 2 GiB.
const MaxBitmapWords = 1 << 28

// Bitmap is a two-dimensional grid of black (set) and white (clear) pixels.
//
// Pixels are packed into 64-bit words, with every scanline starting on a
// word boundary. The most significant bit of a word holds the leftmost
// pixel. Padding bits at the end of a scanline are always zero.
//
// Pixel accessors silently ignore coordinates outside the bitmap: reads
// return false and writes have no effect.
//
// Bitmap implements [image.Image], with set pixels black and clear pixels
// white.
type Bitmap struct {
	w, h   int
	stride int // words per scanline
	words  []uint64
}

// NewBitmap returns a new bitmap with all pixels clear.
// Both dimensions must be positive, and the bitmap must fit into
// [MaxBitmapWords] words.
func NewBitmap(w, h int) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidSize)
	}
	stride := (w-1)/wordBits + 1
	if h > MaxBitmapWords/stride {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidSize)
	}
	return &Bitmap{
		w:      w,
		h:      h,
		stride: stride,
		words:  make([]uint64, stride*h),
	}, nil
}

// NewBitmapFromBools returns a new bitmap with the pixel values taken from
// a row-major array: pixel (x, y) is set if values[x+w*y] is true.
// The length of values must be exactly w*h.
func NewBitmapFromBools(w, h int, values []bool) (*Bitmap, error) {
	bm, err := NewBitmap(w, h)
	if err != nil {
		return nil, err
	}
	if values == nil || len(values)/w != h || len(values)%w != 0 {
		return nil, fmt.Errorf("%d values for %dx%d bitmap: %w",
			len(values), w, h, ErrInvalidLength)
	}
	for y := range h {
		row := values[y*w : (y+1)*w]
		for x, v := range row {
			if v {
				bm.words[bm.index(x, y)] |= mask(x)
			}
		}
	}
	return bm, nil
}

// Width returns the number of pixels per scanline.
func (bm *Bitmap) Width() int {
	return bm.w
}

// Height returns the number of scanlines.
func (bm *Bitmap) Height() int {
	return bm.h
}

func (bm *Bitmap) inside(x, y int) bool {
	return x >= 0 && x < bm.w && y >= 0 && y < bm.h
}

func (bm *Bitmap) index(x, y int) int {
	return y*bm.stride + x/wordBits
}

func mask(x int) uint64 {
	return 1 << (wordBits - 1 - x%wordBits)
}

// Pixel reports whether the pixel at (x, y) is set.
func (bm *Bitmap) Pixel(x, y int) bool {
	if !bm.inside(x, y) {
		return false
	}
	return bm.words[bm.index(x, y)]&mask(x) != 0
}

// SetPixel sets the pixel at (x, y) (makes it black).
func (bm *Bitmap) SetPixel(x, y int) {
	if bm.inside(x, y) {
		bm.words[bm.index(x, y)] |= mask(x)
	}
}

// ClearPixel clears the pixel at (x, y) (makes it white).
func (bm *Bitmap) ClearPixel(x, y int) {
	if bm.inside(x, y) {
		bm.words[bm.index(x, y)] &^= mask(x)
	}
}

// InvertPixel toggles the pixel at (x, y).
func (bm *Bitmap) InvertPixel(x, y int) {
	if bm.inside(x, y) {
		bm.words[bm.index(x, y)] ^= mask(x)
	}
}

// PutPixel sets the pixel at (x, y) if v is true and clears it otherwise.
func (bm *Bitmap) PutPixel(x, y int, v bool) {
	if v {
		bm.SetPixel(x, y)
	} else {
		bm.ClearPixel(x, y)
	}
}

// Clear clears all pixels.
func (bm *Bitmap) Clear() {
	clear(bm.words)
}

// Invert toggles all pixels.
func (bm *Bitmap) Invert() {
	for i := range bm.words {
		bm.words[i] = ^bm.words[i]
	}
	// restore the zero padding at the end of each scanline
	if pad := bm.stride*wordBits - bm.w; pad > 0 {
		last := ^uint64(0) << pad
		for y := range bm.h {
			bm.words[y*bm.stride+bm.stride-1] &= last
		}
	}
}

// Flip turns the bitmap upside down, by swapping scanline y with
// scanline h-1-y.
func (bm *Bitmap) Flip() {
	s := bm.stride
	for top, bot := 0, bm.h-1; top < bot; top, bot = top+1, bot-1 {
		a := bm.words[top*s : (top+1)*s]
		b := bm.words[bot*s : (bot+1)*s]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// Clone returns an independent copy of the bitmap.
func (bm *Bitmap) Clone() *Bitmap {
	c := *bm
	c.words = slices.Clone(bm.words)
	return &c
}

// Equal reports whether two bitmaps have the same size and pixels.
func (bm *Bitmap) Equal(other *Bitmap) bool {
	if bm == nil || other == nil {
		return bm == other
	}
	return bm.w == other.w && bm.h == other.h && slices.Equal(bm.words, other.words)
}

// Count returns the number of set pixels.
func (bm *Bitmap) Count() int {
	n := 0
	for _, w := range bm.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ColorModel implements the [image.Image] interface.
func (bm *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements the [image.Image] interface.
func (bm *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.w, bm.h)
}

// At implements the [image.Image] interface.
func (bm *Bitmap) At(x, y int) color.Color {
	if bm.Pixel(x, y) {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 0xFF}
}
