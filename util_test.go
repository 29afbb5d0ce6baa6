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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// paramsComparer lets cmp look inside [Params].
var paramsComparer = cmp.AllowUnexported(Params{})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// parseBitmap builds a bitmap from text rows, with '#' for set pixels.
// Row 0 is scanline 0.
func parseBitmap(t *testing.T, rows ...string) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(len(rows[0]), len(rows))
	if err != nil {
		t.Fatal(err)
	}
	for y, row := range rows {
		if len(row) != bm.Width() {
			t.Fatalf("row %d has length %d, want %d", y, len(row), bm.Width())
		}
		for x, c := range row {
			bm.PutPixel(x, y, c == '#')
		}
	}
	return bm
}

// formatBitmap is the inverse of parseBitmap.
func formatBitmap(bm *Bitmap) []string {
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

// xorCount returns the number of pixels where a and b differ.
func xorCount(a, b *Bitmap) int {
	c := a.Clone()
	for i, w := range b.words {
		c.words[i] ^= w
	}
	return c.Count()
}
