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

// Package vectorize traces black-and-white bitmaps into closed outlines
// made of straight corners and cubic Bézier curves.
//
// The tracing itself is done by the potrace algorithm as implemented in
// [github.com/dennwc/gotrace]. This package manages the inputs and outputs
// of that algorithm: [Params] holds the tuning parameters with their valid
// ranges, [Bitmap] is the packed pixel grid to be traced, and [Result]
// holds the traced [Path] values.
//
// Paths are views into the result they came from. Once [Result.Close] has
// been called, all paths obtained from the result behave like nil paths.
//
// The segment data of a path can be copied into flat float64 buffers,
// using two coordinates per point and four points per segment, see
// [Path.SegmentPoints]. This is the representation used by the handle
// based API in package [seehuhn.de/go/vectorize/capi], which in turn is
// exported as a C library by cmd/vectorizelib.
//
// Bitmaps can be obtained from images with [NewBitmapFromImage]. Traced
// outlines convert to [seehuhn.de/go/geom/path.Data] via [Result.Data],
// and [Result.Render] fills them back into a bitmap for checking the
// trace.
package vectorize
