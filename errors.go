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

import "errors"

// Errors returned by this package. Use [errors.Is] to test for them, since
// most are returned wrapped with additional context.
var (
	ErrInvalidSize   = errors.New("bitmap dimensions must be positive")
	ErrInvalidLength = errors.New("pixel array length does not match bitmap size")
	ErrNilArgument   = errors.New("nil argument")
	ErrUnknownKey    = errors.New("unknown parameter key")
	ErrBufferSize    = errors.New("buffer has the wrong size")
	ErrIndex         = errors.New("segment index out of range")
	ErrTagMismatch   = errors.New("segment has the wrong tag")
	ErrTraceFailed   = errors.New("tracing failed")
	ErrClosed        = errors.New("trace result has been closed")
)
