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

// Package capi provides a flat, handle-based interface to the vectorize
// package, for use across a foreign function boundary.
//
// Objects are referred to by opaque integer handles. The zero handle
// stands for "no object". Every function accepts the zero handle, as well
// as handles which have already been released, and then returns a neutral
// value: the zero handle, false, 0, or the unchanged input value.
// No function reports an error in any other way.
//
// Every handle returned by a New, Duplicate or Trace function must be
// released by the matching Delete function. Path handles belong to the
// trace state they were obtained from and are released together with it.
package capi

import (
	"go.uber.org/zap"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/internal/handle"
)

// Handle is an opaque reference to a parameter set, a bitmap, a trace
// state or a path.
type Handle uintptr

var objects handle.Table

func newHandle(v any) Handle {
	return Handle(objects.New(v))
}

// lookup returns the object of type T stored under h.
// Stale handles are logged, since they usually indicate a use after
// release on the caller side.
func lookup[T any](h Handle, op string) (T, bool) {
	v, ok := handle.Lookup[T](&objects, handle.Handle(h))
	if !ok && h != 0 {
		vectorize.Logger().Debug("stale handle",
			zap.String("op", op),
			zap.Uint64("handle", uint64(h)))
	}
	return v, ok
}

// release removes h from the handle table, if it refers to an object of
// type T.
func release[T any](h Handle, op string) (T, bool) {
	v, ok := lookup[T](h, op)
	if ok {
		objects.Delete(handle.Handle(h))
	}
	return v, ok
}

// Live returns the number of handles which have not been released.
func Live() int {
	return objects.Len()
}
