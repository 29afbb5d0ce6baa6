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

//go:build cgo

// Vectorizelib exports the flat tracing interface as a C shared library.
//
// Build with
//
//	go build -buildmode=c-shared -o libvectorize.so ./cmd/vectorizelib
//
// All objects are passed as uintptr_t handles, where 0 stands for "no
// object". Buffers are owned by the caller.
package main

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"seehuhn.de/go/vectorize/capi"
)

func main() {}

func h(x C.uintptr_t) capi.Handle {
	return capi.Handle(x)
}

func ret(x capi.Handle) C.uintptr_t {
	return C.uintptr_t(x)
}

// doubles converts a caller supplied buffer into a slice.
// A negative size or a NULL buffer gives a nil slice, which all point
// accessors reject unless zero values are expected.
func doubles(n C.int, p *C.double) []float64 {
	if n < 0 || (p == nil && n > 0) {
		return nil
	}
	if n == 0 {
		return []float64{}
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(p)), int(n))
}

/////////////////////////////////////////////////
// parameters

//export potrace_param_New
func potrace_param_New() C.uintptr_t {
	return ret(capi.ParamNew())
}

//export potrace_param_Delete
func potrace_param_Delete(param C.uintptr_t) {
	capi.ParamDelete(h(param))
}

//export potrace_param_SetDefault
func potrace_param_SetDefault(param C.uintptr_t) {
	capi.ParamSetDefault(h(param))
}

//export potrace_param_GetSetDouble
func potrace_param_GetSetDouble(param C.uintptr_t, which C.int, set C.bool, value C.double) C.double {
	return C.double(capi.ParamGetSetDouble(h(param), int(which), bool(set), float64(value)))
}

//export potrace_param_GetSetInt
func potrace_param_GetSetInt(param C.uintptr_t, which C.int, set C.bool, value C.int) C.int {
	return C.int(capi.ParamGetSetInt(h(param), int(which), bool(set), int(value)))
}

/////////////////////////////////////////////////
// bitmaps

//export potrace_bitmap_New
func potrace_bitmap_New(width, height C.int) C.uintptr_t {
	return ret(capi.BitmapNew(int(width), int(height)))
}

//export potrace_bitmap_New2
func potrace_bitmap_New2(width, height, count C.int, values *C.bool) C.uintptr_t {
	if values == nil || count < 0 {
		return 0
	}
	src := unsafe.Slice((*bool)(unsafe.Pointer(values)), int(count))
	return ret(capi.BitmapNewFromArray(int(width), int(height), src))
}

//export potrace_bitmap_Delete
func potrace_bitmap_Delete(bitmap C.uintptr_t) {
	capi.BitmapDelete(h(bitmap))
}

//export potrace_bitmap_Clear
func potrace_bitmap_Clear(bitmap C.uintptr_t) {
	capi.BitmapClear(h(bitmap))
}

//export potrace_bitmap_Duplicate
func potrace_bitmap_Duplicate(bitmap C.uintptr_t) C.uintptr_t {
	return ret(capi.BitmapDuplicate(h(bitmap)))
}

//export potrace_bitmap_Invert
func potrace_bitmap_Invert(bitmap C.uintptr_t) {
	capi.BitmapInvert(h(bitmap))
}

//export potrace_bitmap_Flip
func potrace_bitmap_Flip(bitmap C.uintptr_t) {
	capi.BitmapFlip(h(bitmap))
}

//export potrace_bitmap_GetPixel
func potrace_bitmap_GetPixel(bitmap C.uintptr_t, x, y C.int) C.bool {
	return C.bool(capi.BitmapGetPixel(h(bitmap), int(x), int(y)))
}

//export potrace_bitmap_SetPixel
func potrace_bitmap_SetPixel(bitmap C.uintptr_t, x, y C.int) {
	capi.BitmapSetPixel(h(bitmap), int(x), int(y))
}

//export potrace_bitmap_ClearPixel
func potrace_bitmap_ClearPixel(bitmap C.uintptr_t, x, y C.int) {
	capi.BitmapClearPixel(h(bitmap), int(x), int(y))
}

//export potrace_bitmap_InvertPixel
func potrace_bitmap_InvertPixel(bitmap C.uintptr_t, x, y C.int) {
	capi.BitmapInvertPixel(h(bitmap), int(x), int(y))
}

//export potrace_bitmap_PutPixel
func potrace_bitmap_PutPixel(bitmap C.uintptr_t, x, y C.int, set C.bool) {
	capi.BitmapPutPixel(h(bitmap), int(x), int(y), bool(set))
}

/////////////////////////////////////////////////
// trace states

//export potrace_state_New
func potrace_state_New(bitmap, param C.uintptr_t) C.uintptr_t {
	return ret(capi.StateTrace(h(bitmap), h(param)))
}

// potrace_state_Trace is an alias of potrace_state_New, for callers
// which bind the name from the header.
//
//export potrace_state_Trace
func potrace_state_Trace(bitmap, param C.uintptr_t) C.uintptr_t {
	return potrace_state_New(bitmap, param)
}

//export potrace_state_Delete
func potrace_state_Delete(state C.uintptr_t) {
	capi.StateDelete(h(state))
}

//export potrace_state_PathList
func potrace_state_PathList(state C.uintptr_t) C.uintptr_t {
	return ret(capi.StatePathList(h(state)))
}

/////////////////////////////////////////////////
// paths

//export potrace_path_Area
func potrace_path_Area(path C.uintptr_t) C.int {
	return C.int(capi.PathArea(h(path)))
}

//export potrace_path_Sign
func potrace_path_Sign(path C.uintptr_t) C.bool {
	return C.bool(capi.PathSign(h(path)))
}

//export potrace_path_Next
func potrace_path_Next(path C.uintptr_t) C.uintptr_t {
	return ret(capi.PathNext(h(path)))
}

//export potrace_path_SegmentCount
func potrace_path_SegmentCount(path C.uintptr_t) C.int {
	return C.int(capi.PathSegmentCount(h(path)))
}

//export potrace_path_SegmentTag
func potrace_path_SegmentTag(path C.uintptr_t, index C.int) C.int {
	return C.int(capi.PathSegmentTag(h(path), int(index)))
}

//export potrace_path_SegmentPoints
func potrace_path_SegmentPoints(path C.uintptr_t, bufferSize C.int, buffer *C.double) C.bool {
	return C.bool(capi.PathSegmentPoints(h(path), doubles(bufferSize, buffer)))
}

//export potrace_path_SegmentCornerPoints
func potrace_path_SegmentCornerPoints(path C.uintptr_t, index, bufferSize C.int, buffer *C.double) C.bool {
	return C.bool(capi.PathSegmentCornerPoints(h(path), int(index), doubles(bufferSize, buffer)))
}

//export potrace_path_SegmentCurvePoints
func potrace_path_SegmentCurvePoints(path C.uintptr_t, index, bufferSize C.int, buffer *C.double) C.bool {
	return C.bool(capi.PathSegmentCurvePoints(h(path), int(index), doubles(bufferSize, buffer)))
}
