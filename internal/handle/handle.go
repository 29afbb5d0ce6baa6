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

// Package handle maps opaque integer handles to Go values, so that
// objects can be referred to from outside the Go heap.
package handle

import "sync"

// Handle identifies a value stored in a [Table]. The zero Handle is never
// issued and stands for "no object".
type Handle uintptr

// Table stores values under non-zero handles.
// Handles are never reused while the table exists.
//
// A Table is safe for concurrent use.
type Table struct {
	mu     sync.Mutex
	values map[Handle]any
	last   Handle
}

// New stores v and returns a fresh handle for it.
func (t *Table) New(v any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.values == nil {
		t.values = make(map[Handle]any)
	}
	t.last++
	t.values[t.last] = v
	return t.last
}

// Get returns the value stored under h.
func (t *Table) Get(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.values[h]
	return v, ok
}

// Delete removes h from the table and returns the value that was stored
// under it. Deleting an unknown handle has no effect.
func (t *Table) Delete(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.values[h]
	if ok {
		delete(t.values, h)
	}
	return v, ok
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.values)
}

// Lookup returns the value stored under h, if it has type T.
func Lookup[T any](t *Table, h Handle) (T, bool) {
	v, ok := t.Get(h)
	if !ok {
		var zero T
		return zero, false
	}
	x, ok := v.(T)
	return x, ok
}
