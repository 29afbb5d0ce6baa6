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

// ParamNew returns a new parameter set with the default values.
func ParamNew() Handle {
	return newHandle(vectorize.NewParams())
}

// ParamDelete releases a parameter set.
func ParamDelete(h Handle) {
	release[*vectorize.Params](h, "ParamDelete")
}

// ParamSetDefault restores the default values of a parameter set.
func ParamSetDefault(h Handle) {
	if p, ok := lookup[*vectorize.Params](h, "ParamSetDefault"); ok {
		p.Reset()
	}
}

// ParamGetSetDouble reads or writes the real-valued parameter selected by
// which (0 = alpha max, 1 = optimisation tolerance).
//
// If set is true, value is clamped to the range of the parameter and
// stored. The current (possibly clamped) value is returned. For an
// invalid handle or an unknown parameter, value is returned unchanged.
func ParamGetSetDouble(h Handle, which int, set bool, value float64) float64 {
	p, ok := lookup[*vectorize.Params](h, "ParamGetSetDouble")
	if !ok {
		return value
	}

	k := vectorize.RealKey(which)
	var out float64
	var err error
	if set {
		out, err = p.SetReal(k, value)
	} else {
		out, err = p.GetReal(k)
	}
	if err != nil {
		return value
	}
	return out
}

// ParamGetSetInt reads or writes the integer-valued parameter selected by
// which (0 = turd size, 1 = turn policy, 2 = curve optimisation).
//
// The rules are the same as for [ParamGetSetDouble].
func ParamGetSetInt(h Handle, which int, set bool, value int) int {
	p, ok := lookup[*vectorize.Params](h, "ParamGetSetInt")
	if !ok {
		return value
	}

	k := vectorize.IntKey(which)
	var out int
	var err error
	if set {
		out, err = p.SetInt(k, value)
	} else {
		out, err = p.GetInt(k)
	}
	if err != nil {
		return value
	}
	return out
}
