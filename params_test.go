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
	"errors"
	"math"
	"testing"
)

func TestParamsDefaults(t *testing.T) {
	p := NewParams()
	if p.TurdSize() != DefaultTurdSize ||
		p.TurnPolicy() != DefaultTurnPolicy ||
		p.AlphaMax() != DefaultAlphaMax ||
		p.OptiCurve() != DefaultOptiCurve ||
		p.OptTolerance() != DefaultOptTolerance ||
		p.Threshold() != DefaultThreshold ||
		p.IncludeBorder() != DefaultIncludeBorder {
		t.Errorf("unexpected defaults: %+v", p)
	}

	p.SetTurdSize(50)
	p.SetTurnPolicy(TurnRight)
	p.SetThreshold(0.9)
	p.SetIncludeBorder(false)
	p.Reset()
	diff(t, NewParams(), p, paramsComparer)
}

func TestParamsClamp(t *testing.T) {
	realCases := []struct {
		key  RealKey
		in   float64
		want float64
	}{
		{KeyAlphaMax, 0.5, 0.5},
		{KeyAlphaMax, -1, 0},
		{KeyAlphaMax, 2, 1.34},
		{KeyAlphaMax, math.Inf(1), 1.34},
		{KeyAlphaMax, math.NaN(), 0},
		{KeyOptTolerance, 0.3, 0.3},
		{KeyOptTolerance, 1.5, 1},
		{KeyOptTolerance, -0.1, 0},
	}
	for _, c := range realCases {
		p := NewParams()
		got, err := p.SetReal(c.key, c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("SetReal(%d, %g) = %g, want %g", c.key, c.in, got, c.want)
		}
		if v, _ := p.GetReal(c.key); v != c.want {
			t.Errorf("GetReal(%d) = %g, want %g", c.key, v, c.want)
		}
	}

	intCases := []struct {
		key  IntKey
		in   int
		want int
	}{
		{KeyTurdSize, 7, 7},
		{KeyTurdSize, -5, 0},
		{KeyTurdSize, 1000, 100},
		{KeyTurnPolicy, 3, 3},
		{KeyTurnPolicy, 9, int(TurnRandom)},
		{KeyTurnPolicy, -1, int(TurnBlack)},
		{KeyOptiCurve, 0, 0},
		{KeyOptiCurve, 5, 1},
	}
	for _, c := range intCases {
		p := NewParams()
		got, err := p.SetInt(c.key, c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("SetInt(%d, %d) = %d, want %d", c.key, c.in, got, c.want)
		}
		if v, _ := p.GetInt(c.key); v != c.want {
			t.Errorf("GetInt(%d) = %d, want %d", c.key, v, c.want)
		}
	}

	p := NewParams()
	if v := p.SetThreshold(1.5); v != 1 {
		t.Errorf("SetThreshold(1.5) = %g", v)
	}
	if v := p.SetAlphaMax(-3); v != 0 {
		t.Errorf("SetAlphaMax(-3) = %g", v)
	}
}

func TestParamsUnknownKey(t *testing.T) {
	p := NewParams()
	before := p.Clone()

	if _, err := p.SetReal(RealKey(2), 0.5); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("SetReal(2): %v", err)
	}
	if _, err := p.GetReal(RealKey(-1)); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("GetReal(-1): %v", err)
	}
	if _, err := p.SetInt(IntKey(3), 1); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("SetInt(3): %v", err)
	}
	if _, err := p.GetInt(IntKey(17)); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("GetInt(17): %v", err)
	}
	diff(t, before, p, paramsComparer)

	if lo, hi := RealKey(5).Range(); lo != 0 || hi != 0 {
		t.Errorf("range of unknown key = [%g, %g]", lo, hi)
	}
	if lo, hi := KeyTurdSize.Range(); lo != 0 || hi != 100 {
		t.Errorf("range of turd size = [%d, %d]", lo, hi)
	}
}

func TestParamsClone(t *testing.T) {
	p := NewParams()
	q := p.Clone()
	q.SetOptiCurve(false)
	if !p.OptiCurve() {
		t.Error("Clone is not independent")
	}
}

func TestTurnPolicyString(t *testing.T) {
	if s := TurnMinority.String(); s != "minority" {
		t.Errorf("TurnMinority.String() = %q", s)
	}
	if s := TurnPolicy(42).String(); s != "TurnPolicy(42)" {
		t.Errorf("TurnPolicy(42).String() = %q", s)
	}
}
