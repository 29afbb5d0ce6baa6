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
	"math"
)

// TurnPolicy specifies how ambiguities are resolved when the bitmap is
// decomposed into paths.
type TurnPolicy int

// These are the turn policies understood by the tracer.
const (
	TurnBlack    TurnPolicy = iota // connect black (foreground) components
	TurnWhite                      // connect white (background) components
	TurnLeft                       // always take a left turn
	TurnRight                      // always take a right turn
	TurnMinority                   // connect the locally less frequent colour
	TurnMajority                   // connect the locally more frequent colour
	TurnRandom                     // make a (more or less) random choice
)

func (tp TurnPolicy) String() string {
	switch tp {
	case TurnBlack:
		return "black"
	case TurnWhite:
		return "white"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnMinority:
		return "minority"
	case TurnMajority:
		return "majority"
	case TurnRandom:
		return "random"
	default:
		return fmt.Sprintf("TurnPolicy(%d)", int(tp))
	}
}

// Default parameter values, as used by the potrace library.
const (
	DefaultTurdSize      = 2
	DefaultTurnPolicy    = TurnMinority
	DefaultAlphaMax      = 1.0
	DefaultOptiCurve     = true
	DefaultOptTolerance  = 0.2
	DefaultThreshold     = 0.5
	DefaultIncludeBorder = true
)

// RealKey selects one of the real-valued tracing parameters.
type RealKey int

// The real-valued parameters. The numeric values are part of the flat API.
const (
	KeyAlphaMax     RealKey = 0
	KeyOptTolerance RealKey = 1
)

// IntKey selects one of the integer-valued tracing parameters.
type IntKey int

// The integer-valued parameters. The numeric values are part of the flat API.
const (
	KeyTurdSize   IntKey = 0
	KeyTurnPolicy IntKey = 1
	KeyOptiCurve  IntKey = 2
)

type realRange struct {
	lo, hi float64
}

type intRange struct {
	lo, hi int
}

// The useful range of AlphaMax ends at 4/3 (no corners at all); the upper
// limit is rounded up to a value which looks better in user interfaces.
var realRanges = [...]realRange{
	KeyAlphaMax:     {0, 1.34},
	KeyOptTolerance: {0, 1},
}

var intRanges = [...]intRange{
	KeyTurdSize:   {0, 100},
	KeyTurnPolicy: {int(TurnBlack), int(TurnRandom)},
	KeyOptiCurve:  {0, 1},
}

func (k RealKey) valid() bool {
	return k >= 0 && int(k) < len(realRanges)
}

func (k IntKey) valid() bool {
	return k >= 0 && int(k) < len(intRanges)
}

// Range returns the closed interval of valid values for k.
func (k RealKey) Range() (lo, hi float64) {
	if !k.valid() {
		return 0, 0
	}
	r := realRanges[k]
	return r.lo, r.hi
}

// Range returns the closed interval of valid values for k.
func (k IntKey) Range() (lo, hi int) {
	if !k.valid() {
		return 0, 0
	}
	r := intRanges[k]
	return r.lo, r.hi
}

func (r realRange) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.lo
	}
	return min(max(v, r.lo), r.hi)
}

func (r intRange) clamp(v int) int {
	return min(max(v, r.lo), r.hi)
}

// Params holds the tracing parameters.
//
// All setters clamp their argument to the valid range of the parameter,
// so that a Params value is always usable for tracing.
//
// The zero value is not useful; use [NewParams] to get a Params with the
// default settings.
type Params struct {
	reals [len(realRanges)]float64
	ints  [len(intRanges)]int

	// The following are not used by the tracer itself.
	threshold     float64
	includeBorder bool
}

// NewParams returns tracing parameters with the library defaults.
func NewParams() *Params {
	p := &Params{}
	p.Reset()
	return p
}

// Reset restores all parameters to their default values.
func (p *Params) Reset() {
	p.reals[KeyAlphaMax] = DefaultAlphaMax
	p.reals[KeyOptTolerance] = DefaultOptTolerance
	p.ints[KeyTurdSize] = DefaultTurdSize
	p.ints[KeyTurnPolicy] = int(DefaultTurnPolicy)
	p.ints[KeyOptiCurve] = 1
	p.threshold = DefaultThreshold
	p.includeBorder = DefaultIncludeBorder
}

// Clone returns an independent copy of p.
func (p *Params) Clone() *Params {
	c := *p
	return &c
}

// GetReal returns the value of a real-valued parameter.
func (p *Params) GetReal(k RealKey) (float64, error) {
	if !k.valid() {
		return 0, fmt.Errorf("real key %d: %w", int(k), ErrUnknownKey)
	}
	return p.reals[k], nil
}

// SetReal clamps v to the range of the parameter and stores it.
// The stored value is returned.
func (p *Params) SetReal(k RealKey, v float64) (float64, error) {
	if !k.valid() {
		return v, fmt.Errorf("real key %d: %w", int(k), ErrUnknownKey)
	}
	p.reals[k] = realRanges[k].clamp(v)
	return p.reals[k], nil
}

// GetInt returns the value of an integer-valued parameter.
func (p *Params) GetInt(k IntKey) (int, error) {
	if !k.valid() {
		return 0, fmt.Errorf("int key %d: %w", int(k), ErrUnknownKey)
	}
	return p.ints[k], nil
}

// SetInt clamps v to the range of the parameter and stores it.
// The stored value is returned.
func (p *Params) SetInt(k IntKey, v int) (int, error) {
	if !k.valid() {
		return v, fmt.Errorf("int key %d: %w", int(k), ErrUnknownKey)
	}
	p.ints[k] = intRanges[k].clamp(v)
	return p.ints[k], nil
}

// AlphaMax returns the corner threshold.
// Smaller values give more corners; 0 gives a polygon.
func (p *Params) AlphaMax() float64 {
	return p.reals[KeyAlphaMax]
}

// SetAlphaMax sets the corner threshold, clamped to [0, 1.34].
func (p *Params) SetAlphaMax(v float64) float64 {
	p.reals[KeyAlphaMax] = realRanges[KeyAlphaMax].clamp(v)
	return p.reals[KeyAlphaMax]
}

// OptTolerance returns the curve optimisation tolerance.
func (p *Params) OptTolerance() float64 {
	return p.reals[KeyOptTolerance]
}

// SetOptTolerance sets the curve optimisation tolerance, clamped to [0, 1].
// Larger values give fewer segments at the cost of accuracy.
func (p *Params) SetOptTolerance(v float64) float64 {
	p.reals[KeyOptTolerance] = realRanges[KeyOptTolerance].clamp(v)
	return p.reals[KeyOptTolerance]
}

// TurdSize returns the despeckling limit: paths enclosing at most this
// many pixels are dropped.
func (p *Params) TurdSize() int {
	return p.ints[KeyTurdSize]
}

// SetTurdSize sets the despeckling limit, clamped to [0, 100].
func (p *Params) SetTurdSize(v int) int {
	p.ints[KeyTurdSize] = intRanges[KeyTurdSize].clamp(v)
	return p.ints[KeyTurdSize]
}

// TurnPolicy returns the turn policy.
func (p *Params) TurnPolicy() TurnPolicy {
	return TurnPolicy(p.ints[KeyTurnPolicy])
}

// SetTurnPolicy sets the turn policy. Out of range values are clamped to
// the nearest valid policy.
func (p *Params) SetTurnPolicy(tp TurnPolicy) TurnPolicy {
	p.ints[KeyTurnPolicy] = intRanges[KeyTurnPolicy].clamp(int(tp))
	return TurnPolicy(p.ints[KeyTurnPolicy])
}

// OptiCurve reports whether curve optimisation is enabled.
func (p *Params) OptiCurve() bool {
	return p.ints[KeyOptiCurve] != 0
}

// SetOptiCurve enables or disables curve optimisation.
func (p *Params) SetOptiCurve(on bool) {
	p.ints[KeyOptiCurve] = 0
	if on {
		p.ints[KeyOptiCurve] = 1
	}
}

// Threshold returns the brightness threshold used by [NewBitmapFromImage].
func (p *Params) Threshold() float64 {
	return p.threshold
}

// SetThreshold sets the brightness threshold, clamped to [0, 1].
func (p *Params) SetThreshold(v float64) float64 {
	p.threshold = unitRange.clamp(v)
	return p.threshold
}

// IncludeBorder reports whether [Result.Data] should add a rectangle
// around the traced bitmap by default.
func (p *Params) IncludeBorder() bool {
	return p.includeBorder
}

// SetIncludeBorder sets the value returned by [Params.IncludeBorder].
func (p *Params) SetIncludeBorder(on bool) {
	p.includeBorder = on
}

var unitRange = realRange{0, 1}
