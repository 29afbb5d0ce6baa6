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
	"io"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// settingsFile is the on-disk form of [Params].
type settingsFile struct {
	TurdSize      int     `toml:"turd_size"`
	TurnPolicy    int     `toml:"turn_policy"`
	AlphaMax      float64 `toml:"alpha_max"`
	OptiCurve     bool    `toml:"opti_curve"`
	OptTolerance  float64 `toml:"opt_tolerance"`
	Threshold     float64 `toml:"threshold"`
	IncludeBorder bool    `toml:"include_border"`
}

// LoadSettings reads parameters in TOML format from r and stores them in p.
//
// Only the keys present in the input are changed, all other parameters
// keep their current values. Values are clamped as by the setters of
// [Params]. Unknown keys are ignored.
func LoadSettings(r io.Reader, p *Params) error {
	if r == nil || p == nil {
		return fmt.Errorf("load settings: %w", ErrNilArgument)
	}

	var s settingsFile
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if md.IsDefined("turd_size") {
		p.SetTurdSize(s.TurdSize)
	}
	if md.IsDefined("turn_policy") {
		p.SetTurnPolicy(TurnPolicy(s.TurnPolicy))
	}
	if md.IsDefined("alpha_max") {
		p.SetAlphaMax(s.AlphaMax)
	}
	if md.IsDefined("opti_curve") {
		p.SetOptiCurve(s.OptiCurve)
	}
	if md.IsDefined("opt_tolerance") {
		p.SetOptTolerance(s.OptTolerance)
	}
	if md.IsDefined("threshold") {
		p.SetThreshold(s.Threshold)
	}
	if md.IsDefined("include_border") {
		p.SetIncludeBorder(s.IncludeBorder)
	}

	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		Logger().Debug("ignoring unknown settings", zap.Strings("keys", keys))
	}
	return nil
}

// SaveSettings writes all parameters of p to w, in the format read by
// [LoadSettings].
func SaveSettings(w io.Writer, p *Params) error {
	if w == nil || p == nil {
		return fmt.Errorf("save settings: %w", ErrNilArgument)
	}

	s := settingsFile{
		TurdSize:      p.TurdSize(),
		TurnPolicy:    int(p.TurnPolicy()),
		AlphaMax:      p.AlphaMax(),
		OptiCurve:     p.OptiCurve(),
		OptTolerance:  p.OptTolerance(),
		Threshold:     p.Threshold(),
		IncludeBorder: p.IncludeBorder(),
	}
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
