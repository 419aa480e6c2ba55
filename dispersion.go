/*
Copyright © 2026 the CharPlume authors.
This file is part of CharPlume.

CharPlume is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

CharPlume is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with CharPlume.  If not, see <http://www.gnu.org/licenses/>.
*/

package charplume

import (
	"fmt"
	"math"
)

// A Warning records a numerical edge case that was recovered locally
// during a run. Warnings are diagnostics, not errors: the affected
// contribution has already been replaced with zero.
type Warning struct {
	Sample   int    // index of the sample cell being simulated
	Row, Col int    // affected grid cell; -1 for whole-raster warnings
	Message  string
}

func (w Warning) String() string {
	if w.Row < 0 {
		return fmt.Sprintf("sample %d: %s", w.Sample, w.Message)
	}
	return fmt.Sprintf("sample %d cell (%d,%d): %s", w.Sample, w.Row, w.Col, w.Message)
}

// sourceDispersion computes the normalized deposition-probability raster
// for a single sample cell. Each cell of the result holds the
// probability that material sampled at s originated there; finite cells
// sum to 1 unless the source is degenerate (no detectable dispersion
// anywhere), in which case the raster is uniformly zero and a warning is
// recorded.
//
// Cells where the formula is undefined (zero distance, still air,
// missing input data, overflow) are clamped to 0: a cell coincident with
// the source, or one the plume cannot reach, contributes no measurable
// plume mass in this discretized model. This is domain policy, not error
// suppression.
func (m *Model) sourceDispersion(sample int, s SampleCell) (*Grid, []Warning, error) {
	p := m.Params
	dist := distanceField(m.Elevation, s)
	bearing := bearingField(m.Elevation, s)
	crosswind, err := crosswindField(dist, bearing, m.depositionDir)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	out := m.Elevation.like()
	cy2 := p.Cy * p.Cy
	cz2 := p.Cz * p.Cz
	for j := 0; j < out.Ny(); j++ {
		for i := 0; i < out.Nx(); i++ {
			x := dist.Get(j, i)
			y := crosswind.Get(j, i)
			u := m.WindSpeed.Get(j, i)
			hz := p.H + (m.Elevation.Get(j, i) - s.Elev)
			if x <= 0 || u <= 0 || math.IsNaN(u) || math.IsNaN(hz) {
				continue
			}
			qx, err := p.plumeFlux(x, hz, u, m.vg)
			if err != nil {
				warnings = append(warnings, Warning{
					Sample: sample, Row: j, Col: i, Message: err.Error(),
				})
				continue
			}
			xp := math.Pow(x, 2-p.N)
			v := 2 * m.vg * qx / (u * math.Pi * p.Cy * p.Cz * xp) *
				math.Exp(-y*y/(cy2*xp)) *
				math.Exp(-hz*hz/(cz2*xp))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			out.Set(v, j, i)
		}
	}

	// Density to per-cell mass, then normalize to a probability mass
	// raster.
	out.Scale(out.Dx * out.Dx)
	total := out.Sum()
	if total == 0 {
		warnings = append(warnings, Warning{
			Sample: sample, Row: -1, Col: -1,
			Message: "degenerate source: no detectable dispersion",
		})
		return out, warnings, nil
	}
	out.Scale(1 / total)
	return out, warnings, nil
}
