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

import "fmt"

// A Model holds the immutable inputs of one source-area run. All rasters
// are co-registered; this is verified once, when the model is created,
// and never recomputed.
type Model struct {
	Elevation *Grid
	WindSpeed *Grid
	Samples   []SampleCell
	Params    PhysicalParameters

	// depositionDir is the wind-direction raster converted to the
	// direction material moves toward.
	depositionDir *Grid

	// vg is the settling velocity, computed once and reused for every
	// sample cell.
	vg float64

	// NProcs is the number of worker goroutines for the parallel
	// phase. If zero, GOMAXPROCS is used.
	NProcs int
}

// NewModel assembles a run from its inputs. windDir is in meteorological
// convention (degrees the wind is coming from); it is normalized here.
// An error is returned if the rasters are not co-registered, if the
// parameters are unusable, or if there are no sample cells.
func NewModel(elev, windDir, windSpeed *Grid, samples []SampleCell, p PhysicalParameters) (*Model, error) {
	if err := elev.checkAligned(windDir); err != nil {
		return nil, err
	}
	if err := elev.checkAligned(windSpeed); err != nil {
		return nil, err
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("charplume: no sample cells: the watershed boundary does not intersect the grid")
	}
	return &Model{
		Elevation:     elev,
		WindSpeed:     windSpeed,
		Samples:       samples,
		Params:        p,
		depositionDir: DepositionDirections(windDir),
		vg:            p.SettlingVelocity(),
	}, nil
}
