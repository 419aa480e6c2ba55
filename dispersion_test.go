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
	"math"
	"strings"
	"testing"
)

// flatModel builds a model over an ny×nx grid with constant elevation,
// wind direction (meteorological convention), and wind speed, sampling
// at the given cells.
func flatModel(t *testing.T, ny, nx int, dx, elev, windDir, windSpeed float64, sampleIdx [][2]int) *Model {
	t.Helper()
	e := NewGrid(ny, nx, 0, float64(ny)*dx, dx)
	wd := e.like()
	ws := e.like()
	for i := range e.Data.Elements {
		e.Data.Elements[i] = elev
		wd.Data.Elements[i] = windDir
		ws.Data.Elements[i] = windSpeed
	}
	var samples []SampleCell
	for _, idx := range sampleIdx {
		x, y := e.CellCenter(idx[0], idx[1])
		samples = append(samples, SampleCell{Row: idx[0], Col: idx[1], X: x, Y: y, Elev: elev})
	}
	m, err := NewModel(e, wd, ws, samples, DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// A flat terrain with uniform easterly transport should produce a
// deposition raster that is normalized, mirror-symmetric about the
// downwind axis, and monotonically decaying away from the source.
func TestSourceDispersionFlatTerrain(t *testing.T) {
	const testTolerance = 1e-9

	// Wind from 270° carries material toward 90° after normalization.
	m := flatModel(t, 11, 11, 200, 100, 270, 5, [][2]int{{5, 5}})
	raster, warnings, err := m.sourceDispersion(0, m.Samples[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	// The cell coincident with the source receives no plume mass.
	if v := raster.Get(5, 5); v != 0 {
		t.Errorf("source cell: got %g, want exactly 0", v)
	}

	// Normalization: a probability mass raster sums to 1.
	if sum := raster.Sum(); absDifferent(sum, 1, testTolerance) {
		t.Errorf("raster sum: got %.12g, want 1", sum)
	}

	// Non-negativity.
	for i, v := range raster.Data.Elements {
		if v < 0 || math.IsNaN(v) {
			t.Fatalf("element %d: invalid probability %g", i, v)
		}
	}

	// Mirror symmetry about the downwind (east-west) axis through the
	// source.
	for k := 1; k <= 5; k++ {
		for i := 0; i < 11; i++ {
			a := raster.Get(5-k, i)
			b := raster.Get(5+k, i)
			if a+b > 0 && different(a, b, testTolerance) {
				t.Errorf("rows %d/%d col %d: %g != %g", 5-k, 5+k, i, a, b)
			}
		}
	}

	// Deposition decays monotonically with distance from the source
	// along the upwind centerline, where the source contribution is
	// largest.
	for i := 4; i > 0; i-- {
		if raster.Get(5, i) <= raster.Get(5, i-1) {
			t.Errorf("cols %d,%d: %g should exceed %g",
				i, i-1, raster.Get(5, i), raster.Get(5, i-1))
		}
	}

	// The decay holds along off-axis bearings too. On the northwest
	// diagonal the crosswind offset grows with distance, so each step
	// away from the source compounds both decay terms.
	for k := 1; k < 5; k++ {
		near := raster.Get(5-k, 5-k)
		far := raster.Get(5-k-1, 5-k-1)
		if near <= far {
			t.Errorf("diagonal cells %d,%d: %g should exceed %g",
				k, k+1, near, far)
		}
	}

	// Cells upwind of the sampling point lie on the plume centerline
	// and must outweigh downwind cells at the same distance.
	if raster.Get(5, 4) <= raster.Get(5, 6) {
		t.Errorf("upwind cell %g should exceed downwind cell %g",
			raster.Get(5, 4), raster.Get(5, 6))
	}
}

// Still air everywhere produces no detectable dispersion; the source is
// degenerate and its raster stays uniformly zero rather than NaN.
func TestSourceDispersionStillAir(t *testing.T) {
	m := flatModel(t, 5, 5, 30, 100, 90, 0, [][2]int{{2, 2}})
	raster, warnings, err := m.sourceDispersion(0, m.Samples[0])
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range raster.Data.Elements {
		if v != 0 {
			t.Fatalf("element %d: got %g, want 0", i, v)
		}
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w.Message, "degenerate source") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a degenerate-source warning, got %v", warnings)
	}
}

// Missing input data is clamped to zero in the output rather than
// spreading NaN through the raster.
func TestSourceDispersionMissingData(t *testing.T) {
	m := flatModel(t, 5, 5, 200, 100, 270, 5, [][2]int{{2, 2}})
	m.WindSpeed.Set(math.NaN(), 0, 0)
	m.Elevation.Data.Elements[1] = math.NaN()
	raster, _, err := m.sourceDispersion(0, m.Samples[0])
	if err != nil {
		t.Fatal(err)
	}
	if v := raster.Get(0, 0); v != 0 {
		t.Errorf("missing wind speed: got %g, want 0", v)
	}
	if v := raster.Data.Elements[1]; v != 0 {
		t.Errorf("missing elevation: got %g, want 0", v)
	}
	if sum := raster.Sum(); absDifferent(sum, 1, 1e-9) {
		t.Errorf("raster sum: got %.12g, want 1", sum)
	}
}
