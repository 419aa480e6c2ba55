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
	"testing"
)

func TestDepositionDirections(t *testing.T) {
	const testTolerance = 1e-12
	cases := []struct{ met, dep float64 }{
		{0, 180},
		{90, 270},
		{180, 1}, // wraps to 0, which is disallowed
		{270, 90},
		{360, 180},
		{45, 225},
		{315, 135},
	}
	g := NewGrid(1, len(cases), 0, 30, 30)
	for i, c := range cases {
		g.Set(c.met, 0, i)
	}
	dep := DepositionDirections(g)
	for i, c := range cases {
		if absDifferent(dep.Get(0, i), c.dep, testTolerance) {
			t.Errorf("meteorological %g°: got %g°, want %g°", c.met, dep.Get(0, i), c.dep)
		}
	}
	if g.Get(0, 0) != 0 {
		t.Error("input raster was mutated")
	}

	g.Set(math.NaN(), 0, 0)
	dep = DepositionDirections(g)
	if !math.IsNaN(dep.Get(0, 0)) {
		t.Error("missing directions should stay missing")
	}
}

func TestCrosswindDistance(t *testing.T) {
	const testTolerance = 1e-9

	dist := NewGrid(1, 3, 0, 30, 30)
	bearing := NewGrid(1, 3, 0, 30, 30)
	depDir := NewGrid(1, 3, 0, 30, 30)

	// Aligned with the wind, perpendicular to it, and directly upwind.
	for i, c := range []struct{ d, b, w float64 }{
		{100, 90, 90},
		{100, 90, 180},
		{100, 90, 270},
	} {
		dist.Set(c.d, 0, i)
		bearing.Set(c.b, 0, i)
		depDir.Set(c.w, 0, i)
	}

	y, err := crosswindField(dist, bearing, depDir)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 100 * math.Sqrt2, 200}
	for i, w := range want {
		if absDifferent(y.Get(0, i), w, testTolerance) {
			t.Errorf("case %d: got %g, want %g", i, y.Get(0, i), w)
		}
	}

	misaligned := NewGrid(2, 3, 0, 60, 30)
	if _, err := crosswindField(dist, bearing, misaligned); err == nil {
		t.Error("expected alignment error")
	}
}
