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

package charplumeutil

import "testing"

func TestPhysicalParameterDefaults(t *testing.T) {
	p, err := physicalParameters(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.H != 10 || p.D != 250 || p.Cy != 0.21 || p.Cz != 0.12 || p.N != 0.25 {
		t.Errorf("unexpected plume defaults: %+v", p)
	}
	if p.Qo != 100000 || p.Pp != 0.5 || p.Pf != 0.00127 || p.V != 0.142 || p.G != 981 {
		t.Errorf("unexpected physical defaults: %+v", p)
	}
	want := []float64{0.68, 0.95, 0.997}
	if len(p.Bands) != len(want) {
		t.Fatalf("bands: got %v, want %v", p.Bands, want)
	}
	for i, b := range p.Bands {
		if b != want[i] {
			t.Errorf("bands: got %v, want %v", p.Bands, want)
			break
		}
	}
}

func TestBadBandFractions(t *testing.T) {
	Cfg.Set("Bands", []string{"0.68", "bogus"})
	defer Cfg.Set("Bands", []string{"0.68", "0.95", "0.997"})
	if _, err := physicalParameters(Cfg); err == nil {
		t.Error("expected an error for an unparseable band fraction")
	}
}
