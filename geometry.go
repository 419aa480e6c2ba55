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

import "math"

// distanceField returns a raster, co-registered with ref, holding the
// euclidean distance from each cell center to the sample cell.
func distanceField(ref *Grid, s SampleCell) *Grid {
	d := ref.like()
	for j := 0; j < d.Ny(); j++ {
		for i := 0; i < d.Nx(); i++ {
			x, y := d.CellCenter(j, i)
			d.Set(math.Hypot(s.X-x, s.Y-y), j, i)
		}
	}
	return d
}

// bearingField returns a raster, co-registered with ref, holding the
// compass azimuth (degrees, 0 = north, increasing clockwise) from each
// cell center toward the sample cell. The sample cell itself is the
// bearing origin and is assigned azimuth 0.
func bearingField(ref *Grid, s SampleCell) *Grid {
	b := ref.like()
	for j := 0; j < b.Ny(); j++ {
		for i := 0; i < b.Nx(); i++ {
			x, y := b.CellCenter(j, i)
			az := math.Atan2(s.X-x, s.Y-y) * 180 / math.Pi
			if az < 0 {
				az += 360
			}
			b.Set(az, j, i)
		}
	}
	return b
}
