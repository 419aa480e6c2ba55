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

// DepositionDirections converts a wind-direction raster from
// meteorological convention (degrees the wind is coming from) to the
// direction material is carried toward, by reversing each direction 180°
// and wrapping the result into (0, 360]. A wrapped value of exactly 0 is
// mapped to 1 so that later trigonometry never sees a degenerate zero
// direction. The input raster is not modified.
func DepositionDirections(windDir *Grid) *Grid {
	out := windDir.like()
	for i, v := range windDir.Data.Elements {
		if math.IsNaN(v) {
			out.Data.Elements[i] = math.NaN()
			continue
		}
		d := math.Mod(v+180, 360)
		if d < 0 {
			d += 360
		}
		if d == 0 {
			d = 1
		}
		out.Data.Elements[i] = d
	}
	return out
}

// crosswindField computes the lateral offset of every cell from the
// plume centerline. A cell at distance d whose bearing to the source
// differs from the local deposition direction by θ lies a chord length
// sqrt(2·d²·(1−cos θ)) off the wind-aligned path.
func crosswindField(dist, bearing, depDir *Grid) (*Grid, error) {
	if err := dist.checkAligned(bearing); err != nil {
		return nil, err
	}
	if err := dist.checkAligned(depDir); err != nil {
		return nil, err
	}
	out := dist.like()
	for i, d := range dist.Data.Elements {
		θ := (bearing.Data.Elements[i] - depDir.Data.Elements[i]) * math.Pi / 180
		out.Data.Elements[i] = math.Sqrt(2 * d * d * (1 - math.Cos(θ)))
	}
	return out, nil
}
