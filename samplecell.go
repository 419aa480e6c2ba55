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

	"github.com/ctessum/geom"
)

// A SampleCell is one grid cell inside the watershed boundary. The
// dispersion model is run once per SampleCell, treating the cell as a
// candidate charcoal source.
type SampleCell struct {
	Row, Col int     // grid indices
	X, Y     float64 // real-world coordinate of the cell center
	Elev     float64 // elevation sampled from the elevation grid
}

// SampleCells intersects the watershed boundary with the elevation grid,
// returning one SampleCell for every grid cell whose center falls within
// the boundary. Cells with missing elevation are excluded.
func SampleCells(elev *Grid, watershed geom.Polygonal) []SampleCell {
	var cells []SampleCell
	for j := 0; j < elev.Ny(); j++ {
		for i := 0; i < elev.Nx(); i++ {
			z := elev.Get(j, i)
			if math.IsNaN(z) {
				continue
			}
			x, y := elev.CellCenter(j, i)
			if in := (geom.Point{X: x, Y: y}).Within(watershed); in == geom.Inside || in == geom.OnEdge {
				cells = append(cells, SampleCell{Row: j, Col: i, X: x, Y: y, Elev: z})
			}
		}
	}
	return cells
}
