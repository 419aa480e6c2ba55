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

	"github.com/ctessum/geom"
)

func TestSampleCells(t *testing.T) {
	elev := NewGrid(4, 4, 0, 120, 30)
	for i := range elev.Data.Elements {
		elev.Data.Elements[i] = 100 + float64(i)
	}
	// One cell inside the watershed lacks elevation data.
	elev.Set(math.NaN(), 1, 0)

	// A rectangle covering the left half of the grid.
	watershed := geom.Polygon{{
		{X: 0, Y: 0},
		{X: 60, Y: 0},
		{X: 60, Y: 120},
		{X: 0, Y: 120},
	}}

	cells := SampleCells(elev, watershed)
	if len(cells) != 7 {
		t.Fatalf("got %d sample cells, want 7", len(cells))
	}
	for _, c := range cells {
		if c.Col > 1 {
			t.Errorf("cell (%d,%d) is outside the watershed", c.Row, c.Col)
		}
		if c.Row == 1 && c.Col == 0 {
			t.Errorf("cell (1,0) has no elevation and should be excluded")
		}
		if x, y := elev.CellCenter(c.Row, c.Col); x != c.X || y != c.Y {
			t.Errorf("cell (%d,%d): coordinate (%g,%g) does not match center (%g,%g)",
				c.Row, c.Col, c.X, c.Y, x, y)
		}
		if want := elev.Get(c.Row, c.Col); c.Elev != want {
			t.Errorf("cell (%d,%d): elevation %g, want %g", c.Row, c.Col, c.Elev, want)
		}
	}
}

func TestSampleCellsEmpty(t *testing.T) {
	elev := NewGrid(4, 4, 0, 120, 30)
	outside := geom.Polygon{{
		{X: 1000, Y: 1000},
		{X: 1060, Y: 1000},
		{X: 1060, Y: 1060},
		{X: 1000, Y: 1060},
	}}
	if cells := SampleCells(elev, outside); len(cells) != 0 {
		t.Errorf("got %d sample cells, want 0", len(cells))
	}
}
