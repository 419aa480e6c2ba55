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

// Package charplume estimates the source area of charcoal deposited at a
// sampling location by inverting a Gaussian-plume dispersion model over
// every cell of a watershed.
package charplume

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
)

// Version gives the version number.
const Version = "0.1.0"

// A Grid is a georeferenced raster. Cell values are held in a dense
// row-major array with shape [ny, nx]; row 0 is the northernmost row.
// Missing data is represented by NaN, which propagates through
// arithmetic the same way a missing value must.
type Grid struct {
	Data *sparse.DenseArray

	// Xmin and Ymax are the coordinates of the outer corner of
	// cell (0, 0), and Dx is the cell edge length. Cells are square.
	Xmin, Ymax, Dx float64
}

// NewGrid creates a grid of the given shape and georeferencing with all
// cells set to zero.
func NewGrid(ny, nx int, xmin, ymax, dx float64) *Grid {
	return &Grid{
		Data: sparse.ZerosDense(ny, nx),
		Xmin: xmin,
		Ymax: ymax,
		Dx:   dx,
	}
}

// Ny returns the number of rows in the grid.
func (g *Grid) Ny() int { return g.Data.Shape[0] }

// Nx returns the number of columns in the grid.
func (g *Grid) Nx() int { return g.Data.Shape[1] }

// like creates a zero-valued grid co-registered with g.
func (g *Grid) like() *Grid {
	return NewGrid(g.Ny(), g.Nx(), g.Xmin, g.Ymax, g.Dx)
}

// Clone creates a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{Data: g.Data.Copy(), Xmin: g.Xmin, Ymax: g.Ymax, Dx: g.Dx}
}

// Get returns the value of cell (j, i), where j is the row index.
func (g *Grid) Get(j, i int) float64 { return g.Data.Get(j, i) }

// Set sets the value of cell (j, i).
func (g *Grid) Set(v float64, j, i int) { g.Data.Set(v, j, i) }

// CellCenter returns the real-world coordinate of the center of
// cell (j, i).
func (g *Grid) CellCenter(j, i int) (x, y float64) {
	x = g.Xmin + (float64(i)+0.5)*g.Dx
	y = g.Ymax - (float64(j)+0.5)*g.Dx
	return x, y
}

// CellIndex returns the indices of the cell containing coordinate (x, y),
// whether or not that cell is within the grid bounds.
func (g *Grid) CellIndex(x, y float64) (j, i int) {
	i = int(math.Floor((x - g.Xmin) / g.Dx))
	j = int(math.Floor((g.Ymax - y) / g.Dx))
	return j, i
}

// CellPolygon returns the outline of cell (j, i).
func (g *Grid) CellPolygon(j, i int) geom.Polygon {
	x0 := g.Xmin + float64(i)*g.Dx
	y0 := g.Ymax - float64(j+1)*g.Dx
	return geom.Polygon{{
		{X: x0, Y: y0},
		{X: x0 + g.Dx, Y: y0},
		{X: x0 + g.Dx, Y: y0 + g.Dx},
		{X: x0, Y: y0 + g.Dx},
	}}
}

// ShapeError is returned when rasters that are required to be
// co-registered differ in dimensions, location, or resolution.
type ShapeError struct {
	A, B *Grid
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("charplume: grids are not co-registered: "+
		"[%d×%d xmin=%g ymax=%g dx=%g] vs [%d×%d xmin=%g ymax=%g dx=%g]",
		e.A.Ny(), e.A.Nx(), e.A.Xmin, e.A.Ymax, e.A.Dx,
		e.B.Ny(), e.B.Nx(), e.B.Xmin, e.B.Ymax, e.B.Dx)
}

// checkAligned returns a ShapeError if o is not co-registered with g.
func (g *Grid) checkAligned(o *Grid) error {
	if g.Ny() != o.Ny() || g.Nx() != o.Nx() ||
		g.Xmin != o.Xmin || g.Ymax != o.Ymax || g.Dx != o.Dx {
		return ShapeError{A: g, B: o}
	}
	return nil
}

// Sum returns the sum of all finite cell values.
func (g *Grid) Sum() float64 {
	var sum float64
	for _, v := range g.Data.Elements {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
		}
	}
	return sum
}

// Scale multiplies every cell value by f in place.
func (g *Grid) Scale(f float64) { g.Data.Scale(f) }

// SortedDescending returns all finite cell values in descending order.
func (g *Grid) SortedDescending() []float64 {
	vals := make([]float64, 0, len(g.Data.Elements))
	for _, v := range g.Data.Elements {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	return vals
}
