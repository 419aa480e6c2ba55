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
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/cdf"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
)

// WriteNetCDF writes the aggregate probability raster, the band labels,
// and the band cutoffs of a run to a NetCDF file. The georeferencing is
// stored as the global attributes "xmin", "ymax", and "dx", matching
// what ReadInputs expects.
func (r *Result) WriteNetCDF(filename string) error {
	agg := r.Aggregate
	h := cdf.NewHeader([]string{"y", "x", "band"},
		[]int{agg.Ny(), agg.Nx(), len(r.Classes.Fractions)})
	h.AddAttribute("", "xmin", []float64{agg.Xmin})
	h.AddAttribute("", "ymax", []float64{agg.Ymax})
	h.AddAttribute("", "dx", []float64{agg.Dx})

	h.AddVariable("probability", []string{"y", "x"}, []float64{0})
	h.AddAttribute("probability", "description", "Probability that material deposited at the sampling location originated in this cell")

	h.AddVariable("band", []string{"y", "x"}, []int32{0})
	h.AddAttribute("band", "description", "Confidence band label; 0 is below all bands")

	h.AddVariable("cutoff", []string{"band"}, []float64{0})
	h.AddAttribute("cutoff", "description", "Probability cutoff for each confidence band; NaN where the band is empty")

	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("charplume: creating output netcdf file: %v", err)
	}

	ff, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("charplume: creating output netcdf file: %v", err)
	}
	defer ff.Close()
	f, err := cdf.Create(ff, h)
	if err != nil {
		return fmt.Errorf("charplume: creating output netcdf file: %v", err)
	}

	w := f.Writer("probability", []int{0, 0}, []int{agg.Ny(), agg.Nx()})
	if _, err := w.Write(append([]float64(nil), agg.Data.Elements...)); err != nil {
		return fmt.Errorf("charplume: writing probability raster: %v", err)
	}

	bands := make([]int32, len(r.Classes.Bands.Data.Elements))
	for i, v := range r.Classes.Bands.Data.Elements {
		bands[i] = int32(v)
	}
	w = f.Writer("band", []int{0, 0}, []int{agg.Ny(), agg.Nx()})
	if _, err := w.Write(bands); err != nil {
		return fmt.Errorf("charplume: writing band raster: %v", err)
	}

	w = f.Writer("cutoff", []int{0}, []int{len(r.Classes.Cutoffs)})
	if _, err := w.Write(append([]float64(nil), r.Classes.Cutoffs...)); err != nil {
		return fmt.Errorf("charplume: writing band cutoffs: %v", err)
	}

	if err := cdf.UpdateNumRecs(ff); err != nil {
		return fmt.Errorf("charplume: finalizing output netcdf file: %v", err)
	}
	return nil
}

// WriteShapefile writes one polygon per classified cell, carrying the
// cell's source probability and band label, for contouring or direct
// visualization in a GIS. Cells with zero probability are omitted.
func (r *Result) WriteShapefile(filename string) error {
	fileBase := strings.TrimSuffix(filename, filepath.Ext(filename))
	fields := []goshp.Field{
		goshp.FloatField("prob", 14, 8),
		goshp.FloatField("band", 2, 0),
	}
	shape, err := shp.NewEncoderFromFields(fileBase+".shp", goshp.POLYGON, fields...)
	if err != nil {
		return fmt.Errorf("charplume: creating output shapefile: %v", err)
	}

	agg := r.Aggregate
	for j := 0; j < agg.Ny(); j++ {
		for i := 0; i < agg.Nx(); i++ {
			v := agg.Get(j, i)
			if math.IsNaN(v) || v <= 0 {
				continue
			}
			err := shape.EncodeFields(agg.CellPolygon(j, i),
				v, r.Classes.Bands.Get(j, i))
			if err != nil {
				return fmt.Errorf("charplume: writing output shapefile: %v", err)
			}
		}
	}
	shape.Close()
	return nil
}
