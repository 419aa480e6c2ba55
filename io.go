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
	"strings"

	"github.com/ctessum/cdf"
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
)

// Inputs holds the fully materialized, co-registered inputs of a run,
// as produced by a raster provider. Any resampling or reprojection to a
// common grid happens before this point.
type Inputs struct {
	Elevation *Grid
	WindDir   *Grid // meteorological convention
	WindSpeed *Grid
	Samples   []SampleCell
}

// ReadInputs reads the elevation, wind-direction, and wind-speed
// variables from the NetCDF file rasterFile, reads the watershed
// boundary from the polygon shapefile watershedFile, and derives the
// sample cells. It returns an error if the three rasters are not
// co-registered.
func ReadInputs(rasterFile, watershedFile string, elevVar, dirVar, speedVar string) (*Inputs, error) {
	ff, err := os.Open(rasterFile)
	if err != nil {
		return nil, fmt.Errorf("charplume: opening raster file: %v", err)
	}
	defer ff.Close()
	f, err := cdf.Open(ff)
	if err != nil {
		return nil, fmt.Errorf("charplume: reading raster file %s: %v", rasterFile, err)
	}

	in := new(Inputs)
	for _, v := range []struct {
		name string
		dst  **Grid
	}{
		{elevVar, &in.Elevation},
		{dirVar, &in.WindDir},
		{speedVar, &in.WindSpeed},
	} {
		g, err := readGrid(f, v.name)
		if err != nil {
			return nil, err
		}
		*v.dst = g
	}
	if err := in.Elevation.checkAligned(in.WindDir); err != nil {
		return nil, err
	}
	if err := in.Elevation.checkAligned(in.WindSpeed); err != nil {
		return nil, err
	}

	watershed, err := ReadWatershed(watershedFile)
	if err != nil {
		return nil, err
	}
	in.Samples = SampleCells(in.Elevation, watershed)
	return in, nil
}

// readGrid reads one 2-D variable from a NetCDF file into a Grid,
// taking the georeferencing from the global attributes "xmin", "ymax",
// and "dx". Values equal to the variable's "nodata" attribute (if any)
// are converted to NaN.
func readGrid(f *cdf.File, name string) (*Grid, error) {
	dims := f.Header.Lengths(name)
	if len(dims) != 2 {
		return nil, fmt.Errorf("charplume: raster variable %s must have 2 dimensions but has %d", name, len(dims))
	}
	ny, nx := dims[0], dims[1]

	xmin, err := attrFloat(f, "", "xmin")
	if err != nil {
		return nil, err
	}
	ymax, err := attrFloat(f, "", "ymax")
	if err != nil {
		return nil, err
	}
	dx, err := attrFloat(f, "", "dx")
	if err != nil {
		return nil, err
	}

	r := f.Reader(name, nil, nil)
	buf := r.Zero(ny * nx)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("charplume: reading raster variable %s: %v", name, err)
	}

	g := NewGrid(ny, nx, xmin, ymax, dx)
	switch b := buf.(type) {
	case []float64:
		copy(g.Data.Elements, b)
	case []float32:
		for i, v := range b {
			g.Data.Elements[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("charplume: raster variable %s has unsupported type %T", name, buf)
	}

	if nodata, err := attrFloat(f, name, "nodata"); err == nil {
		for i, v := range g.Data.Elements {
			if v == nodata {
				g.Data.Elements[i] = math.NaN()
			}
		}
	}
	return g, nil
}

// attrFloat extracts a scalar floating-point NetCDF attribute.
func attrFloat(f *cdf.File, varName, attr string) (float64, error) {
	a := f.Header.GetAttribute(varName, attr)
	if a == nil {
		return 0, fmt.Errorf("charplume: raster file is missing attribute %q", attr)
	}
	switch v := a.(type) {
	case []float64:
		if len(v) > 0 {
			return v[0], nil
		}
	case []float32:
		if len(v) > 0 {
			return float64(v[0]), nil
		}
	case []int32:
		if len(v) > 0 {
			return float64(v[0]), nil
		}
	}
	return 0, fmt.Errorf("charplume: attribute %q has unsupported type %T", attr, a)
}

// ReadWatershed reads the watershed boundary from a polygon shapefile.
// If the file holds more than one polygon, their union (as a
// multi-polygon) is used.
func ReadWatershed(filename string) (geom.Polygonal, error) {
	filename = strings.TrimSuffix(filename, ".shp")
	d, err := shp.NewDecoder(filename + ".shp")
	if err != nil {
		return nil, fmt.Errorf("charplume: reading watershed shapefile %s: %v", filename, err)
	}
	defer d.Close()

	var ws geom.MultiPolygon
	for {
		var rec struct{ geom.Polygon }
		if ok := d.DecodeRow(&rec); !ok {
			break
		}
		ws = append(ws, rec.Polygon)
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("charplume: decoding watershed shapefile %s: %v", filename, err)
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("charplume: watershed shapefile %s holds no polygons", filename)
	}
	if len(ws) == 1 {
		return ws[0], nil
	}
	return ws, nil
}
