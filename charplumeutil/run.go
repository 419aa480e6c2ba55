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

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spatialmodel/charplume"
)

// Run executes a complete source-area analysis: it reads the input
// rasters and the watershed boundary, simulates dispersion from every
// watershed cell, and writes the aggregated probability map and its
// confidence-band classification.
func Run(rasterFile, watershedFile, elevVar, dirVar, speedVar,
	outputFile, outputShapefile string, nprocs int,
	p charplume.PhysicalParameters) error {

	rasterFile, err := checkInputFile(rasterFile, "RasterFile")
	if err != nil {
		return err
	}
	watershedFile, err = checkInputFile(watershedFile, "WatershedFile")
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"rasters":   rasterFile,
		"watershed": watershedFile,
	}).Info("reading inputs")
	in, err := charplume.ReadInputs(rasterFile, watershedFile, elevVar, dirVar, speedVar)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"ny":      in.Elevation.Ny(),
		"nx":      in.Elevation.Nx(),
		"samples": len(in.Samples),
	}).Info("inputs loaded")

	m, err := charplume.NewModel(in.Elevation, in.WindDir, in.WindSpeed, in.Samples, p)
	if err != nil {
		return err
	}
	m.NProcs = nprocs

	start := time.Now()
	result, err := m.Run()
	if err != nil {
		return err
	}
	log.WithField("walltime", time.Since(start)).Info("simulation finished")
	for _, w := range result.Warnings {
		log.Warn(w.String())
	}

	if err := result.WriteNetCDF(outputFile); err != nil {
		return err
	}
	log.WithField("file", outputFile).Info("wrote results")
	if outputShapefile != "" {
		if err := result.WriteShapefile(outputShapefile); err != nil {
			return err
		}
		log.WithField("file", outputShapefile).Info("wrote shapefile")
	}
	return nil
}
