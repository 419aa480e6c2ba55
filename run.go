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
	"runtime"
	"sync"
)

// A Result holds the outputs of one source-area run.
type Result struct {
	// Aggregate is the watershed-wide source-area probability raster.
	// Finite cell values sum to 1.
	Aggregate *Grid

	// Classes assigns every cell to a confidence band.
	Classes *Classification

	// Warnings lists the numerical edge cases that were recovered
	// during the run, in sample-cell order.
	Warnings []Warning
}

// Run simulates dispersion from every sample cell concurrently,
// aggregates the per-source probability rasters into the watershed-wide
// source-area distribution, and classifies it into confidence bands.
// Each simulation reads only the shared immutable inputs and owns its
// output raster, so no locking is needed; the reduction afterward is
// order-independent up to floating-point rounding. A hard failure in any
// simulation aborts the whole run: silently dropping one sample cell
// would bias the aggregate distribution.
func (m *Model) Run() (*Result, error) {
	nprocs := m.NProcs
	if nprocs <= 0 {
		nprocs = runtime.GOMAXPROCS(0)
	}

	rasters := make([]*Grid, len(m.Samples))
	warnings := make([][]Warning, len(m.Samples))
	errs := make([]error, nprocs)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for ii := pp; ii < len(m.Samples); ii += nprocs {
				var err error
				rasters[ii], warnings[ii], err = m.sourceDispersion(ii, m.Samples[ii])
				if err != nil {
					errs[pp] = err
					return
				}
			}
		}(pp)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	agg, err := aggregate(rasters)
	if err != nil {
		return nil, err
	}
	classes, err := Classify(agg, m.Params.Bands)
	if err != nil {
		return nil, err
	}

	result := &Result{Aggregate: agg, Classes: classes}
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w...)
	}
	return result, nil
}

// aggregate sums per-source probability rasters elementwise and divides
// by the source count, yielding the watershed-wide distribution. Missing
// values are treated as 0 before summation so that partial coverage from
// one source never nulls out contributions from another. Summation is
// commutative and associative, so the result does not depend on raster
// order beyond floating-point rounding.
func aggregate(rasters []*Grid) (*Grid, error) {
	agg := rasters[0].like()
	for _, r := range rasters {
		if err := agg.checkAligned(r); err != nil {
			return nil, err
		}
		for i, v := range r.Data.Elements {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			agg.Data.Elements[i] += v
		}
	}
	agg.Scale(1 / float64(len(rasters)))
	return agg, nil
}
