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

	"gonum.org/v1/gonum/floats"
)

// A Classification labels every grid cell with the confidence band it
// belongs to. With the default fractions {0.68, 0.95, 0.997}, band 3 is
// the set of highest-valued cells jointly holding 68% of the probability
// mass, band 2 extends that to 95%, band 1 to 99.7%, and band 0 is
// everything below (including missing and zero cells). It is derived
// deterministically from the aggregate raster and never mutated.
type Classification struct {
	// Bands holds the integer band label of each cell; co-registered
	// with the aggregate raster it was derived from.
	Bands *Grid

	// Fractions are the cumulative mass fractions the bands were
	// built from, ascending.
	Fractions []float64

	// Cutoffs holds the raster-value cutoff for each fraction.
	// Cutoffs are monotonically non-increasing. Where a band is
	// empty the cutoff is NaN.
	Cutoffs []float64

	// Empty reports, for each fraction, whether its band is empty
	// because the largest cell value alone already held more mass
	// than the target fraction.
	Empty []bool
}

// Classify ranks the aggregate raster's cells by probability mass and
// assigns each cell to a confidence band. For each target fraction p the
// cutoff is found on the cumulative mass curve of the descending-sorted
// values: the value at the index where the running mass first reaches p.
// If the very first value already exceeds p there is no such cutoff and
// the band is marked empty rather than guessed.
func Classify(agg *Grid, fractions []float64) (*Classification, error) {
	for i, p := range fractions {
		if p <= 0 || p >= 1 {
			return nil, fmt.Errorf("charplume: confidence-band fraction %g out of range (0, 1)", p)
		}
		if i > 0 && p <= fractions[i-1] {
			return nil, fmt.Errorf("charplume: confidence-band fractions must be ascending")
		}
	}

	c := &Classification{
		Bands:     agg.like(),
		Fractions: append([]float64(nil), fractions...),
		Cutoffs:   make([]float64, len(fractions)),
		Empty:     make([]bool, len(fractions)),
	}

	vals := agg.SortedDescending()
	total := floats.Sum(vals)
	if total <= 0 {
		for i := range c.Cutoffs {
			c.Cutoffs[i] = math.NaN()
			c.Empty[i] = true
		}
		return c, nil
	}

	norm := append([]float64(nil), vals...)
	floats.Scale(1/total, norm)
	cum := floats.CumSum(make([]float64, len(norm)), norm)

	for i, p := range fractions {
		// k is the number of leading cells whose cumulative mass
		// stays below p; vals[k] is the first value at which the
		// running mass reaches p.
		k := 0
		for k < len(cum) && cum[k] < p {
			k++
		}
		if k == 0 {
			c.Cutoffs[i] = math.NaN()
			c.Empty[i] = true
			continue
		}
		if k == len(vals) {
			k = len(vals) - 1
		}
		c.Cutoffs[i] = vals[k]
	}

	// A cell's label is the number of bands whose cutoff it reaches.
	// Cutoffs are non-increasing with ascending fractions, so reaching
	// the 68% cutoff implies reaching all the others.
	for idx, v := range agg.Data.Elements {
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		var label float64
		for i := range fractions {
			if !c.Empty[i] && v >= c.Cutoffs[i] {
				label++
			}
		}
		c.Bands.Data.Elements[idx] = label
	}
	return c, nil
}
