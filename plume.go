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

	"gonum.org/v1/gonum/integrate/quad"
)

// integralTolerance is the relative convergence tolerance for the
// turbulence integral quadrature.
const integralTolerance = 1e-6

// integralTailCutoff truncates the upper bound of the turbulence
// integral. The integrand decays like e^(−t), so everything beyond
// xi+60 is below the convergence tolerance.
const integralTailCutoff = 60

// upperGamma evaluates ∫_xi^∞ e^(−t)·t^(−m−1) dt, the upper incomplete
// gamma function of order −m, by Gauss-Legendre quadrature with the
// node count doubled until two successive estimates agree to within
// integralTolerance. xi must be positive.
func upperGamma(xi, m float64) (float64, error) {
	f := func(t float64) float64 {
		return math.Exp(-t) * math.Pow(t, -m-1)
	}
	upper := xi + integralTailCutoff
	prev := quad.Fixed(f, xi, upper, 60, nil, 0)
	for n := 120; n <= 3840; n *= 2 {
		v := quad.Fixed(f, xi, upper, n, nil, 0)
		if math.Abs(v-prev) <= integralTolerance*math.Abs(v) {
			return v, nil
		}
		prev = v
	}
	return prev, fmt.Errorf("charplume: turbulence integral did not converge for xi=%g, m=%g", xi, m)
}

// plumeFlux returns Qx, the plume mass remaining aloft at downwind
// distance x [m] after gravitational settling loss, for effective plume
// height hz = h+Δelev [m], wind speed u, and settling velocity vg.
// By contract it returns 0 (never NaN, never an error) when x ≤ 0 or
// u ≤ 0: a cell at zero distance, or any cell under still air, receives
// no plume mass in this discretized model.
func (p PhysicalParameters) plumeFlux(x, hz, u, vg float64) (float64, error) {
	if x <= 0 || u <= 0 {
		return 0, nil
	}
	m := p.M()
	xp := math.Pow(x, 2-p.N)
	xi := hz * hz / (xp * p.Cz * p.Cz)
	var settled float64
	if hz != 0 {
		z, err := upperGamma(xi, m)
		if err != nil {
			return 0, err
		}
		// (hz/Cz)^(2m) written on the squared base so that a source
		// above the sampling point (hz < 0) stays real-valued.
		settled = math.Pow(hz*hz/(p.Cz*p.Cz), m) * (-m * z)
	}
	exponent := 4 * vg / (p.N * u * p.Cz * math.Sqrt(math.Pi)) *
		(-math.Pow(x, p.N/2)*math.Exp(-xi) + settled)
	return p.Qo * math.Exp(exponent), nil
}
