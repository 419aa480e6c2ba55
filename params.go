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

import "fmt"

// PhysicalParameters bundles the physical constants of one model run.
// It is immutable for the lifetime of the run; a separate value can be
// used for each particle class.
type PhysicalParameters struct {
	H  float64 // plume release height [m]
	D  float64 // particle diameter [µm]
	Cy float64 // horizontal diffusion constant
	Cz float64 // vertical diffusion constant
	N  float64 // turbulence exponent
	Qo float64 // source strength
	Pp float64 // particle density [g/cm³]
	Pf float64 // fluid (air) density [g/cm³]
	V  float64 // kinematic viscosity of air [cm²/s]
	G  float64 // gravitational acceleration [cm/s²]

	// Bands holds the cumulative probability mass fractions that
	// define the confidence bands, in ascending order.
	Bands []float64
}

// DefaultParameters returns the standard parameter set for charcoal
// dispersal.
func DefaultParameters() PhysicalParameters {
	return PhysicalParameters{
		H:     10,
		D:     250,
		Cy:    0.21,
		Cz:    0.12,
		N:     0.25,
		Qo:    100000,
		Pp:    0.5,
		Pf:    0.00127,
		V:     0.142,
		G:     981,
		Bands: []float64{0.68, 0.95, 0.997},
	}
}

// M returns the derived turbulence exponent m = n/(4−2n).
func (p PhysicalParameters) M() float64 { return p.N / (4 - 2*p.N) }

// SettlingVelocity returns the terminal fall speed [cm/s] of a sphere of
// diameter p.D settling under gravity in a viscous fluid (Stokes' law).
func (p PhysicalParameters) SettlingVelocity() float64 {
	d := p.D * 1e-4 // µm to cm
	return (p.Pp - p.Pf) * p.G * d * d / (18 * p.V)
}

// Check verifies that the parameters are physically usable.
func (p PhysicalParameters) Check() error {
	if p.N <= 0 || p.N >= 2 {
		return fmt.Errorf("charplume: turbulence exponent n=%g must be in (0, 2)", p.N)
	}
	if p.Cy <= 0 || p.Cz <= 0 {
		return fmt.Errorf("charplume: diffusion constants Cy=%g, Cz=%g must be positive", p.Cy, p.Cz)
	}
	if p.D <= 0 {
		return fmt.Errorf("charplume: particle diameter d=%g must be positive", p.D)
	}
	if p.V <= 0 {
		return fmt.Errorf("charplume: kinematic viscosity v=%g must be positive", p.V)
	}
	if len(p.Bands) == 0 {
		return fmt.Errorf("charplume: at least one confidence-band fraction is required")
	}
	for i, b := range p.Bands {
		if b <= 0 || b >= 1 {
			return fmt.Errorf("charplume: confidence-band fraction %g must be in (0, 1)", b)
		}
		if i > 0 && b <= p.Bands[i-1] {
			return fmt.Errorf("charplume: confidence-band fractions must be ascending")
		}
	}
	return nil
}
