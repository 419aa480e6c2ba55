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
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/charplume"
	"github.com/spf13/cast"
)

// physicalParameters assembles the physical constants of a run from the
// configuration.
func physicalParameters(cfg *viper.Viper) (charplume.PhysicalParameters, error) {
	p := charplume.PhysicalParameters{
		H:  cfg.GetFloat64("Physical.PlumeHeight"),
		D:  cfg.GetFloat64("Physical.ParticleDiameter"),
		Cy: cfg.GetFloat64("Physical.Cy"),
		Cz: cfg.GetFloat64("Physical.Cz"),
		N:  cfg.GetFloat64("Physical.N"),
		Qo: cfg.GetFloat64("Physical.Qo"),
		Pp: cfg.GetFloat64("Physical.ParticleDensity"),
		Pf: cfg.GetFloat64("Physical.FluidDensity"),
		V:  cfg.GetFloat64("Physical.Viscosity"),
		G:  cfg.GetFloat64("Physical.Gravity"),
	}
	for _, b := range cfg.GetStringSlice("Bands") {
		f, err := cast.ToFloat64E(b)
		if err != nil {
			return p, fmt.Errorf("charplume: invalid confidence-band fraction %q: %v", b, err)
		}
		p.Bands = append(p.Bands, f)
	}
	if err := p.Check(); err != nil {
		return p, err
	}
	return p, nil
}

// checkInputFile expands environment variables in a configured file path
// and verifies that the file exists.
func checkInputFile(path, option string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("charplume: the %s configuration variable is not set", option)
	}
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return path, fmt.Errorf("charplume: the %s file doesn't exist: %v", option, err)
	}
	return path, nil
}
