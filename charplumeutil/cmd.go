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

// Package charplumeutil holds the command-line interface and
// configuration handling for the CharPlume source-area model.
package charplumeutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/charplume"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

func init() {
	options := []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "RasterFile",
			usage: `
              RasterFile is the path of the NetCDF file holding the co-registered
              elevation, wind-direction, and wind-speed rasters.`,
			defaultVal: "inputs.nc",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "WatershedFile",
			usage: `
              WatershedFile is the path of the polygon shapefile holding the
              watershed boundary.`,
			defaultVal: "watershed.shp",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ElevationVar",
			usage: `
              ElevationVar is the name of the elevation variable in RasterFile.`,
			defaultVal: "elevation",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "WindDirVar",
			usage: `
              WindDirVar is the name of the wind-direction variable in RasterFile.
              Directions are in meteorological convention: degrees the wind is
              coming from.`,
			defaultVal: "wind_direction",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "WindSpeedVar",
			usage: `
              WindSpeedVar is the name of the wind-speed variable in RasterFile.`,
			defaultVal: "wind_speed",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the NetCDF results file should be
              created.`,
			defaultVal: "source_area.nc",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputShapefile",
			usage: `
              OutputShapefile is the path where the classified-cell polygon
              shapefile should be created. If empty, no shapefile is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "NProcs",
			usage: `
              NProcs is the number of parallel dispersion simulations. If < 1,
              the number of available CPUs is used.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.PlumeHeight",
			usage: `
              Physical.PlumeHeight is the plume release height h [m].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.ParticleDiameter",
			usage: `
              Physical.ParticleDiameter is the charcoal particle diameter d [µm].`,
			defaultVal: 250.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.Cy",
			usage: `
              Physical.Cy is the horizontal diffusion constant.`,
			defaultVal: 0.21,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.Cz",
			usage: `
              Physical.Cz is the vertical diffusion constant.`,
			defaultVal: 0.12,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.N",
			usage: `
              Physical.N is the turbulence exponent n.`,
			defaultVal: 0.25,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.Qo",
			usage: `
              Physical.Qo is the source strength.`,
			defaultVal: 100000.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.ParticleDensity",
			usage: `
              Physical.ParticleDensity is the charcoal particle density pp [g/cm³].`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.FluidDensity",
			usage: `
              Physical.FluidDensity is the air density pf [g/cm³].`,
			defaultVal: 0.00127,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.Viscosity",
			usage: `
              Physical.Viscosity is the kinematic viscosity of air v [cm²/s].`,
			defaultVal: 0.142,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Physical.Gravity",
			usage: `
              Physical.Gravity is the gravitational acceleration g [cm/s²].`,
			defaultVal: 981.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Bands",
			usage: `
              Bands lists the cumulative probability mass fractions defining the
              confidence bands, in ascending order.`,
			defaultVal: []string{"0.68", "0.95", "0.997"},
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("CHARPLUME")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("charplume: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "charplume",
	Short: "A charcoal source-area dispersion model.",
	Long: `CharPlume estimates where charcoal deposited at a sampling location
originated, by inverting a Gaussian-plume dispersion model over every cell of
a watershed and aggregating the results into a source-area probability map.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CHARPLUME_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of CharPlume.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("CharPlume v%s\n", charplume.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd runs a source-area analysis.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a source-area analysis.",
	Long: `run reads the input rasters and the watershed boundary, simulates
dispersion from every watershed cell, and writes the aggregated source-area
probability map and its confidence-band classification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := physicalParameters(Cfg)
		if err != nil {
			return err
		}
		return Run(
			Cfg.GetString("RasterFile"),
			Cfg.GetString("WatershedFile"),
			Cfg.GetString("ElevationVar"),
			Cfg.GetString("WindDirVar"),
			Cfg.GetString("WindSpeedVar"),
			Cfg.GetString("OutputFile"),
			Cfg.GetString("OutputShapefile"),
			Cfg.GetInt("NProcs"),
			p,
		)
	},
	DisableAutoGenTag: true,
}
