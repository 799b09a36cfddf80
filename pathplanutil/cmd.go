/*
Copyright © 2026 the PathPlan authors.
This file is part of PathPlan.

PathPlan is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

PathPlan is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with PathPlan.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package pathplanutil holds the command-line interface for the PathPlan
// survey path generator.
package pathplanutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	pathplan "github.com/Dijo-404/Path-planning"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to PathPlan.
	options = []struct {
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
			name: "spacing",
			usage: `
              spacing specifies the distance between adjacent sweep lines
              in meters.`,
			shorthand:  "s",
			defaultVal: 7.0,
			flagsets:   []*pflag.FlagSet{planCmd.Flags()},
		},
		{
			name: "waypoint_interval",
			usage: `
              waypoint_interval specifies the distance between waypoints
              along one sweep line in meters.`,
			shorthand:  "i",
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{planCmd.Flags()},
		},
		{
			name: "altitude",
			usage: `
              altitude specifies the constant flight altitude in meters,
              relative to ground level, applied to every waypoint.`,
			shorthand:  "a",
			defaultVal: 20.0,
			flagsets:   []*pflag.FlagSet{planCmd.Flags()},
		},
		{
			name: "path_name",
			usage: `
              path_name specifies the name given to the flight path
              placemark in the output file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{planCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PATHPLAN")

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
	Root.AddCommand(planCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("pathplan: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "pathplan",
	Short: "A polygon survey flight path generator.",
	Long: `PathPlan converts a geographic area of interest into an ordered
sequence of waypoints forming a boustrophedon ("lawnmower") coverage
path for an autonomous survey vehicle.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'PATHPLAN_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of PathPlan.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("PathPlan v%s\n", pathplan.Version)
	},
	DisableAutoGenTag: true,
}

// planCmd is a command that generates a sweep path from an area boundary.
var planCmd = &cobra.Command{
	Use:   "plan [input KML file] [output KML file]",
	Short: "Generate a sweep flight path.",
	Long: `plan reads the first polygon from the input KML file, generates a
horizontal sweep pattern covering it, and writes the resulting flight
path to the output KML file as a single line.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		spacing, err := cast.ToFloat64E(Cfg.Get("spacing"))
		if err != nil {
			return fmt.Errorf("pathplan: reading 'spacing': %v", err)
		}
		interval, err := cast.ToFloat64E(Cfg.Get("waypoint_interval"))
		if err != nil {
			return fmt.Errorf("pathplan: reading 'waypoint_interval': %v", err)
		}
		altitude, err := cast.ToFloat64E(Cfg.Get("altitude"))
		if err != nil {
			return fmt.Errorf("pathplan: reading 'altitude': %v", err)
		}
		return Run(args[0], args[1], Cfg.GetString("path_name"), spacing, interval, altitude)
	},
	DisableAutoGenTag: true,
}
