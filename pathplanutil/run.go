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

package pathplanutil

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	pathplan "github.com/Dijo-404/Path-planning"
	"github.com/Dijo-404/Path-planning/kmlio"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
}

// Run reads the survey area boundary from inputFile, plans a sweep path
// across it with the given line spacing, waypoint interval, and altitude
// (all in meters), and writes the path to outputFile. pathName labels
// the flight path in the output; if empty a default is used.
func Run(inputFile, outputFile, pathName string, spacing, waypointInterval, altitude float64) error {
	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("pathplan: opening input file: %v", err)
	}
	boundary, err := kmlio.ReadPolygon(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"vertices": len(boundary[0]),
		"file":     inputFile,
	}).Info("read survey area boundary")

	path, err := pathplan.Plan(boundary, spacing, waypointInterval, altitude)
	if err != nil {
		return err
	}

	o, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("pathplan: creating output file: %v", err)
	}
	defer o.Close()
	if err := kmlio.WritePath(o, pathName, path); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"waypoints": len(path),
		"file":      outputFile,
	}).Info("wrote flight path")
	return nil
}
