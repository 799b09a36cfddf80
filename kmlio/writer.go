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

package kmlio

import (
	"fmt"
	"io"

	"github.com/twpayne/go-kml"

	pathplan "github.com/Dijo-404/Path-planning"
)

// DefaultPathName is the Placemark name used by WritePath when the
// caller does not supply one.
const DefaultPathName = "Generated Flight Path"

// WritePath serializes path to w as a KML document containing a single
// Placemark with one tessellated LineString whose altitudes are relative
// to ground level. The waypoints are written in flight order. name
// labels the Placemark; if empty, DefaultPathName is used. The KML
// namespace is stamped on the document by the serializer itself, so no
// process-wide registration is involved.
func WritePath(w io.Writer, name string, path pathplan.Path) error {
	if name == "" {
		name = DefaultPathName
	}
	coordinates := make([]kml.Coordinate, len(path))
	for i, wp := range path {
		coordinates[i] = kml.Coordinate{Lon: wp.Longitude, Lat: wp.Latitude, Alt: wp.Altitude}
	}
	doc := kml.KML(
		kml.Document(
			kml.Placemark(
				kml.Name(name),
				kml.LineString(
					kml.Tessellate(true),
					kml.AltitudeMode(kml.AltitudeModeRelativeToGround),
					kml.Coordinates(coordinates...),
				),
			),
		),
	)
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("kmlio: writing flight path: %v", err)
	}
	return nil
}
