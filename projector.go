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

package pathplan

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// wgs84LongLat is the geographic coordinate system survey boundaries are
// expressed in.
const wgs84LongLat = "+proj=longlat +datum=WGS84 +no_defs"

// Frame identifies the locally flat, meter-scale coordinate system used
// to planarize one survey boundary: a Universal Transverse Mercator zone
// plus hemisphere.
type Frame struct {
	Zone  int
	South bool
}

// SelectFrame chooses the UTM frame for a boundary from its centroid.
// It is a pure function: the same centroid always yields the same frame.
func SelectFrame(centroid geom.Point) Frame {
	return Frame{
		Zone:  int(math.Floor((centroid.X+180)/6)) + 1,
		South: centroid.Y < 0,
	}
}

// Proj4 gives the frame's projection definition in Proj4 format.
func (f Frame) Proj4() string {
	if f.South {
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", f.Zone)
	}
	return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", f.Zone)
}

// Transforms returns the forward (geographic degrees to planar meters)
// and inverse (planar meters to geographic degrees) transforms for f.
// The two are exact inverses of each other to well under 1e-6 degrees.
func (f Frame) Transforms() (forward, inverse proj.Transformer, err error) {
	longlat, err := proj.Parse(wgs84LongLat)
	if err != nil {
		return nil, nil, ProjectionError{Reason: fmt.Sprintf("parsing geographic reference: %v", err)}
	}
	utm, err := proj.Parse(f.Proj4())
	if err != nil {
		return nil, nil, ProjectionError{Reason: fmt.Sprintf("parsing frame %+v: %v", f, err)}
	}
	forward, err = longlat.NewTransform(utm)
	if err != nil {
		return nil, nil, ProjectionError{Reason: fmt.Sprintf("creating forward transform for frame %+v: %v", f, err)}
	}
	inverse, err = utm.NewTransform(longlat)
	if err != nil {
		return nil, nil, ProjectionError{Reason: fmt.Sprintf("creating inverse transform for frame %+v: %v", f, err)}
	}
	return forward, inverse, nil
}
