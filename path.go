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

// Package pathplan generates boustrophedon ("lawnmower") survey flight
// paths that cover a geographic area of interest. The area is given as a
// simple polygon of WGS84 longitude/latitude vertices; the result is an
// ordered sequence of 3D waypoints sweeping the area in evenly spaced
// parallel passes, alternating direction on each pass.
package pathplan

// Version gives the version number of this version of PathPlan.
const Version = "1.1.0"

// Waypoint is a single position the vehicle is commanded to pass through.
// Longitude and Latitude are in WGS84 degrees; Altitude is in meters.
type Waypoint struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

// Path is an ordered sequence of waypoints. The slice order is the flight
// order and must not be rearranged by consumers.
type Path []Waypoint
