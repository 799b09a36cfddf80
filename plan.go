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
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/op"
	"github.com/ctessum/geom/proj"
	"github.com/gonum/floats"
)

// Plan generates a boustrophedon survey path covering boundary, a simple
// polygon of WGS84 longitude/latitude vertices. Adjacent sweep passes are
// spacing meters apart, waypoints along each pass are waypointInterval
// meters apart, and every waypoint is tagged with the constant altitude
// (meters).
//
// The boundary is planarized in a UTM frame chosen from its centroid,
// probed with horizontal scan lines from the bottom of its extent to the
// top, and the in-polygon portion of each scan line becomes one or more
// passes. Passes are flown in ascending order of their centroid
// y-coordinate, reversing direction on each successive pass.
//
// Plan either returns the complete path or an error; it never returns a
// partial path. Errors are of type ConfigurationError, GeometryError, or
// ProjectionError depending on which precondition failed.
func Plan(boundary geom.Polygon, spacing, waypointInterval, altitude float64) (Path, error) {
	if spacing <= 0 {
		return nil, ConfigurationError{Option: "spacing", Value: spacing}
	}
	if waypointInterval <= 0 {
		return nil, ConfigurationError{Option: "waypoint_interval", Value: waypointInterval}
	}
	if err := validateBoundary(boundary); err != nil {
		return nil, err
	}
	boundary = closeRings(boundary)

	centroid := boundary.Centroid()
	if math.IsNaN(centroid.X) || math.IsNaN(centroid.Y) {
		return nil, ProjectionError{Reason: "boundary centroid cannot be computed"}
	}
	forward, inverse, err := SelectFrame(centroid).Transforms()
	if err != nil {
		return nil, err
	}
	g, err := boundary.Transform(forward)
	if err != nil {
		return nil, ProjectionError{Reason: fmt.Sprintf("planarizing boundary: %v", err)}
	}
	planar := g.(geom.Polygon)

	runs, err := sweepPath(planar, spacing, waypointInterval)
	if err != nil {
		return nil, err
	}

	var path Path
	for _, run := range runs {
		waypoints, err := assemble(run, inverse, altitude)
		if err != nil {
			return nil, err
		}
		path = append(path, waypoints...)
	}
	return path, nil
}

// sweepPath produces the planar waypoint runs covering the planar
// polygon, one run per clipped sweep segment, in flight order. Segments
// are retained in ascending-x vertex order, so the first run travels
// west to east; each subsequent run is reversed relative to the one
// before it, giving the boustrophedon traversal. When a concave boundary splits one scan line into several
// disjoint segments, each is alternated independently, which can
// desynchronize the left-right rhythm across that row; see the package
// tests for the resulting behavior.
func sweepPath(planar geom.Polygon, spacing, waypointInterval float64) ([][]geom.Point, error) {
	segments, err := sweepSegments(planar, spacing)
	if err != nil {
		return nil, err
	}
	runs := make([][]geom.Point, len(segments))
	reverse := false
	for i, seg := range segments {
		points := segmentPoints(seg.line, waypointInterval)
		if reverse {
			for a, b := 0, len(points)-1; a < b; a, b = a+1, b-1 {
				points[a], points[b] = points[b], points[a]
			}
		}
		runs[i] = points
		reverse = !reverse
	}
	return runs, nil
}

// validateBoundary rejects polygons that cannot enclose a surveyable
// area: fewer than 3 distinct vertices in the outer ring, or zero area.
func validateBoundary(p geom.Polygon) error {
	if len(p) == 0 || len(p[0]) == 0 {
		return GeometryError{Reason: "polygon has no vertices"}
	}
	var distinct []geom.Point
	for _, v := range p[0] {
		seen := false
		for _, d := range distinct {
			if v.Equals(d) {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, v)
		}
	}
	if len(distinct) < 3 {
		return GeometryError{Reason: fmt.Sprintf("polygon has %d distinct vertices; need at least 3", len(distinct))}
	}
	if p.Area() == 0 {
		return GeometryError{Reason: "polygon encloses zero area"}
	}
	return nil
}

// closeRings returns p with every ring explicitly closed. Boundaries are
// implicitly closed on input, but the centroid calculation requires the
// first vertex to be repeated at the end.
func closeRings(p geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, r := range p {
		if len(r) > 0 && !r[0].Equals(r[len(r)-1]) {
			closed := make([]geom.Point, len(r)+1)
			copy(closed, r)
			closed[len(r)] = r[0]
			out[i] = closed
		} else {
			out[i] = r
		}
	}
	return out
}

// sweepSegment is one flyable portion of a scan line, in planar meters.
type sweepSegment struct {
	line geom.LineString
	y    float64 // length-weighted centroid y
}

// sweepSegments probes the planar polygon p with horizontal scan lines
// spaced spacing meters apart, starting at the bottom of its bounding box
// and continuing while y <= maxY. Each scan line spans the full
// horizontal extent of the box and is clipped against p; a line may
// contribute no segment, one segment, or several disjoint segments where
// the polygon is concave at that height. The retained segments are
// returned sorted by ascending centroid y. The sort is stable, so
// segments sharing a y keep their generation order.
func sweepSegments(p geom.Polygon, spacing float64) ([]sweepSegment, error) {
	b := p.Bounds()
	var segments []sweepSegment
	for y := b.Min.Y; y <= b.Max.Y; y += spacing {
		lines, err := clipRow(p, b, y)
		if err != nil {
			return nil, err
		}
		// A row coincident with a horizontal boundary edge can come back
		// empty from the clipper even though the edge itself lies inside
		// the polygon. The polygon spans its full y extent, so an empty
		// bottom or top row is always such a tangency: re-clip a hair
		// inside the boundary and put the result back on the tangent row.
		if !hasFlyable(lines) && (y == b.Min.Y || y == b.Max.Y) {
			lines, err = clipRow(p, b, nudgeInward(b, y))
			if err != nil {
				return nil, err
			}
			for _, l := range lines {
				for i := range l {
					l[i].Y = y
				}
			}
		}
		for _, l := range lines {
			segments = appendSegment(segments, l)
		}
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].y < segments[j].y
	})
	return segments, nil
}

// clipRow clips the horizontal scan line at height y, spanning the full
// width of bounding box b, against polygon p.
func clipRow(p geom.Polygon, b *geom.Bounds, y float64) ([]geom.LineString, error) {
	scanLine := geom.LineString{
		geom.Point{X: b.Min.X, Y: y},
		geom.Point{X: b.Max.X, Y: y},
	}
	clipped, err := op.Construct(scanLine, p, op.INTERSECTION)
	if err != nil {
		return nil, GeometryError{Reason: fmt.Sprintf("clipping scan line at y=%g: %v", y, err)}
	}
	switch c := clipped.(type) {
	case nil:
		return nil, nil
	case geom.LineString:
		return []geom.LineString{c}, nil
	case geom.MultiLineString:
		return c, nil
	default:
		return nil, GeometryError{Reason: fmt.Sprintf("clipping scan line at y=%g yielded unexpected %T", y, clipped)}
	}
}

// hasFlyable reports whether lines holds at least one segment of nonzero
// length.
func hasFlyable(lines []geom.LineString) bool {
	for _, l := range lines {
		if l.Length() > 0 {
			return true
		}
	}
	return false
}

// nudgeInward moves y off the boundary of b, toward its interior, by one
// part in 10^9 of the box height.
func nudgeInward(b *geom.Bounds, y float64) float64 {
	eps := (b.Max.Y - b.Min.Y) * 1e-9
	if y == b.Min.Y {
		return y + eps
	}
	return y - eps
}

// appendSegment adds l to segments unless it has zero length; empty
// intersections are discarded rather than emitted as degenerate passes.
func appendSegment(segments []sweepSegment, l geom.LineString) []sweepSegment {
	if l.Length() == 0 {
		return segments
	}
	// The clipper returns vertices in whichever order its sweep visited
	// them. Flight direction is decided later, so normalize every pass
	// to ascending x here.
	if l[0].X > l[len(l)-1].X {
		for a, b := 0, len(l)-1; a < b; a, b = a+1, b-1 {
			l[a], l[b] = l[b], l[a]
		}
	}
	return append(segments, sweepSegment{line: l, y: centroidY(l)})
}

// centroidY gives the length-weighted centroid y-coordinate of l.
func centroidY(l geom.LineString) float64 {
	var length, weighted float64
	for i := 0; i < len(l)-1; i++ {
		d := math.Hypot(l[i+1].X-l[i].X, l[i+1].Y-l[i].Y)
		weighted += d * (l[i].Y + l[i+1].Y) / 2
		length += d
	}
	if length == 0 {
		return l[0].Y
	}
	return weighted / length
}

// segmentPoints places waypoints along one pass at equal parametric
// spacing. A pass of length L gets max(floor(L/interval)+1, 2) points, so
// even the shortest retained pass keeps both of its endpoints.
func segmentPoints(l geom.LineString, interval float64) []geom.Point {
	length := l.Length()
	n := int(length/interval) + 1
	if n < 2 {
		n = 2
	}
	ts := floats.Span(make([]float64, n), 0, 1)
	points := make([]geom.Point, n)
	for i, t := range ts {
		points[i] = pointAlong(l, t*length)
	}
	return points
}

// pointAlong returns the point at the given distance along l, measured
// from its first vertex. Distances beyond either end clamp to the
// corresponding endpoint.
func pointAlong(l geom.LineString, distance float64) geom.Point {
	if distance <= 0 {
		return l[0]
	}
	for i := 0; i < len(l)-1; i++ {
		d := math.Hypot(l[i+1].X-l[i].X, l[i+1].Y-l[i].Y)
		if distance <= d && d > 0 {
			t := distance / d
			return geom.Point{
				X: l[i].X + t*(l[i+1].X-l[i].X),
				Y: l[i].Y + t*(l[i+1].Y-l[i].Y),
			}
		}
		distance -= d
	}
	return l[len(l)-1]
}

// assemble converts one pass of planar points back to geographic
// coordinates and tags each with the flight altitude. Altitude
// assignment is kept here, isolated from the sweep geometry, so that a
// future terrain-following policy only touches this seam.
func assemble(points []geom.Point, inverse proj.Transformer, altitude float64) (Path, error) {
	waypoints := make(Path, len(points))
	for i, pt := range points {
		lon, lat, err := inverse(pt.X, pt.Y)
		if err != nil {
			return nil, ProjectionError{Reason: fmt.Sprintf("unprojecting waypoint (%g, %g): %v", pt.X, pt.Y, err)}
		}
		waypoints[i] = Waypoint{Longitude: lon, Latitude: lat, Altitude: altitude}
	}
	return waypoints, nil
}
