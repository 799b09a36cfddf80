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

// Package kmlio reads survey area boundaries from and writes flight
// paths to KML documents.
package kmlio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
)

// ReadPolygon extracts the first Polygon element from the KML document
// read from r and returns its vertices as a polygon of WGS84
// longitude/latitude points. The Polygon may appear at any nesting depth
// (inside Documents, Folders, or Placemarks); only its first coordinates
// block is read, so interior boundaries are ignored.
func ReadPolygon(r io.Reader) (geom.Polygon, error) {
	d := xml.NewDecoder(r)
	depth := 0 // number of enclosing Polygon elements
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kmlio: reading KML document: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Polygon" {
				depth++
			} else if depth > 0 && t.Name.Local == "coordinates" {
				var text string
				if err := d.DecodeElement(&text, &t); err != nil {
					return nil, fmt.Errorf("kmlio: reading polygon coordinates: %v", err)
				}
				return parseCoordinates(text)
			}
		case xml.EndElement:
			if t.Name.Local == "Polygon" {
				depth--
			}
		}
	}
	return nil, fmt.Errorf("kmlio: no Polygon found in KML document")
}

// parseCoordinates parses a KML coordinates block: whitespace-separated
// tuples of comma-separated longitude,latitude[,altitude] values.
// Altitudes are discarded; the boundary is two-dimensional.
func parseCoordinates(text string) (geom.Polygon, error) {
	var ring []geom.Point
	for _, tuple := range strings.Fields(text) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 {
			continue
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("kmlio: parsing longitude %q: %v", parts[0], err)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("kmlio: parsing latitude %q: %v", parts[1], err)
		}
		ring = append(ring, geom.Point{X: lon, Y: lat})
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("kmlio: polygon has %d coordinates; need at least 3", len(ring))
	}
	return geom.Polygon{ring}, nil
}
