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
	"bytes"
	"math"
	"strings"
	"testing"

	pathplan "github.com/Dijo-404/Path-planning"
)

const polygonDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Survey area</name>
      <Polygon>
        <outerBoundaryIs>
          <LinearRing>
            <coordinates>
              -122.431,37.760,0 -122.429,37.760,0
              -122.429,37.762,0 -122.431,37.762,0
              -122.431,37.760,0
            </coordinates>
          </LinearRing>
        </outerBoundaryIs>
      </Polygon>
    </Placemark>
  </Document>
</kml>`

func TestReadPolygon(t *testing.T) {
	p, err := ReadPolygon(strings.NewReader(polygonDoc))
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(p))
	}
	ring := p[0]
	if len(ring) != 5 {
		t.Fatalf("expected 5 vertices, got %d", len(ring))
	}
	if math.Abs(ring[0].X - -122.431) > 1e-12 || math.Abs(ring[0].Y-37.760) > 1e-12 {
		t.Errorf("first vertex = (%g, %g), want (-122.431, 37.76)", ring[0].X, ring[0].Y)
	}
	if !ring[0].Equals(ring[len(ring)-1]) {
		t.Error("ring is not closed")
	}
}

// Placemarks that only carry points or lines must be skipped over while
// searching for the polygon.
func TestReadPolygonNested(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Folder>
      <Placemark>
        <Point><coordinates>-122.4,37.7,0</coordinates></Point>
      </Placemark>
      <Placemark>
        <Polygon>
          <outerBoundaryIs>
            <LinearRing>
              <coordinates>0,0 1,0 1,1 0,1 0,0</coordinates>
            </LinearRing>
          </outerBoundaryIs>
        </Polygon>
      </Placemark>
    </Folder>
  </Document>
</kml>`
	p, err := ReadPolygon(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(p[0]) != 5 {
		t.Fatalf("expected 5 vertices, got %d", len(p[0]))
	}
	if p[0][1].X != 1 || p[0][1].Y != 0 {
		t.Errorf("second vertex = (%g, %g), want (1, 0)", p[0][1].X, p[0][1].Y)
	}
}

func TestReadPolygonMissing(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <Point><coordinates>-122.4,37.7,0</coordinates></Point>
    </Placemark>
  </Document>
</kml>`
	if _, err := ReadPolygon(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for a document without a polygon")
	}
}

func TestReadPolygonTooFewVertices(t *testing.T) {
	doc := `<kml xmlns="http://www.opengis.net/kml/2.2">
  <Polygon>
    <outerBoundaryIs>
      <LinearRing>
        <coordinates>0,0 1,1</coordinates>
      </LinearRing>
    </outerBoundaryIs>
  </Polygon>
</kml>`
	if _, err := ReadPolygon(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for a polygon with fewer than 3 vertices")
	}
}

func TestWritePath(t *testing.T) {
	path := pathplan.Path{
		{Longitude: 10, Latitude: 45, Altitude: 20},
		{Longitude: 10.5, Latitude: 45, Altitude: 20},
		{Longitude: 10.5, Latitude: 45.5, Altitude: 20},
	}
	var buf bytes.Buffer
	if err := WritePath(&buf, "", path); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"http://www.opengis.net/kml/2.2",
		"<LineString>",
		"<tessellate>1</tessellate>",
		"<altitudeMode>relativeToGround</altitudeMode>",
		DefaultPathName,
		"10,45,20",
		"10.5,45.5,20",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Flight order must be preserved in the coordinate list.
	if strings.Index(out, "10,45,20") > strings.Index(out, "10.5,45.5,20") {
		t.Error("waypoints written out of flight order")
	}
}

func TestWritePathName(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePath(&buf, "Orchard survey", pathplan.Path{{Longitude: 1, Latitude: 2, Altitude: 3}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<name>Orchard survey</name>") {
		t.Errorf("output missing placemark name:\n%s", buf.String())
	}
}
