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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// waypointTuples extracts the whitespace-separated coordinate tuples
// from the LineString in a written flight path file.
func waypointTuples(t *testing.T, file string) []string {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	start := strings.Index(out, "<coordinates>")
	end := strings.Index(out, "</coordinates>")
	if start < 0 || end < 0 {
		t.Fatalf("output has no coordinates block:\n%s", out)
	}
	return strings.Fields(out[start+len("<coordinates>") : end])
}

func TestPlanCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "pathplan")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	outFile := filepath.Join(dir, "flight_path.kml")

	Cfg.Set("spacing", 50.)
	Cfg.Set("waypoint_interval", 25.)
	Cfg.Set("altitude", 20.)
	Root.SetArgs([]string{"plan", "testdata/survey_area.kml", outFile})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}

	tuples := waypointTuples(t, outFile)
	if len(tuples) < 4 {
		t.Fatalf("expected at least 4 waypoints, got %d", len(tuples))
	}
	for _, tuple := range tuples {
		if !strings.HasSuffix(tuple, ",20") {
			t.Errorf("waypoint %q not tagged with altitude 20", tuple)
		}
	}
}

func TestPlanCmdAltitude(t *testing.T) {
	dir, err := ioutil.TempDir("", "pathplan")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	outFile := filepath.Join(dir, "flight_path.kml")

	Cfg.Set("spacing", 50.)
	Cfg.Set("waypoint_interval", 25.)
	Cfg.Set("altitude", 35.)
	Root.SetArgs([]string{"plan", "testdata/survey_area.kml", outFile})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, tuple := range waypointTuples(t, outFile) {
		if !strings.HasSuffix(tuple, ",35") {
			t.Errorf("waypoint %q not tagged with altitude 35", tuple)
		}
	}
}

func TestPlanCmdInvalidSpacing(t *testing.T) {
	dir, err := ioutil.TempDir("", "pathplan")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	outFile := filepath.Join(dir, "flight_path.kml")

	Cfg.Set("spacing", -1.)
	Cfg.Set("waypoint_interval", 10.)
	Cfg.Set("altitude", 20.)
	defer Cfg.Set("spacing", 7.)
	Root.SetArgs([]string{"plan", "testdata/survey_area.kml", outFile})
	err = Root.Execute()
	if err == nil {
		t.Fatal("expected an error for negative spacing")
	}
	if !strings.Contains(err.Error(), "spacing") {
		t.Errorf("error %q does not name the offending option", err)
	}
	if _, statErr := os.Stat(outFile); !os.IsNotExist(statErr) {
		t.Error("output file was created despite the planning error")
	}
}

func TestPlanCmdMissingInput(t *testing.T) {
	dir, err := ioutil.TempDir("", "pathplan")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	Cfg.Set("spacing", 7.)
	Cfg.Set("waypoint_interval", 10.)
	Cfg.Set("altitude", 20.)
	Root.SetArgs([]string{"plan", filepath.Join(dir, "nonexistent.kml"), filepath.Join(dir, "out.kml")})
	if err := Root.Execute(); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "PathPlan v") {
		t.Errorf("version output %q", buf.String())
	}
}
