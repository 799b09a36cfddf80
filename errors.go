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

import "fmt"

// GeometryError is returned when the survey boundary polygon is absent,
// degenerate, or otherwise cannot be swept.
type GeometryError struct {
	Reason string
}

func (e GeometryError) Error() string {
	return fmt.Sprintf("pathplan: invalid boundary geometry: %s", e.Reason)
}

// ProjectionError is returned when the boundary centroid cannot be
// resolved to a planar coordinate frame or a point cannot be transformed
// to or from that frame.
type ProjectionError struct {
	Reason string
}

func (e ProjectionError) Error() string {
	return fmt.Sprintf("pathplan: projection failure: %s", e.Reason)
}

// ConfigurationError is returned when a tuning parameter is outside its
// allowed range. It names the offending option so callers can report it
// directly.
type ConfigurationError struct {
	Option string
	Value  float64
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("pathplan: configuration option %s must be greater than zero (got %g)", e.Option, e.Value)
}
