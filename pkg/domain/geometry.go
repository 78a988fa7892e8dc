package domain

import (
	"errors"
	"fmt"
	"math"
)

// GeometryType is the shape of a geometry.
type GeometryType string

const (
	GeometryPoint   GeometryType = "POINT"
	GeometryPolygon GeometryType = "POLYGON"
)

// ErrInvalidGeometry is returned by Geometry.Validate.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Coordinate is a WGS84 position.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Geometry is a point or a polygon. A polygon's shell is closed: the first and
// last coordinates are equal.
type Geometry struct {
	Type        GeometryType `json:"type"`
	Coordinates []Coordinate `json:"coordinates"`
}

// NewPoint returns a point geometry.
func NewPoint(lat, lng float64) Geometry {
	return Geometry{Type: GeometryPoint, Coordinates: []Coordinate{{Latitude: lat, Longitude: lng}}}
}

// IsEmpty reports whether g has no coordinates.
func (g Geometry) IsEmpty() bool { return len(g.Coordinates) == 0 }

// Validate checks the coordinate ranges and the shape of g.
func (g Geometry) Validate() error {
	for _, c := range g.Coordinates {
		if !finite(c.Latitude) || !finite(c.Longitude) {
			return fmt.Errorf("%w: coordinate is not finite", ErrInvalidGeometry)
		}
		if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
			return fmt.Errorf("%w: coordinate (%v, %v) out of range", ErrInvalidGeometry, c.Latitude, c.Longitude)
		}
	}

	switch g.Type {
	case GeometryPoint:
		if len(g.Coordinates) != 1 {
			return fmt.Errorf("%w: point needs exactly one coordinate", ErrInvalidGeometry)
		}
	case GeometryPolygon:
		if len(g.Coordinates) < 4 {
			return fmt.Errorf("%w: polygon needs at least four coordinates", ErrInvalidGeometry)
		}
		if g.Coordinates[0] != g.Coordinates[len(g.Coordinates)-1] {
			return fmt.Errorf("%w: polygon shell is not closed", ErrInvalidGeometry)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidGeometry, g.Type)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
