// Package geo provides the geographic distance helpers that turn
// latitude/longitude waypoints into edge weights and A* heuristics:
// great-circle distance (haversine), a fast flat-earth approximation
// (cheap ruler), unit conversion, and GeoJSON output for computed routes.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// Unit names a supported distance unit.
type Unit string

// Supported distance units.
const (
	Kilometers Unit = "km"
	Meters     Unit = "m"
	Miles      Unit = "mi"
	Feet       Unit = "ft"
)

// ErrUnknownUnit indicates a Unit outside the supported set.
var ErrUnknownUnit = errors.New("geo: unknown distance unit")

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat, Lon float64
}

const radiansPerDegree = math.Pi / 180

// WGS84 flattening term used by the cheap-ruler approximation.
const cheapE2 = (1 / 298.257223563) * (2 - (1 / 298.257223563))

// earthRadius is the mean earth radius expressed in each supported unit.
var earthRadius = map[Unit]float64{
	Kilometers: 6371,
	Meters:     6371000,
	Miles:      3959,
	Feet:       3959 * 5280,
}

// kilometersPer converts through kilometers as the pivot unit.
var kilometersPer = map[Unit]float64{
	Miles:      0.621371,
	Meters:     1000,
	Feet:       3280.84,
	Kilometers: 1,
}

// Options configures a distance computation.
type Options struct {
	// Unit selects the unit of the returned distance. Default Kilometers.
	Unit Unit
	// Circuity multiplies the computed distance to account for routes
	// that cannot follow the geodesic (roads, shipping lanes). Default 1.
	Circuity float64
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// WithUnit selects the output unit.
func WithUnit(u Unit) Option {
	return func(o *Options) { o.Unit = u }
}

// WithCircuity sets the circuity multiplier. Values below 1 are useful
// when the result feeds an A* heuristic that must never overestimate.
func WithCircuity(c float64) Option {
	return func(o *Options) { o.Circuity = c }
}

func buildOptions(opts []Option) Options {
	cfg := Options{Unit: Kilometers, Circuity: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Haversine returns the great-circle distance between two points.
// Unknown units fall back to kilometers.
func Haversine(origin, destination Point, opts ...Option) float64 {
	cfg := buildOptions(opts)

	lat1 := radiansPerDegree * origin.Lat
	lon1 := radiansPerDegree * origin.Lon
	lat2 := radiansPerDegree * destination.Lat
	lon2 := radiansPerDegree * destination.Lon

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	radius, ok := earthRadius[cfg.Unit]
	if !ok {
		radius = earthRadius[Kilometers]
	}

	return c * radius * cfg.Circuity
}

// CheapRuler returns Mapbox's "cheap ruler" approximation of the distance
// between two points: project both onto a plane scaled for the midpoint
// latitude and measure the Euclidean distance there.
//
// Much cheaper than Haversine per call, but it overestimates near the
// poles and over long spans; pair it with a circuity below 1 when used
// as an A* heuristic.
func CheapRuler(origin, destination Point, opts ...Option) float64 {
	cfg := buildOptions(opts)
	radius, ok := earthRadius[cfg.Unit]
	if !ok {
		radius = earthRadius[Kilometers]
	}

	lonDiff := math.Abs(destination.Lon - origin.Lon)
	lonDiff = math.Min(360-lonDiff, lonDiff)

	midLat := (origin.Lat + destination.Lat) / 2 * radiansPerDegree
	cosLat := math.Cos(midLat)

	wSquared := 1 / (1 - cheapE2*(1-cosLat*cosLat))
	w := math.Sqrt(wSquared)

	m := radiansPerDegree * radius
	kx := m * w * cosLat
	ky := m * w * wSquared * (1 - cheapE2)

	dx := lonDiff * kx
	dy := (destination.Lat - origin.Lat) * ky

	return math.Hypot(dx, dy) * cfg.Circuity
}

// Convert re-expresses a distance from one unit in another.
func Convert(distance float64, from, to Unit) (float64, error) {
	fromFactor, ok := kilometersPer[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	toFactor, ok := kilometersPer[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}

	return distance / fromFactor * toFactor, nil
}
