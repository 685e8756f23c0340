package geo

import "encoding/json"

// lineString is the GeoJSON wire shape: coordinates are [lon, lat] pairs.
type lineString struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// LineString serializes an ordered sequence of waypoints as a GeoJSON
// LineString. GeoJSON mandates longitude-first coordinates; the swap from
// Point's lat-first layout happens here.
func LineString(points []Point) ([]byte, error) {
	coords := make([][2]float64, len(points))
	for i, p := range points {
		coords[i] = [2]float64{p.Lon, p.Lat}
	}

	return json.Marshal(lineString{
		Type:        "LineString",
		Coordinates: coords,
	})
}
