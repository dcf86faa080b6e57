package client

import "strings"

const sensorConfigForm = "configuration should be of form ID=LOCATION"

// LocationFilter selects events for one location and, optionally, one
// measurement type.
type LocationFilter struct {
	Location string
	MeasType string
}

// ParseLocationFilter parses LOCATION or LOCATION:MEASTYPE. Only the first
// ':' separates, so measurement types may themselves contain ':'. The
// location is not validated here; the caller checks it against the server's
// listing.
func ParseLocationFilter(s string) LocationFilter {
	loc, meas, _ := strings.Cut(s, ":")
	return LocationFilter{Location: loc, MeasType: meas}
}

// SensorConfig binds a sensor id to a location.
type SensorConfig struct {
	SensorID string
	Location string
}

// ParseSensorConfig parses ID=LOCATION. The input must contain exactly one
// '=' with non-empty text on both sides.
func ParseSensorConfig(s string) (SensorConfig, error) {
	if strings.Count(s, "=") != 1 {
		return SensorConfig{}, invalidArgument(sensorConfigForm)
	}
	id, loc, _ := strings.Cut(s, "=")
	if id == "" || loc == "" {
		return SensorConfig{}, invalidArgument(sensorConfigForm)
	}
	return SensorConfig{SensorID: id, Location: loc}, nil
}
