package client

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
)

// FormatValue renders a measurement the way the server's Python tooling
// prints floats: shortest round-trip digits, always with a fractional part
// in fixed notation and exponent form outside [1e-4, 1e16).
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatEvent renders "<time> <location>:<measType>=<value>".
func FormatEvent(e *dswsv1.Event) string {
	return fmt.Sprintf("%s %s:%s=%s", e.GetDateTime(), e.GetLocation(), e.GetMeasType(), FormatValue(e.GetMeasValue()))
}

// FormatLocation renders "<location>:<measType>".
func FormatLocation(l *dswsv1.Location) string {
	return l.GetLocation() + ":" + l.GetMeasType()
}

// FormatSensorInfo renders "<id>,<location>,<lastSeen>".
func FormatSensorInfo(s *dswsv1.SensorInfo) string {
	return s.GetSensorId() + "," + s.GetLocation() + "," + s.GetLastSeen()
}

type summaryKey struct {
	location string
	measType string
}

// Summary groups summary-stream values per (location, measurement type).
// The server sends min, max and actual for each key in that order; Summary
// keeps them positionally and never compares values.
type Summary struct {
	order  []summaryKey
	values map[summaryKey][]float64
}

func NewSummary() *Summary {
	return &Summary{values: make(map[summaryKey][]float64)}
}

// Add appends e's value to its key, remembering first-seen key order.
func (s *Summary) Add(e *dswsv1.Event) {
	k := summaryKey{location: e.GetLocation(), measType: e.GetMeasType()}
	if _, ok := s.values[k]; !ok {
		s.order = append(s.order, k)
	}
	s.values[k] = append(s.values[k], e.GetMeasValue())
}

// Print writes one line per key in first-seen order:
// "<location>:<measType>:min=<v0>,max=<v1>,act=<v2>". A key with fewer than
// three values stops printing with an Internal error; extra values are
// ignored.
func (s *Summary) Print(w io.Writer) error {
	for _, k := range s.order {
		v := s.values[k]
		if len(v) < 3 {
			return internalError("summary for %s:%s has %d values, expected 3", k.location, k.measType, len(v))
		}
		_, err := fmt.Fprintf(w, "%s:%s:min=%s,max=%s,act=%s\n",
			k.location, k.measType, FormatValue(v[0]), FormatValue(v[1]), FormatValue(v[2]))
		if err != nil {
			return err
		}
	}
	return nil
}
