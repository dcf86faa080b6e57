package dswsv1

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is implemented by every message in this package.
type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

// Event is a single measurement: when, where, what and the value.
type Event struct {
	DateTime  string
	Location  string
	MeasType  string
	MeasValue float64
}

func (x *Event) GetDateTime() string {
	if x != nil {
		return x.DateTime
	}
	return ""
}

func (x *Event) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Event) GetMeasType() string {
	if x != nil {
		return x.MeasType
	}
	return ""
}

func (x *Event) GetMeasValue() float64 {
	if x != nil {
		return x.MeasValue
	}
	return 0
}

func (x *Event) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.DateTime)
	b = appendString(b, 2, x.Location)
	b = appendString(b, 3, x.MeasType)
	return appendDouble(b, 4, x.MeasValue)
}

func (x *Event) unmarshalWire(b []byte) error {
	*x = Event{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.DateTime)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Location)
		case num == 3 && typ == protowire.BytesType:
			return consumeString(b, &x.MeasType)
		case num == 4 && typ == protowire.Fixed64Type:
			return consumeDouble(b, &x.MeasValue)
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

// Location names a place together with one measurement type observed there.
// As a request it filters events; MeasType may be empty.
type Location struct {
	Location string
	MeasType string
}

func (x *Location) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Location) GetMeasType() string {
	if x != nil {
		return x.MeasType
	}
	return ""
}

func (x *Location) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Location)
	return appendString(b, 2, x.MeasType)
}

func (x *Location) unmarshalWire(b []byte) error {
	*x = Location{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.Location)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.MeasType)
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

// LocationClass selects a group of locations, e.g. "Outside".
type LocationClass struct {
	LocationClass string
}

func (x *LocationClass) GetLocationClass() string {
	if x != nil {
		return x.LocationClass
	}
	return ""
}

func (x *LocationClass) appendWire(b []byte) []byte {
	return appendString(b, 1, x.LocationClass)
}

func (x *LocationClass) unmarshalWire(b []byte) error {
	*x = LocationClass{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(b, &x.LocationClass)
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

// SensorConfig binds a sensor to a location.
type SensorConfig struct {
	SensorId string
	Location string
}

func (x *SensorConfig) GetSensorId() string {
	if x != nil {
		return x.SensorId
	}
	return ""
}

func (x *SensorConfig) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *SensorConfig) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.SensorId)
	return appendString(b, 2, x.Location)
}

func (x *SensorConfig) unmarshalWire(b []byte) error {
	*x = SensorConfig{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.SensorId)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Location)
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

type SensorId struct {
	SensorId string
}

func (x *SensorId) GetSensorId() string {
	if x != nil {
		return x.SensorId
	}
	return ""
}

func (x *SensorId) appendWire(b []byte) []byte {
	return appendString(b, 1, x.SensorId)
}

func (x *SensorId) unmarshalWire(b []byte) error {
	*x = SensorId{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(b, &x.SensorId)
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

// SensorInfo reports where a sensor is configured and when it last reported.
type SensorInfo struct {
	SensorId string
	Location string
	LastSeen string
}

func (x *SensorInfo) GetSensorId() string {
	if x != nil {
		return x.SensorId
	}
	return ""
}

func (x *SensorInfo) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *SensorInfo) GetLastSeen() string {
	if x != nil {
		return x.LastSeen
	}
	return ""
}

func (x *SensorInfo) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.SensorId)
	b = appendString(b, 2, x.Location)
	return appendString(b, 3, x.LastSeen)
}

func (x *SensorInfo) unmarshalWire(b []byte) error {
	*x = SensorInfo{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.SensorId)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Location)
		case num == 3 && typ == protowire.BytesType:
			return consumeString(b, &x.LastSeen)
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

// proto3 omits zero-valued scalars on the wire.
func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	bits := math.Float64bits(v)
	if bits == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, bits)
}

func consumeString(b []byte, dst *string) int {
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*dst = v
	}
	return n
}

func consumeDouble(b []byte, dst *float64) int {
	v, n := protowire.ConsumeFixed64(b)
	if n >= 0 {
		*dst = math.Float64frombits(v)
	}
	return n
}

// consumeFields walks b tag by tag. field consumes the value that follows a
// tag and returns its length, or a negative protowire error code.
func consumeFields(b []byte, field func(num protowire.Number, typ protowire.Type, b []byte) int) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("dsws: bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		n = field(num, typ, b)
		if n < 0 {
			return fmt.Errorf("dsws: field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}
