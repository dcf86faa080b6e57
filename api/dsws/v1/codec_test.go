package dswsv1

import (
	"bytes"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestLocationWireBytes(t *testing.T) {
	b, err := Codec().Marshal(&Location{Location: "Garden", MeasType: "Temp"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := append([]byte{0x0a, 0x06}, "Garden"...)
	want = append(want, 0x12, 0x04)
	want = append(want, "Temp"...)
	if !bytes.Equal(b, want) {
		t.Fatalf("got % x, want % x", b, want)
	}
}

func TestZeroFieldsOmitted(t *testing.T) {
	b, err := Codec().Marshal(&Location{Location: "Garden"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(b) != 8 {
		t.Fatalf("empty meas type should not be encoded, got % x", b)
	}
	b, _ = Codec().Marshal(&Event{})
	if len(b) != 0 {
		t.Fatalf("zero event should encode empty, got % x", b)
	}
}

func TestEventRoundTripKeepsValue(t *testing.T) {
	c := Codec()
	for _, v := range []float64{21.5, -0.25, math.Inf(1), 1e-9} {
		in := &Event{DateTime: "2024-05-01 12:00:00", Location: "Garden", MeasType: "Temp", MeasValue: v}
		b, err := c.Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var out Event
		if err := c.Unmarshal(b, &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out != *in {
			t.Fatalf("got %+v, want %+v", out, *in)
		}
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 300)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "42")
	b = protowire.AppendTag(b, 7, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, "2024-05-01")

	var si SensorInfo
	if err := Codec().Unmarshal(b, &si); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if si.SensorId != "42" || si.LastSeen != "2024-05-01" || si.Location != "" {
		t.Fatalf("got %+v", si)
	}
}

func TestTruncatedInputFails(t *testing.T) {
	b, _ := Codec().Marshal(&SensorConfig{SensorId: "42", Location: "Garden"})
	var sc SensorConfig
	if err := Codec().Unmarshal(b[:len(b)-2], &sc); err == nil {
		t.Fatal("expected an error for truncated input")
	}
}

func TestEmptyUsesProtobuf(t *testing.T) {
	b, err := Codec().Marshal(&emptypb.Empty{})
	if err != nil || len(b) != 0 {
		t.Fatalf("got % x, %v", b, err)
	}
	if err := Codec().Unmarshal(nil, &emptypb.Empty{}); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := Codec().Marshal(struct{}{}); err == nil {
		t.Fatal("expected an error for a non message value")
	}
}

func TestNilGetters(t *testing.T) {
	var e *Event
	var si *SensorInfo
	if e.GetLocation() != "" || e.GetMeasValue() != 0 || si.GetLastSeen() != "" {
		t.Fatal("nil getters should return zero values")
	}
}

func TestServiceDescCoversAllMethods(t *testing.T) {
	if got := len(EventServer_ServiceDesc.Methods) + len(EventServer_ServiceDesc.Streams); got != 16 {
		t.Fatalf("service has %d methods, want 16", got)
	}
	if EventServer_ServiceDesc.ServiceName != "dsws.EventServer" {
		t.Fatalf("service name %q", EventServer_ServiceDesc.ServiceName)
	}
}
