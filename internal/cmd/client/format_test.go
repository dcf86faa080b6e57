package client

import (
	"bytes"
	"math"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{21, "21.0"},
		{21.5, "21.5"},
		{-3.25, "-3.25"},
		{0.1, "0.1"},
		{1013.25, "1013.25"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRecords(t *testing.T) {
	e := &dswsv1.Event{DateTime: "2024-05-01 12:00:00", Location: "Garden", MeasType: "Temp", MeasValue: 21.5}
	if got := FormatEvent(e); got != "2024-05-01 12:00:00 Garden:Temp=21.5" {
		t.Errorf("FormatEvent = %q", got)
	}
	if got := FormatLocation(&dswsv1.Location{Location: "Garden", MeasType: "Temp"}); got != "Garden:Temp" {
		t.Errorf("FormatLocation = %q", got)
	}
	si := &dswsv1.SensorInfo{SensorId: "42", Location: "Garden", LastSeen: "2024-05-01 12:00:00"}
	if got := FormatSensorInfo(si); got != "42,Garden,2024-05-01 12:00:00" {
		t.Errorf("FormatSensorInfo = %q", got)
	}
}

func TestSummaryPositional(t *testing.T) {
	s := NewSummary()
	// values are taken positionally, never sorted
	for _, e := range []*dswsv1.Event{
		{Location: "Garden", MeasType: "Temp", MeasValue: 30},
		{Location: "Attic", MeasType: "Humidity", MeasValue: 40},
		{Location: "Garden", MeasType: "Temp", MeasValue: 10},
		{Location: "Attic", MeasType: "Humidity", MeasValue: 60},
		{Location: "Garden", MeasType: "Temp", MeasValue: 20},
		{Location: "Attic", MeasType: "Humidity", MeasValue: 50},
		{Location: "Attic", MeasType: "Humidity", MeasValue: 99},
	} {
		s.Add(e)
	}
	var buf bytes.Buffer
	if err := s.Print(&buf); err != nil {
		t.Fatalf("print: %v", err)
	}
	want := "Garden:Temp:min=30.0,max=10.0,act=20.0\n" +
		"Attic:Humidity:min=40.0,max=60.0,act=50.0\n"
	if buf.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestSummaryShortKey(t *testing.T) {
	s := NewSummary()
	for _, v := range []float64{1, 2, 3} {
		s.Add(&dswsv1.Event{Location: "Garden", MeasType: "Temp", MeasValue: v})
	}
	s.Add(&dswsv1.Event{Location: "Shed", MeasType: "Temp", MeasValue: 5})

	var buf bytes.Buffer
	err := s.Print(&buf)
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if buf.String() != "Garden:Temp:min=1.0,max=2.0,act=3.0\n" {
		t.Fatalf("earlier keys should print, got %q", buf.String())
	}
}

func TestErrorMessage(t *testing.T) {
	err := notFound("location %s not found", "Attic")
	if got := ErrorMessage(err); got != "location Attic not found (NotFound)" {
		t.Fatalf("ErrorMessage = %q", got)
	}
}
