// Package transports provides the transport used by the CLI to reach the
// telemetry EventServer.
package transports

import (
	"context"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
)

// EventFunc receives streamed events in arrival order. Returning an error
// stops the stream and the error is returned to the caller.
type EventFunc func(*dswsv1.Event) error

// LocationFunc receives streamed location entries.
type LocationFunc func(*dswsv1.Location) error

// SensorInfoFunc receives streamed sensor info entries.
type SensorInfoFunc func(*dswsv1.SensorInfo) error

// TelemetryTransport abstracts the EventServer operations used by the CLI.
// One transport is one connection; Close releases it.
type TelemetryTransport interface {
	LatestEvents(ctx context.Context, onEvent EventFunc) error
	MinimumEvents(ctx context.Context, onEvent EventFunc) error
	MaximumEvents(ctx context.Context, onEvent EventFunc) error
	UnknownEvents(ctx context.Context, onEvent EventFunc) error
	AllEvents(ctx context.Context, onEvent EventFunc) error
	SummaryEvents(ctx context.Context, onEvent EventFunc) error
	LocationEvents(ctx context.Context, location, measType string, onEvent EventFunc) error
	LocationClassEvents(ctx context.Context, class string, onEvent EventFunc) error

	Locations(ctx context.Context, onLocation LocationFunc) error
	AllLocations(ctx context.Context, onLocation LocationFunc) error
	SensorInfo(ctx context.Context, onSensor SensorInfoFunc) error

	ClearUnknownEvents(ctx context.Context) error
	ConfigSensor(ctx context.Context, sensorID, location string) error
	DeleteSensor(ctx context.Context, sensorID string) error
	DeleteClimeMet(ctx context.Context) error
	DeleteUnseenSensors(ctx context.Context) error

	Close() error
}
