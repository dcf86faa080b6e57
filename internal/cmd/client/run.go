package client

import (
	"context"
	"fmt"
	"io"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
	transports "github.com/rzbill/dsws/internal/cmd/client/transports"
	"github.com/rzbill/dsws/internal/eventfilter"
	logpkg "github.com/rzbill/dsws/pkg/log"
)

// Executor runs a Command against a transport and writes results to Out.
type Executor struct {
	Transport transports.TelemetryTransport
	Out       io.Writer
	// Filter narrows event output; the zero value prints everything.
	Filter eventfilter.Filter
	Logger logpkg.Logger
}

// Run performs c's primary command and then, if requested and the primary
// command succeeded, clears unknown events.
func (x *Executor) Run(ctx context.Context, c Command) error {
	l := x.logger().With(logpkg.Operation(c.Kind.String()))
	l.Debug("running command")
	if err := x.runPrimary(ctx, c); err != nil {
		return err
	}
	if c.ClearUnknown {
		l.Debug("clearing unknown events")
		return x.Transport.ClearUnknownEvents(ctx)
	}
	return nil
}

func (x *Executor) runPrimary(ctx context.Context, c Command) error {
	t := x.Transport
	switch c.Kind {
	case KindLatest:
		return t.LatestEvents(ctx, x.printEvent)
	case KindMinimum:
		return t.MinimumEvents(ctx, x.printEvent)
	case KindMaximum:
		return t.MaximumEvents(ctx, x.printEvent)
	case KindUnknown:
		return t.UnknownEvents(ctx, x.printEvent)
	case KindAll:
		return t.AllEvents(ctx, x.printEvent)
	case KindLocations:
		return t.Locations(ctx, func(l *dswsv1.Location) error {
			return x.println(FormatLocation(l))
		})
	case KindAllLocations:
		return t.AllLocations(ctx, func(l *dswsv1.Location) error {
			return x.println(l.GetLocation())
		})
	case KindLocationEvents:
		if err := x.requireLocation(ctx, c.Location.Location); err != nil {
			return err
		}
		return t.LocationEvents(ctx, c.Location.Location, c.Location.MeasType, x.printEvent)
	case KindLocationClass:
		return t.LocationClassEvents(ctx, c.Class, x.printEvent)
	case KindSummary:
		return x.summary(ctx)
	case KindConfigSensor:
		if err := x.requireLocation(ctx, c.Sensor.Location); err != nil {
			return err
		}
		return t.ConfigSensor(ctx, c.Sensor.SensorID, c.Sensor.Location)
	case KindDeleteSensor:
		return t.DeleteSensor(ctx, c.SensorID)
	case KindDeleteClimeMet:
		return t.DeleteClimeMet(ctx)
	case KindDeleteUnseen:
		return t.DeleteUnseenSensors(ctx)
	case KindSensorInfo:
		return t.SensorInfo(ctx, func(s *dswsv1.SensorInfo) error {
			return x.println(FormatSensorInfo(s))
		})
	}
	return invalidArgument("unsupported command %d", int(c.Kind))
}

// requireLocation fails with NotFound unless location appears in the
// server's full location listing. The listing can change before the
// dependent call is made; that window is accepted.
func (x *Executor) requireLocation(ctx context.Context, location string) error {
	known := false
	err := x.Transport.AllLocations(ctx, func(l *dswsv1.Location) error {
		if l.GetLocation() == location {
			known = true
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !known {
		return notFound("location %s not found", location)
	}
	return nil
}

// summary is not filtered: dropping records would shift the positional
// min/max/act mapping.
func (x *Executor) summary(ctx context.Context) error {
	s := NewSummary()
	err := x.Transport.SummaryEvents(ctx, func(e *dswsv1.Event) error {
		s.Add(e)
		return nil
	})
	if err != nil {
		return err
	}
	return s.Print(x.Out)
}

func (x *Executor) printEvent(e *dswsv1.Event) error {
	ok, err := x.Filter.Match(e)
	if err != nil {
		return invalidArgument("evaluate --filter on %s: %v", FormatEvent(e), err)
	}
	if !ok {
		return nil
	}
	return x.println(FormatEvent(e))
}

func (x *Executor) println(line string) error {
	_, err := fmt.Fprintln(x.Out, line)
	return err
}

func (x *Executor) logger() logpkg.Logger {
	if x.Logger == nil {
		x.Logger = logpkg.NewLogger(logpkg.WithLevel(logpkg.ErrorLevel))
	}
	return x.Logger
}
