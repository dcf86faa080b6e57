package transports

import (
	"context"
	"errors"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/protobuf/types/known/emptypb"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
	logpkg "github.com/rzbill/dsws/pkg/log"
)

const pickFirstServiceConfig = `{"loadBalancingConfig":[{"pick_first":{}}]}`

// Options configures Dial.
type Options struct {
	// Target is the host:port of the EventServer.
	Target string
	// KeepaliveTimeout bounds the wait for a keepalive ack; zero disables
	// the keepalive parameters.
	KeepaliveTimeout time.Duration
	// DialOptions are appended after the defaults, mainly for tests.
	DialOptions []grpc.DialOption
	Logger      logpkg.Logger
}

// GrpcTransport implements TelemetryTransport over a single gRPC connection.
type GrpcTransport struct {
	conn   *grpc.ClientConn
	cli    dswsv1.EventServerClient
	logger logpkg.Logger
}

var _ TelemetryTransport = (*GrpcTransport)(nil)

// Dial opens the connection. The channel is plaintext, uses pick_first and
// has retries disabled: every failure surfaces to the caller as is.
func Dial(ctx context.Context, opts Options) (*GrpcTransport, error) {
	dopts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(pickFirstServiceConfig),
		grpc.WithDisableRetry(),
	}
	if opts.KeepaliveTimeout > 0 {
		dopts = append(dopts, grpc.WithKeepaliveParams(keepalive.ClientParameters{Timeout: opts.KeepaliveTimeout}))
	}
	dopts = append(dopts, opts.DialOptions...)

	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithLevel(logpkg.ErrorLevel))
	}
	logger = logger.WithComponent("transport")

	conn, err := grpc.DialContext(ctx, opts.Target, dopts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("connection opened", logpkg.Str("target", opts.Target))
	return &GrpcTransport{conn: conn, cli: dswsv1.NewEventServerClient(conn), logger: logger}, nil
}

// Close releases the connection.
func (t *GrpcTransport) Close() error {
	t.logger.Debug("connection closed")
	return t.conn.Close()
}

// drain receives from stream until io.EOF, handing each record to on.
func drain[T any](stream grpc.ServerStreamingClient[T], on func(*T) error) (int, error) {
	n := 0
	for {
		m, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		n++
		if err := on(m); err != nil {
			return n, err
		}
	}
}

// streamCall opens a server stream with open and drains it into on.
func streamCall[T any](t *GrpcTransport, op string, open func() (grpc.ServerStreamingClient[T], error), on func(*T) error) error {
	l := t.logger.With(logpkg.Operation(op))
	start := time.Now()
	stream, err := open()
	if err != nil {
		l.Debug("rpc failed", logpkg.Err(err))
		return err
	}
	n, err := drain(stream, on)
	if err != nil {
		l.Debug("stream ended with error", logpkg.Int("records", n), logpkg.Err(err))
		return err
	}
	l.Debug("stream complete", logpkg.Int("records", n), logpkg.Duration("elapsed", time.Since(start)))
	return nil
}

func (t *GrpcTransport) unaryCall(op string, call func() error) error {
	l := t.logger.With(logpkg.Operation(op))
	if err := call(); err != nil {
		l.Debug("rpc failed", logpkg.Err(err))
		return err
	}
	l.Debug("rpc complete")
	return nil
}

func (t *GrpcTransport) LatestEvents(ctx context.Context, onEvent EventFunc) error {
	return streamCall(t, "GetLatestEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetLatestEvents(ctx, &emptypb.Empty{})
	}, onEvent)
}

func (t *GrpcTransport) MinimumEvents(ctx context.Context, onEvent EventFunc) error {
	return streamCall(t, "GetMinimumEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetMinimumEvents(ctx, &emptypb.Empty{})
	}, onEvent)
}

func (t *GrpcTransport) MaximumEvents(ctx context.Context, onEvent EventFunc) error {
	return streamCall(t, "GetMaximumEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetMaximumEvents(ctx, &emptypb.Empty{})
	}, onEvent)
}

func (t *GrpcTransport) UnknownEvents(ctx context.Context, onEvent EventFunc) error {
	return streamCall(t, "GetUnknownEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetUnknownEvents(ctx, &emptypb.Empty{})
	}, onEvent)
}

func (t *GrpcTransport) AllEvents(ctx context.Context, onEvent EventFunc) error {
	return streamCall(t, "GetAllEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetAllEvents(ctx, &emptypb.Empty{})
	}, onEvent)
}

func (t *GrpcTransport) SummaryEvents(ctx context.Context, onEvent EventFunc) error {
	return streamCall(t, "GetSummaryEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetSummaryEvents(ctx, &emptypb.Empty{})
	}, onEvent)
}

// LocationEvents streams events for location; an empty measType means all types.
func (t *GrpcTransport) LocationEvents(ctx context.Context, location, measType string, onEvent EventFunc) error {
	return streamCall(t, "GetLocationEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetLocationEvents(ctx, &dswsv1.Location{Location: location, MeasType: measType})
	}, onEvent)
}

func (t *GrpcTransport) LocationClassEvents(ctx context.Context, class string, onEvent EventFunc) error {
	return streamCall(t, "GetLocationClassEvents", func() (grpc.ServerStreamingClient[dswsv1.Event], error) {
		return t.cli.GetLocationClassEvents(ctx, &dswsv1.LocationClass{LocationClass: class})
	}, onEvent)
}

func (t *GrpcTransport) Locations(ctx context.Context, onLocation LocationFunc) error {
	return streamCall(t, "GetLocations", func() (grpc.ServerStreamingClient[dswsv1.Location], error) {
		return t.cli.GetLocations(ctx, &emptypb.Empty{})
	}, onLocation)
}

func (t *GrpcTransport) AllLocations(ctx context.Context, onLocation LocationFunc) error {
	return streamCall(t, "GetAllLocations", func() (grpc.ServerStreamingClient[dswsv1.Location], error) {
		return t.cli.GetAllLocations(ctx, &emptypb.Empty{})
	}, onLocation)
}

func (t *GrpcTransport) SensorInfo(ctx context.Context, onSensor SensorInfoFunc) error {
	return streamCall(t, "GetSensorInfo", func() (grpc.ServerStreamingClient[dswsv1.SensorInfo], error) {
		return t.cli.GetSensorInfo(ctx, &emptypb.Empty{})
	}, onSensor)
}

func (t *GrpcTransport) ClearUnknownEvents(ctx context.Context) error {
	return t.unaryCall("ClearUnknownEvents", func() error {
		_, err := t.cli.ClearUnknownEvents(ctx, &emptypb.Empty{})
		return err
	})
}

func (t *GrpcTransport) ConfigSensor(ctx context.Context, sensorID, location string) error {
	return t.unaryCall("ConfigSensor", func() error {
		_, err := t.cli.ConfigSensor(ctx, &dswsv1.SensorConfig{SensorId: sensorID, Location: location})
		return err
	})
}

func (t *GrpcTransport) DeleteSensor(ctx context.Context, sensorID string) error {
	return t.unaryCall("DeleteSensor", func() error {
		_, err := t.cli.DeleteSensor(ctx, &dswsv1.SensorId{SensorId: sensorID})
		return err
	})
}

func (t *GrpcTransport) DeleteClimeMet(ctx context.Context) error {
	return t.unaryCall("DeleteClimeMet", func() error {
		_, err := t.cli.DeleteClimeMet(ctx, &emptypb.Empty{})
		return err
	})
}

func (t *GrpcTransport) DeleteUnseenSensors(ctx context.Context) error {
	return t.unaryCall("DeleteUnseenSensors", func() error {
		_, err := t.cli.DeleteUnseenSensors(ctx, &emptypb.Empty{})
		return err
	})
}
