// Package eventservertest provides an in-memory EventServer for tests. It
// records every call it receives so tests can assert which RPCs a client
// issued, and can fail a stream part way through.
package eventservertest

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
)

const bufSize = 1 << 20

// Server is a scripted EventServer. Populate the exported fields before
// serving; they are read-only afterwards.
type Server struct {
	dswsv1.UnimplementedEventServerServer

	Latest  []*dswsv1.Event
	Minimum []*dswsv1.Event
	Maximum []*dswsv1.Event
	Unknown []*dswsv1.Event
	All     []*dswsv1.Event
	Summary []*dswsv1.Event
	// ByLocation is searched by GetLocationEvents using the request filter.
	ByLocation []*dswsv1.Event
	ByClass    map[string][]*dswsv1.Event

	Locations    []*dswsv1.Location
	AllLocations []*dswsv1.Location
	Sensors      []*dswsv1.SensorInfo

	// StreamErr, when set, is returned by every event stream after
	// StreamErrAfter records have been sent.
	StreamErr      error
	StreamErrAfter int
	// UnaryErr, when set, is returned by every write RPC.
	UnaryErr error

	mu       sync.Mutex
	calls    []string
	requests []any
}

// Calls returns the method names received so far, in order.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Requests returns the decoded request messages, parallel to Calls.
func (s *Server) Requests() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]any(nil), s.requests...)
}

func (s *Server) record(method string, req any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, method)
	s.requests = append(s.requests, req)
}

func (s *Server) sendEvents(events []*dswsv1.Event, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	for i, e := range events {
		if s.StreamErr != nil && i == s.StreamErrAfter {
			return s.StreamErr
		}
		if err := stream.Send(e); err != nil {
			return err
		}
	}
	if s.StreamErr != nil {
		return s.StreamErr
	}
	return nil
}

func (s *Server) GetLatestEvents(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetLatestEvents", in)
	return s.sendEvents(s.Latest, stream)
}

func (s *Server) GetMinimumEvents(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetMinimumEvents", in)
	return s.sendEvents(s.Minimum, stream)
}

func (s *Server) GetMaximumEvents(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetMaximumEvents", in)
	return s.sendEvents(s.Maximum, stream)
}

func (s *Server) GetUnknownEvents(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetUnknownEvents", in)
	return s.sendEvents(s.Unknown, stream)
}

func (s *Server) GetAllEvents(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetAllEvents", in)
	return s.sendEvents(s.All, stream)
}

func (s *Server) GetSummaryEvents(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetSummaryEvents", in)
	return s.sendEvents(s.Summary, stream)
}

func (s *Server) GetLocationEvents(in *dswsv1.Location, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetLocationEvents", in)
	var out []*dswsv1.Event
	for _, e := range s.ByLocation {
		if e.GetLocation() != in.GetLocation() {
			continue
		}
		if in.GetMeasType() != "" && e.GetMeasType() != in.GetMeasType() {
			continue
		}
		out = append(out, e)
	}
	return s.sendEvents(out, stream)
}

func (s *Server) GetLocationClassEvents(in *dswsv1.LocationClass, stream grpc.ServerStreamingServer[dswsv1.Event]) error {
	s.record("GetLocationClassEvents", in)
	return s.sendEvents(s.ByClass[in.GetLocationClass()], stream)
}

func (s *Server) GetLocations(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Location]) error {
	s.record("GetLocations", in)
	for _, l := range s.Locations {
		if err := stream.Send(l); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) GetAllLocations(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.Location]) error {
	s.record("GetAllLocations", in)
	for _, l := range s.AllLocations {
		if err := stream.Send(l); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) GetSensorInfo(in *emptypb.Empty, stream grpc.ServerStreamingServer[dswsv1.SensorInfo]) error {
	s.record("GetSensorInfo", in)
	for _, si := range s.Sensors {
		if err := stream.Send(si); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) write(method string, req any) (*emptypb.Empty, error) {
	s.record(method, req)
	if s.UnaryErr != nil {
		return nil, s.UnaryErr
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) ClearUnknownEvents(_ context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	return s.write("ClearUnknownEvents", in)
}

func (s *Server) ConfigSensor(_ context.Context, in *dswsv1.SensorConfig) (*emptypb.Empty, error) {
	return s.write("ConfigSensor", in)
}

func (s *Server) DeleteSensor(_ context.Context, in *dswsv1.SensorId) (*emptypb.Empty, error) {
	return s.write("DeleteSensor", in)
}

func (s *Server) DeleteClimeMet(_ context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	return s.write("DeleteClimeMet", in)
}

func (s *Server) DeleteUnseenSensors(_ context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	return s.write("DeleteUnseenSensors", in)
}

func newGRPCServer(svc *Server) *grpc.Server {
	gs := grpc.NewServer(dswsv1.ServerOptions()...)
	dswsv1.RegisterEventServerServer(gs, svc)
	return gs
}

// ListenTCP serves svc on a loopback TCP port and returns its host:port.
// The server is stopped when the test finishes.
func ListenTCP(t testing.TB, svc *Server) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	gs := newGRPCServer(svc)
	done := make(chan struct{})
	go func() {
		_ = gs.Serve(l)
		close(done)
	}()
	t.Cleanup(func() { stop(gs, done) })
	return l.Addr().String()
}

// ListenBuf serves svc over an in-process bufconn listener and returns the
// dial option that reaches it. Any target string may be used when dialing.
func ListenBuf(t testing.TB, svc *Server) grpc.DialOption {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	gs := newGRPCServer(svc)
	done := make(chan struct{})
	go func() {
		_ = gs.Serve(lis)
		close(done)
	}()
	t.Cleanup(func() { stop(gs, done) })
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func stop(gs *grpc.Server, done <-chan struct{}) {
	gs.GracefulStop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		gs.Stop()
	}
}
