package client

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
	"github.com/rzbill/dsws/internal/eventservertest"
)

// isolateEnv keeps the developer's config file and DSWS_* variables out of
// the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DSWS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	for _, k := range []string{"DSWS_SERVER", "DSWS_PORT", "DSWS_KEEPALIVE_TIMEOUT_MS", "DSWS_LOG_LEVEL", "DSWS_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, dial []grpc.DialOption, args ...string) result {
	t.Helper()
	isolateEnv(t)
	root := NewRoot(Options{DialOptions: dial})
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	root.SetArgs(args)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return result{stdout: out.String(), stderr: errb.String(), err: err}
}

// runBuf executes args against svc over bufconn.
func runBuf(t *testing.T, svc *eventservertest.Server, args ...string) result {
	t.Helper()
	return execute(t, []grpc.DialOption{eventservertest.ListenBuf(t, svc)}, args...)
}

func assertCalls(t *testing.T, svc *eventservertest.Server, want ...string) {
	t.Helper()
	got := svc.Calls()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", got, want)
	}
}

func TestLatestOverTCP(t *testing.T) {
	svc := &eventservertest.Server{Latest: []*dswsv1.Event{
		{DateTime: "2024-05-01 12:00:00", Location: "Garden", MeasType: "Temp", MeasValue: 21.5},
		{DateTime: "2024-05-01 12:00:05", Location: "Attic", MeasType: "Humidity", MeasValue: 40},
	}}
	host, port, err := net.SplitHostPort(eventservertest.ListenTCP(t, svc))
	if err != nil {
		t.Fatal(err)
	}

	r := execute(t, nil, "-S", host, "-P", port, "--latest")
	if r.err != nil {
		t.Fatalf("run: %v", r.err)
	}
	want := "2024-05-01 12:00:00 Garden:Temp=21.5\n2024-05-01 12:00:05 Attic:Humidity=40.0\n"
	if r.stdout != want {
		t.Fatalf("stdout = %q", r.stdout)
	}
	assertCalls(t, svc, "GetLatestEvents")
}

func TestLocationEventsChecksLocationFirst(t *testing.T) {
	svc := &eventservertest.Server{
		AllLocations: []*dswsv1.Location{{Location: "Garden"}, {Location: "Attic"}},
		ByLocation: []*dswsv1.Event{
			{DateTime: "t1", Location: "Garden", MeasType: "Temp", MeasValue: 20},
			{DateTime: "t2", Location: "Garden", MeasType: "Humidity", MeasValue: 55},
		},
	}
	r := runBuf(t, svc, "-E", "Garden")
	if r.err != nil {
		t.Fatalf("run: %v", r.err)
	}
	if r.stdout != "t1 Garden:Temp=20.0\nt2 Garden:Humidity=55.0\n" {
		t.Fatalf("stdout = %q", r.stdout)
	}
	assertCalls(t, svc, "GetAllLocations", "GetLocationEvents")
	req := svc.Requests()[1].(*dswsv1.Location)
	if req.GetLocation() != "Garden" || req.GetMeasType() != "" {
		t.Fatalf("request = %+v", req)
	}
}

func TestUnknownLocationIsNotFound(t *testing.T) {
	svc := &eventservertest.Server{AllLocations: []*dswsv1.Location{{Location: "Garden"}}}
	r := runBuf(t, svc, "--location-events", "Cellar:Temp")
	if status.Code(r.err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", r.err)
	}
	if ErrorMessage(r.err) != "location Cellar not found (NotFound)" {
		t.Fatalf("message = %q", ErrorMessage(r.err))
	}
	assertCalls(t, svc, "GetAllLocations")
}

func TestConfigSensor(t *testing.T) {
	svc := &eventservertest.Server{AllLocations: []*dswsv1.Location{{Location: "Garden"}}}
	r := runBuf(t, svc, "-f", "42=Garden")
	if r.err != nil {
		t.Fatalf("run: %v", r.err)
	}
	if r.stdout != "" {
		t.Fatalf("writes print nothing, got %q", r.stdout)
	}
	assertCalls(t, svc, "GetAllLocations", "ConfigSensor")
	cfg := svc.Requests()[1].(*dswsv1.SensorConfig)
	if cfg.GetSensorId() != "42" || cfg.GetLocation() != "Garden" {
		t.Fatalf("request = %+v", cfg)
	}
}

func TestBadSensorConfigMakesNoCalls(t *testing.T) {
	svc := &eventservertest.Server{AllLocations: []*dswsv1.Location{{Location: "Garden"}}}
	r := runBuf(t, svc, "--config-sensor", "BadFormat")
	if status.Code(r.err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", r.err)
	}
	assertCalls(t, svc)
}

func TestEmptyStreamPrintsNothing(t *testing.T) {
	svc := &eventservertest.Server{}
	r := runBuf(t, svc, "-u")
	if r.err != nil || r.stdout != "" {
		t.Fatalf("got %q, %v", r.stdout, r.err)
	}
}

func TestClearUnknownRunsAfterPrimary(t *testing.T) {
	svc := &eventservertest.Server{Sensors: []*dswsv1.SensorInfo{{SensorId: "42", Location: "Garden", LastSeen: "t1"}}}
	r := runBuf(t, svc, "-i", "-c")
	if r.err != nil {
		t.Fatalf("run: %v", r.err)
	}
	if r.stdout != "42,Garden,t1\n" {
		t.Fatalf("stdout = %q", r.stdout)
	}
	assertCalls(t, svc, "GetSensorInfo", "ClearUnknownEvents")
}

func TestClearUnknownSkippedOnFailure(t *testing.T) {
	svc := &eventservertest.Server{StreamErr: status.Error(codes.Unavailable, "down")}
	r := runBuf(t, svc, "-m", "--clear-unknown")
	if status.Code(r.err) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", r.err)
	}
	assertCalls(t, svc, "GetMinimumEvents")
}

func TestMidStreamFailureKeepsOutput(t *testing.T) {
	svc := &eventservertest.Server{
		All: []*dswsv1.Event{
			{DateTime: "t1", Location: "Garden", MeasType: "Temp", MeasValue: 1},
			{DateTime: "t2", Location: "Garden", MeasType: "Temp", MeasValue: 2},
		},
		StreamErr:      status.Error(codes.Internal, "cache corrupt"),
		StreamErrAfter: 1,
	}
	r := runBuf(t, svc, "-a")
	if status.Code(r.err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", r.err)
	}
	if r.stdout != "t1 Garden:Temp=1.0\n" {
		t.Fatalf("stdout = %q", r.stdout)
	}
}

func TestSummary(t *testing.T) {
	svc := &eventservertest.Server{Summary: []*dswsv1.Event{
		{Location: "Garden", MeasType: "Temp", MeasValue: 12},
		{Location: "Garden", MeasType: "Temp", MeasValue: 25},
		{Location: "Garden", MeasType: "Temp", MeasValue: 18.5},
	}}
	r := runBuf(t, svc, "-s")
	if r.err != nil {
		t.Fatalf("run: %v", r.err)
	}
	if r.stdout != "Garden:Temp:min=12.0,max=25.0,act=18.5\n" {
		t.Fatalf("stdout = %q", r.stdout)
	}
}

func TestLocationsAndClass(t *testing.T) {
	svc := &eventservertest.Server{
		Locations:    []*dswsv1.Location{{Location: "Garden", MeasType: "Temp"}},
		AllLocations: []*dswsv1.Location{{Location: "Garden", MeasType: "Temp"}, {Location: "Shed"}},
		ByClass:      map[string][]*dswsv1.Event{"Outside": {{DateTime: "t1", Location: "Garden", MeasType: "Temp", MeasValue: 3}}},
	}
	if r := runBuf(t, svc, "-L"); r.err != nil || r.stdout != "Garden:Temp\n" {
		t.Fatalf("locations: %q, %v", r.stdout, r.err)
	}
	if r := runBuf(t, svc, "-A"); r.err != nil || r.stdout != "Garden\nShed\n" {
		t.Fatalf("all locations: %q, %v", r.stdout, r.err)
	}
	if r := runBuf(t, svc, "-C", "Outside"); r.err != nil || r.stdout != "t1 Garden:Temp=3.0\n" {
		t.Fatalf("class: %q, %v", r.stdout, r.err)
	}
	req := svc.Requests()[2].(*dswsv1.LocationClass)
	if req.GetLocationClass() != "Outside" {
		t.Fatalf("request = %+v", req)
	}
}

func TestDeletes(t *testing.T) {
	svc := &eventservertest.Server{}
	for _, args := range [][]string{{"-d", "7"}, {"-D"}, {"-U"}} {
		if r := runBuf(t, svc, args...); r.err != nil {
			t.Fatalf("%v: %v", args, r.err)
		}
	}
	assertCalls(t, svc, "DeleteSensor", "DeleteClimeMet", "DeleteUnseenSensors")
}

func TestServerErrorPropagates(t *testing.T) {
	svc := &eventservertest.Server{UnaryErr: status.Error(codes.FailedPrecondition, "sensor 7 busy")}
	r := runBuf(t, svc, "-d", "7")
	if ErrorMessage(r.err) != "sensor 7 busy (FailedPrecondition)" {
		t.Fatalf("message = %q", ErrorMessage(r.err))
	}
}

func TestFilter(t *testing.T) {
	svc := &eventservertest.Server{Maximum: []*dswsv1.Event{
		{DateTime: "t1", Location: "Garden", MeasType: "Temp", MeasValue: 25},
		{DateTime: "t2", Location: "Attic", MeasType: "Temp", MeasValue: 15},
	}}
	r := runBuf(t, svc, "-M", "--filter", "value > 20.0")
	if r.err != nil {
		t.Fatalf("run: %v", r.err)
	}
	if r.stdout != "t1 Garden:Temp=25.0\n" {
		t.Fatalf("stdout = %q", r.stdout)
	}
}

func TestInvalidFilterMakesNoCalls(t *testing.T) {
	svc := &eventservertest.Server{}
	r := runBuf(t, svc, "-l", "--filter", "value +")
	if status.Code(r.err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", r.err)
	}
	assertCalls(t, svc)
}

func TestFlagGroups(t *testing.T) {
	svc := &eventservertest.Server{}
	if r := runBuf(t, svc); r.err == nil {
		t.Fatal("expected an error without a command flag")
	}
	if r := runBuf(t, svc, "-l", "-a"); r.err == nil {
		t.Fatal("expected an error for two command flags")
	}
	assertCalls(t, svc)
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	svc := &eventservertest.Server{}
	r := runBuf(t, svc, "-l", "--log-level", "debug")
	if r.err != nil {
		t.Fatalf("run: %v", r.err)
	}
	if r.stdout != "" {
		t.Fatalf("stdout should stay clean, got %q", r.stdout)
	}
	if !strings.Contains(r.stderr, "running command") || !strings.Contains(r.stderr, "invocation=") {
		t.Fatalf("stderr = %q", r.stderr)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	r := runBuf(t, &eventservertest.Server{}, "-l", "--log-level", "loud")
	if status.Code(r.err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", r.err)
	}
}

func TestConfigSensorUnknownLocation(t *testing.T) {
	svc := &eventservertest.Server{AllLocations: []*dswsv1.Location{{Location: "Garden"}}}
	r := runBuf(t, svc, "-f", "42=Cellar")
	if status.Code(r.err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", r.err)
	}
	assertCalls(t, svc, "GetAllLocations")
}

func TestEmptyLocationIsNotFound(t *testing.T) {
	svc := &eventservertest.Server{AllLocations: []*dswsv1.Location{{Location: "Garden"}}}
	r := runBuf(t, svc, "-E", ":Temp")
	if status.Code(r.err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", r.err)
	}
	assertCalls(t, svc, "GetAllLocations")
}

func TestFalseCommandFlagIsNotASelection(t *testing.T) {
	svc := &eventservertest.Server{}
	r := runBuf(t, svc, "--latest=false")
	if status.Code(r.err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", r.err)
	}
	assertCalls(t, svc)
}

func TestFilterEvalErrorStopsOutput(t *testing.T) {
	svc := &eventservertest.Server{Latest: []*dswsv1.Event{
		{DateTime: "t1", Location: "Garden", MeasType: "Temp", MeasValue: 0},
		{DateTime: "t2", Location: "Garden", MeasType: "Temp", MeasValue: 5},
		{DateTime: "t3", Location: "Garden", MeasType: "Temp", MeasValue: 1},
	}}
	r := runBuf(t, svc, "-l", "--filter", "[1, 2][int(value)] == 1")
	if status.Code(r.err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", r.err)
	}
	if !strings.Contains(ErrorMessage(r.err), "t2 Garden:Temp=5.0") {
		t.Fatalf("message should name the event, got %q", ErrorMessage(r.err))
	}
	if r.stdout != "t1 Garden:Temp=0.0\n" {
		t.Fatalf("stdout = %q", r.stdout)
	}
}

func TestBadEnvPortIsInvalidArgument(t *testing.T) {
	svc := &eventservertest.Server{}
	dial := []grpc.DialOption{eventservertest.ListenBuf(t, svc)}
	isolateEnv(t)
	t.Setenv("DSWS_PORT", "fifty")

	root := NewRoot(Options{DialOptions: dial})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"-l"})
	err := root.Execute()
	if status.Code(err) != codes.InvalidArgument || !strings.Contains(err.Error(), "DSWS_PORT") {
		t.Fatalf("expected InvalidArgument naming DSWS_PORT, got %v", err)
	}
	assertCalls(t, svc)
}
