package log

import (
	"fmt"

	"google.golang.org/grpc/grpclog"
)

// RedirectGRPCLog installs logger as grpc-go's internal logger. grpc info
// chatter is demoted to debug. It must be called before any gRPC activity.
func RedirectGRPCLog(logger Logger) {
	grpclog.SetLoggerV2(&grpcLogger{l: logger.WithComponent("grpc")})
}

// grpcLogger adapts Logger to grpclog.LoggerV2.
type grpcLogger struct {
	l Logger
}

func (g *grpcLogger) Info(args ...any)                 { g.l.Debug(fmt.Sprint(args...)) }
func (g *grpcLogger) Infoln(args ...any)               { g.l.Debug(sprintln(args)) }
func (g *grpcLogger) Infof(format string, args ...any) { g.l.Debugf(format, args...) }

func (g *grpcLogger) Warning(args ...any)                 { g.l.Warn(fmt.Sprint(args...)) }
func (g *grpcLogger) Warningln(args ...any)               { g.l.Warn(sprintln(args)) }
func (g *grpcLogger) Warningf(format string, args ...any) { g.l.Warnf(format, args...) }

func (g *grpcLogger) Error(args ...any)                 { g.l.Error(fmt.Sprint(args...)) }
func (g *grpcLogger) Errorln(args ...any)               { g.l.Error(sprintln(args)) }
func (g *grpcLogger) Errorf(format string, args ...any) { g.l.Errorf(format, args...) }

func (g *grpcLogger) Fatal(args ...any)   { g.l.Fatal(fmt.Sprint(args...)) }
func (g *grpcLogger) Fatalln(args ...any) { g.l.Fatal(sprintln(args)) }
func (g *grpcLogger) Fatalf(format string, args ...any) {
	g.l.Fatal(fmt.Sprintf(format, args...))
}

// V reports whether verbosity level v is enabled; only 0 maps through.
func (g *grpcLogger) V(v int) bool {
	return v == 0 && g.l.GetLevel() <= DebugLevel
}

func sprintln(args []any) string {
	s := fmt.Sprintln(args...)
	return s[:len(s)-1]
}
