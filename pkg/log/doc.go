// Package log provides the structured logging facade used by the dsws client.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Records are routed through log/slog
// using a bridge handler that hands them to a Formatter and one or more
// Outputs.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.WarnLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("client"), log.Str("server", "webpi2:50051"))
//	l.Info("dialing")
//
// # Interop
//
// grpc-go writes its own diagnostics through grpclog. RedirectGRPCLog sends
// them to a Logger so that a single level setting controls all output.
package log
