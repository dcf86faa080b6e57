// Package id generates short, time-ordered identifiers used to tag the log
// output of one client invocation.
//
// # Format
//
// An ID is 12 bytes: [6 bytes big-endian ms timestamp][6 random bytes].
// Byte-wise comparison therefore follows creation time at millisecond
// granularity, and the random tail keeps concurrent invocations apart.
//
// Usage
//
//	inv := id.New()
//	logger = logger.With(log.Str(log.InvocationKey, inv.String()))
package id
