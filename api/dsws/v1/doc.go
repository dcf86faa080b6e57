// Package dswsv1 holds the Go side of the dsws EventServer contract
// described in dsws.proto.
//
// The messages are plain structs that encode themselves to the protobuf wire
// format with protowire, and the client/server bindings mirror what
// protoc-gen-go-grpc emits. Calls made through NewEventServerClient and
// servers built with ServerOptions use Codec, which handles both these
// messages and regular proto.Message values such as emptypb.Empty. The codec
// registers under the "proto" name, so peers built from dsws.proto with
// the stock toolchain interoperate unchanged.
package dswsv1
