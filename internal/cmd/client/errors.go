package client

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func invalidArgument(format string, args ...any) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

func notFound(format string, args ...any) error {
	return status.Errorf(codes.NotFound, format, args...)
}

// ErrorMessage renders err for the terminal. Status errors, whether raised
// locally or by the server, print as "<message> (<code>)".
func ErrorMessage(err error) string {
	if s, ok := status.FromError(err); ok && s.Code() != codes.OK {
		return fmt.Sprintf("%s (%s)", s.Message(), s.Code())
	}
	return err.Error()
}

func internalError(format string, args ...any) error {
	return status.Errorf(codes.Internal, format, args...)
}
