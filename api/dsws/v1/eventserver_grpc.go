package dswsv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const _ = grpc.SupportPackageIsVersion9

const (
	EventServer_GetLatestEvents_FullMethodName        = "/dsws.EventServer/GetLatestEvents"
	EventServer_GetMinimumEvents_FullMethodName       = "/dsws.EventServer/GetMinimumEvents"
	EventServer_GetMaximumEvents_FullMethodName       = "/dsws.EventServer/GetMaximumEvents"
	EventServer_GetUnknownEvents_FullMethodName       = "/dsws.EventServer/GetUnknownEvents"
	EventServer_ClearUnknownEvents_FullMethodName     = "/dsws.EventServer/ClearUnknownEvents"
	EventServer_GetLocations_FullMethodName           = "/dsws.EventServer/GetLocations"
	EventServer_GetAllLocations_FullMethodName        = "/dsws.EventServer/GetAllLocations"
	EventServer_GetLocationEvents_FullMethodName      = "/dsws.EventServer/GetLocationEvents"
	EventServer_GetLocationClassEvents_FullMethodName = "/dsws.EventServer/GetLocationClassEvents"
	EventServer_GetSummaryEvents_FullMethodName       = "/dsws.EventServer/GetSummaryEvents"
	EventServer_GetAllEvents_FullMethodName           = "/dsws.EventServer/GetAllEvents"
	EventServer_ConfigSensor_FullMethodName           = "/dsws.EventServer/ConfigSensor"
	EventServer_DeleteSensor_FullMethodName           = "/dsws.EventServer/DeleteSensor"
	EventServer_DeleteClimeMet_FullMethodName         = "/dsws.EventServer/DeleteClimeMet"
	EventServer_DeleteUnseenSensors_FullMethodName    = "/dsws.EventServer/DeleteUnseenSensors"
	EventServer_GetSensorInfo_FullMethodName          = "/dsws.EventServer/GetSensorInfo"
)

// EventServerClient is the client API for the EventServer service.
type EventServerClient interface {
	GetLatestEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	GetMinimumEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	GetMaximumEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	GetUnknownEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	ClearUnknownEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetLocations(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Location], error)
	GetAllLocations(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Location], error)
	GetLocationEvents(ctx context.Context, in *Location, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	GetLocationClassEvents(ctx context.Context, in *LocationClass, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	GetSummaryEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	GetAllEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	ConfigSensor(ctx context.Context, in *SensorConfig, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteSensor(ctx context.Context, in *SensorId, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteClimeMet(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteUnseenSensors(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetSensorInfo(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SensorInfo], error)
}

type eventServerClient struct {
	cc grpc.ClientConnInterface
}

// NewEventServerClient wraps cc. Every call it makes is encoded with Codec.
func NewEventServerClient(cc grpc.ClientConnInterface) EventServerClient {
	return &eventServerClient{cc}
}

func (c *eventServerClient) GetLatestEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[emptypb.Empty, Event](ctx, c.cc, EventServer_GetLatestEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) GetMinimumEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[emptypb.Empty, Event](ctx, c.cc, EventServer_GetMinimumEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) GetMaximumEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[emptypb.Empty, Event](ctx, c.cc, EventServer_GetMaximumEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) GetUnknownEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[emptypb.Empty, Event](ctx, c.cc, EventServer_GetUnknownEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) ClearUnknownEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invokeUnary(ctx, c.cc, EventServer_ClearUnknownEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) GetLocations(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Location], error) {
	return openServerStream[emptypb.Empty, Location](ctx, c.cc, EventServer_GetLocations_FullMethodName, in, opts)
}

func (c *eventServerClient) GetAllLocations(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Location], error) {
	return openServerStream[emptypb.Empty, Location](ctx, c.cc, EventServer_GetAllLocations_FullMethodName, in, opts)
}

func (c *eventServerClient) GetLocationEvents(ctx context.Context, in *Location, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[Location, Event](ctx, c.cc, EventServer_GetLocationEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) GetLocationClassEvents(ctx context.Context, in *LocationClass, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[LocationClass, Event](ctx, c.cc, EventServer_GetLocationClassEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) GetSummaryEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[emptypb.Empty, Event](ctx, c.cc, EventServer_GetSummaryEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) GetAllEvents(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	return openServerStream[emptypb.Empty, Event](ctx, c.cc, EventServer_GetAllEvents_FullMethodName, in, opts)
}

func (c *eventServerClient) ConfigSensor(ctx context.Context, in *SensorConfig, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invokeUnary(ctx, c.cc, EventServer_ConfigSensor_FullMethodName, in, opts)
}

func (c *eventServerClient) DeleteSensor(ctx context.Context, in *SensorId, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invokeUnary(ctx, c.cc, EventServer_DeleteSensor_FullMethodName, in, opts)
}

func (c *eventServerClient) DeleteClimeMet(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invokeUnary(ctx, c.cc, EventServer_DeleteClimeMet_FullMethodName, in, opts)
}

func (c *eventServerClient) DeleteUnseenSensors(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invokeUnary(ctx, c.cc, EventServer_DeleteUnseenSensors_FullMethodName, in, opts)
}

func (c *eventServerClient) GetSensorInfo(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SensorInfo], error) {
	return openServerStream[emptypb.Empty, SensorInfo](ctx, c.cc, EventServer_GetSensorInfo_FullMethodName, in, opts)
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), grpc.ForceCodec(codec{})}, opts...)
}

func invokeUnary(ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := cc.Invoke(ctx, method, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func openServerStream[Req, Res any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (grpc.ServerStreamingClient[Res], error) {
	stream, err := cc.NewStream(ctx, streamDesc(method), method, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Req, Res]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func streamDesc(method string) *grpc.StreamDesc {
	for i := range EventServer_ServiceDesc.Streams {
		d := &EventServer_ServiceDesc.Streams[i]
		if "/"+EventServer_ServiceDesc.ServiceName+"/"+d.StreamName == method {
			return d
		}
	}
	return &grpc.StreamDesc{ServerStreams: true}
}

// EventServerServer is the server API for the EventServer service.
// Implementations must embed UnimplementedEventServerServer.
type EventServerServer interface {
	GetLatestEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error
	GetMinimumEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error
	GetMaximumEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error
	GetUnknownEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error
	ClearUnknownEvents(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	GetLocations(*emptypb.Empty, grpc.ServerStreamingServer[Location]) error
	GetAllLocations(*emptypb.Empty, grpc.ServerStreamingServer[Location]) error
	GetLocationEvents(*Location, grpc.ServerStreamingServer[Event]) error
	GetLocationClassEvents(*LocationClass, grpc.ServerStreamingServer[Event]) error
	GetSummaryEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error
	GetAllEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error
	ConfigSensor(context.Context, *SensorConfig) (*emptypb.Empty, error)
	DeleteSensor(context.Context, *SensorId) (*emptypb.Empty, error)
	DeleteClimeMet(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	DeleteUnseenSensors(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	GetSensorInfo(*emptypb.Empty, grpc.ServerStreamingServer[SensorInfo]) error
	mustEmbedUnimplementedEventServerServer()
}

// UnimplementedEventServerServer answers every RPC with codes.Unimplemented.
type UnimplementedEventServerServer struct{}

func (UnimplementedEventServerServer) GetLatestEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetLatestEvents not implemented")
}
func (UnimplementedEventServerServer) GetMinimumEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetMinimumEvents not implemented")
}
func (UnimplementedEventServerServer) GetMaximumEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetMaximumEvents not implemented")
}
func (UnimplementedEventServerServer) GetUnknownEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetUnknownEvents not implemented")
}
func (UnimplementedEventServerServer) ClearUnknownEvents(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearUnknownEvents not implemented")
}
func (UnimplementedEventServerServer) GetLocations(*emptypb.Empty, grpc.ServerStreamingServer[Location]) error {
	return status.Errorf(codes.Unimplemented, "method GetLocations not implemented")
}
func (UnimplementedEventServerServer) GetAllLocations(*emptypb.Empty, grpc.ServerStreamingServer[Location]) error {
	return status.Errorf(codes.Unimplemented, "method GetAllLocations not implemented")
}
func (UnimplementedEventServerServer) GetLocationEvents(*Location, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetLocationEvents not implemented")
}
func (UnimplementedEventServerServer) GetLocationClassEvents(*LocationClass, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetLocationClassEvents not implemented")
}
func (UnimplementedEventServerServer) GetSummaryEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetSummaryEvents not implemented")
}
func (UnimplementedEventServerServer) GetAllEvents(*emptypb.Empty, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method GetAllEvents not implemented")
}
func (UnimplementedEventServerServer) ConfigSensor(context.Context, *SensorConfig) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfigSensor not implemented")
}
func (UnimplementedEventServerServer) DeleteSensor(context.Context, *SensorId) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSensor not implemented")
}
func (UnimplementedEventServerServer) DeleteClimeMet(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteClimeMet not implemented")
}
func (UnimplementedEventServerServer) DeleteUnseenSensors(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteUnseenSensors not implemented")
}
func (UnimplementedEventServerServer) GetSensorInfo(*emptypb.Empty, grpc.ServerStreamingServer[SensorInfo]) error {
	return status.Errorf(codes.Unimplemented, "method GetSensorInfo not implemented")
}
func (UnimplementedEventServerServer) mustEmbedUnimplementedEventServerServer() {}

// RegisterEventServerServer registers srv on s. The server must be created
// with ServerOptions so requests decode with Codec.
func RegisterEventServerServer(s grpc.ServiceRegistrar, srv EventServerServer) {
	s.RegisterService(&EventServer_ServiceDesc, srv)
}

// unaryHandler adapts call to the grpc.MethodDesc handler signature.
func unaryHandler[Req any](method string, call func(EventServerServer, context.Context, *Req) (*emptypb.Empty, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EventServerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EventServerServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func streamHandler[Req, Res any](call func(EventServerServer, *Req, grpc.ServerStreamingServer[Res]) error) grpc.StreamHandler {
	return func(srv any, stream grpc.ServerStream) error {
		m := new(Req)
		if err := stream.RecvMsg(m); err != nil {
			return err
		}
		return call(srv.(EventServerServer), m, &grpc.GenericServerStream[Req, Res]{ServerStream: stream})
	}
}

// EventServer_ServiceDesc is the grpc.ServiceDesc for the EventServer service.
var EventServer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dsws.EventServer",
	HandlerType: (*EventServerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ClearUnknownEvents",
			Handler:    unaryHandler(EventServer_ClearUnknownEvents_FullMethodName, EventServerServer.ClearUnknownEvents),
		},
		{
			MethodName: "ConfigSensor",
			Handler:    unaryHandler(EventServer_ConfigSensor_FullMethodName, EventServerServer.ConfigSensor),
		},
		{
			MethodName: "DeleteSensor",
			Handler:    unaryHandler(EventServer_DeleteSensor_FullMethodName, EventServerServer.DeleteSensor),
		},
		{
			MethodName: "DeleteClimeMet",
			Handler:    unaryHandler(EventServer_DeleteClimeMet_FullMethodName, EventServerServer.DeleteClimeMet),
		},
		{
			MethodName: "DeleteUnseenSensors",
			Handler:    unaryHandler(EventServer_DeleteUnseenSensors_FullMethodName, EventServerServer.DeleteUnseenSensors),
		},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "GetLatestEvents", Handler: streamHandler(EventServerServer.GetLatestEvents), ServerStreams: true},
		{StreamName: "GetMinimumEvents", Handler: streamHandler(EventServerServer.GetMinimumEvents), ServerStreams: true},
		{StreamName: "GetMaximumEvents", Handler: streamHandler(EventServerServer.GetMaximumEvents), ServerStreams: true},
		{StreamName: "GetUnknownEvents", Handler: streamHandler(EventServerServer.GetUnknownEvents), ServerStreams: true},
		{StreamName: "GetLocations", Handler: streamHandler(EventServerServer.GetLocations), ServerStreams: true},
		{StreamName: "GetAllLocations", Handler: streamHandler(EventServerServer.GetAllLocations), ServerStreams: true},
		{StreamName: "GetLocationEvents", Handler: streamHandler(EventServerServer.GetLocationEvents), ServerStreams: true},
		{StreamName: "GetLocationClassEvents", Handler: streamHandler(EventServerServer.GetLocationClassEvents), ServerStreams: true},
		{StreamName: "GetSummaryEvents", Handler: streamHandler(EventServerServer.GetSummaryEvents), ServerStreams: true},
		{StreamName: "GetAllEvents", Handler: streamHandler(EventServerServer.GetAllEvents), ServerStreams: true},
		{StreamName: "GetSensorInfo", Handler: streamHandler(EventServerServer.GetSensorInfo), ServerStreams: true},
	},
	Metadata: "dsws.proto",
}
