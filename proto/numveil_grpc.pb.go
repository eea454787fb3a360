// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: numveil.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MaskService_Mask_FullMethodName       = "/numveil.v1.MaskService/Mask"
	MaskService_MaskStream_FullMethodName = "/numveil.v1.MaskService/MaskStream"
)

// MaskServiceClient is the client API for MaskService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MaskService is the high-frequency masking surface used by the canvas
// draw interceptor. The DOM walker uses the HTTP API instead; both go
// through the same engine and settings resolution server-side.
type MaskServiceClient interface {
	// Mask masks a single text once.
	Mask(ctx context.Context, in *MaskRequest, opts ...grpc.CallOption) (*MaskResponse, error)
	// MaskStream masks a stream of texts over one connection. Responses
	// carry the request's sequence number so the client can correlate
	// out-of-order handling on its side.
	MaskStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[MaskRequest, MaskResponse], error)
}

type maskServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMaskServiceClient(cc grpc.ClientConnInterface) MaskServiceClient {
	return &maskServiceClient{cc}
}

func (c *maskServiceClient) Mask(ctx context.Context, in *MaskRequest, opts ...grpc.CallOption) (*MaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MaskResponse)
	err := c.cc.Invoke(ctx, MaskService_Mask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *maskServiceClient) MaskStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[MaskRequest, MaskResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &MaskService_ServiceDesc.Streams[0], MaskService_MaskStream_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[MaskRequest, MaskResponse]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type MaskService_MaskStreamClient = grpc.BidiStreamingClient[MaskRequest, MaskResponse]

// MaskServiceServer is the server API for MaskService service.
// All implementations must embed UnimplementedMaskServiceServer
// for forward compatibility.
//
// MaskService is the high-frequency masking surface used by the canvas
// draw interceptor. The DOM walker uses the HTTP API instead; both go
// through the same engine and settings resolution server-side.
type MaskServiceServer interface {
	// Mask masks a single text once.
	Mask(context.Context, *MaskRequest) (*MaskResponse, error)
	// MaskStream masks a stream of texts over one connection. Responses
	// carry the request's sequence number so the client can correlate
	// out-of-order handling on its side.
	MaskStream(grpc.BidiStreamingServer[MaskRequest, MaskResponse]) error
	mustEmbedUnimplementedMaskServiceServer()
}

// UnimplementedMaskServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMaskServiceServer struct{}

func (UnimplementedMaskServiceServer) Mask(context.Context, *MaskRequest) (*MaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Mask not implemented")
}
func (UnimplementedMaskServiceServer) MaskStream(grpc.BidiStreamingServer[MaskRequest, MaskResponse]) error {
	return status.Error(codes.Unimplemented, "method MaskStream not implemented")
}
func (UnimplementedMaskServiceServer) mustEmbedUnimplementedMaskServiceServer() {}
func (UnimplementedMaskServiceServer) testEmbeddedByValue()                     {}

// UnsafeMaskServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MaskServiceServer will
// result in compilation errors.
type UnsafeMaskServiceServer interface {
	mustEmbedUnimplementedMaskServiceServer()
}

func RegisterMaskServiceServer(s grpc.ServiceRegistrar, srv MaskServiceServer) {
	// If the following call panics, it indicates UnimplementedMaskServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MaskService_ServiceDesc, srv)
}

func _MaskService_Mask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MaskServiceServer).Mask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MaskService_Mask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MaskServiceServer).Mask(ctx, req.(*MaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MaskService_MaskStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(MaskServiceServer).MaskStream(&grpc.GenericServerStream[MaskRequest, MaskResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type MaskService_MaskStreamServer = grpc.BidiStreamingServer[MaskRequest, MaskResponse]

// MaskService_ServiceDesc is the grpc.ServiceDesc for MaskService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MaskService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "numveil.v1.MaskService",
	HandlerType: (*MaskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Mask",
			Handler:    _MaskService_Mask_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "MaskStream",
			Handler:       _MaskService_MaskStream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "numveil.proto",
}
