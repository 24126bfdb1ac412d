// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: creation/v1/creation.proto

package creationv1

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
	CreationService_CreateAppointment_FullMethodName = "/creation.v1.CreationService/CreateAppointment"
)

// CreationServiceClient is the client API for CreationService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CreationServiceClient interface {
	CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*CreateAppointmentResponse, error)
}

type creationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCreationServiceClient(cc grpc.ClientConnInterface) CreationServiceClient {
	return &creationServiceClient{cc}
}

func (c *creationServiceClient) CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*CreateAppointmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateAppointmentResponse)
	err := c.cc.Invoke(ctx, CreationService_CreateAppointment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreationServiceServer is the server API for CreationService service.
// All implementations must embed UnimplementedCreationServiceServer
// for forward compatibility.
type CreationServiceServer interface {
	CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error)
	mustEmbedUnimplementedCreationServiceServer()
}

// UnimplementedCreationServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCreationServiceServer struct{}

func (UnimplementedCreationServiceServer) CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAppointment not implemented")
}
func (UnimplementedCreationServiceServer) mustEmbedUnimplementedCreationServiceServer() {}
func (UnimplementedCreationServiceServer) testEmbeddedByValue()                         {}

// UnsafeCreationServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CreationServiceServer will
// result in compilation errors.
type UnsafeCreationServiceServer interface {
	mustEmbedUnimplementedCreationServiceServer()
}

func RegisterCreationServiceServer(s grpc.ServiceRegistrar, srv CreationServiceServer) {
	// If the following call pancis, it indicates UnimplementedCreationServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CreationService_ServiceDesc, srv)
}

func _CreationService_CreateAppointment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAppointmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreationServiceServer).CreateAppointment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CreationService_CreateAppointment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreationServiceServer).CreateAppointment(ctx, req.(*CreateAppointmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CreationService_ServiceDesc is the grpc.ServiceDesc for CreationService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CreationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "creation.v1.CreationService",
	HandlerType: (*CreationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateAppointment",
			Handler:    _CreationService_CreateAppointment_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "creation/v1/creation.proto",
}
