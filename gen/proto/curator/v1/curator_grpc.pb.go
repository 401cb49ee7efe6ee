// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: curator/v1/curator.proto

package curatorv1

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
	CuratorService_StartCuration_FullMethodName     = "/curator.v1.CuratorService/StartCuration"
	CuratorService_GetCurationStatus_FullMethodName = "/curator.v1.CuratorService/GetCurationStatus"
	CuratorService_SubmitFeedback_FullMethodName    = "/curator.v1.CuratorService/SubmitFeedback"
	CuratorService_ListCurationJobs_FullMethodName  = "/curator.v1.CuratorService/ListCurationJobs"
)

// CuratorServiceClient is the client API for CuratorService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CuratorService drives the human-in-the-loop dataset curation workflow:
// start a job over a raw image pool, poll it until boundary images are
// sampled for review, then submit accept/reject feedback to finalize the
// curated dataset.
type CuratorServiceClient interface {
	StartCuration(ctx context.Context, in *StartCurationRequest, opts ...grpc.CallOption) (*StartCurationResponse, error)
	GetCurationStatus(ctx context.Context, in *GetCurationStatusRequest, opts ...grpc.CallOption) (*CurationStatusResponse, error)
	SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) (*SubmitFeedbackResponse, error)
	ListCurationJobs(ctx context.Context, in *ListCurationJobsRequest, opts ...grpc.CallOption) (*ListCurationJobsResponse, error)
}

type curatorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCuratorServiceClient(cc grpc.ClientConnInterface) CuratorServiceClient {
	return &curatorServiceClient{cc}
}

func (c *curatorServiceClient) StartCuration(ctx context.Context, in *StartCurationRequest, opts ...grpc.CallOption) (*StartCurationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartCurationResponse)
	err := c.cc.Invoke(ctx, CuratorService_StartCuration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curatorServiceClient) GetCurationStatus(ctx context.Context, in *GetCurationStatusRequest, opts ...grpc.CallOption) (*CurationStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CurationStatusResponse)
	err := c.cc.Invoke(ctx, CuratorService_GetCurationStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curatorServiceClient) SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) (*SubmitFeedbackResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitFeedbackResponse)
	err := c.cc.Invoke(ctx, CuratorService_SubmitFeedback_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *curatorServiceClient) ListCurationJobs(ctx context.Context, in *ListCurationJobsRequest, opts ...grpc.CallOption) (*ListCurationJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCurationJobsResponse)
	err := c.cc.Invoke(ctx, CuratorService_ListCurationJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CuratorServiceServer is the server API for CuratorService service.
// All implementations must embed UnimplementedCuratorServiceServer
// for forward compatibility.
//
// CuratorService drives the human-in-the-loop dataset curation workflow:
// start a job over a raw image pool, poll it until boundary images are
// sampled for review, then submit accept/reject feedback to finalize the
// curated dataset.
type CuratorServiceServer interface {
	StartCuration(context.Context, *StartCurationRequest) (*StartCurationResponse, error)
	GetCurationStatus(context.Context, *GetCurationStatusRequest) (*CurationStatusResponse, error)
	SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*SubmitFeedbackResponse, error)
	ListCurationJobs(context.Context, *ListCurationJobsRequest) (*ListCurationJobsResponse, error)
	mustEmbedUnimplementedCuratorServiceServer()
}

// UnimplementedCuratorServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCuratorServiceServer struct{}

func (UnimplementedCuratorServiceServer) StartCuration(context.Context, *StartCurationRequest) (*StartCurationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartCuration not implemented")
}
func (UnimplementedCuratorServiceServer) GetCurationStatus(context.Context, *GetCurationStatusRequest) (*CurationStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCurationStatus not implemented")
}
func (UnimplementedCuratorServiceServer) SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*SubmitFeedbackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitFeedback not implemented")
}
func (UnimplementedCuratorServiceServer) ListCurationJobs(context.Context, *ListCurationJobsRequest) (*ListCurationJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCurationJobs not implemented")
}
func (UnimplementedCuratorServiceServer) mustEmbedUnimplementedCuratorServiceServer() {}
func (UnimplementedCuratorServiceServer) testEmbeddedByValue()                        {}

// UnsafeCuratorServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CuratorServiceServer will
// result in compilation errors.
type UnsafeCuratorServiceServer interface {
	mustEmbedUnimplementedCuratorServiceServer()
}

func RegisterCuratorServiceServer(s grpc.ServiceRegistrar, srv CuratorServiceServer) {
	// If the following call pancis, it indicates UnimplementedCuratorServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CuratorService_ServiceDesc, srv)
}

func _CuratorService_StartCuration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartCurationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CuratorServiceServer).StartCuration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CuratorService_StartCuration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CuratorServiceServer).StartCuration(ctx, req.(*StartCurationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CuratorService_GetCurationStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurationStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CuratorServiceServer).GetCurationStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CuratorService_GetCurationStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CuratorServiceServer).GetCurationStatus(ctx, req.(*GetCurationStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CuratorService_SubmitFeedback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitFeedbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CuratorServiceServer).SubmitFeedback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CuratorService_SubmitFeedback_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CuratorServiceServer).SubmitFeedback(ctx, req.(*SubmitFeedbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CuratorService_ListCurationJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCurationJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CuratorServiceServer).ListCurationJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CuratorService_ListCurationJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CuratorServiceServer).ListCurationJobs(ctx, req.(*ListCurationJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CuratorService_ServiceDesc is the grpc.ServiceDesc for CuratorService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CuratorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "curator.v1.CuratorService",
	HandlerType: (*CuratorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartCuration",
			Handler:    _CuratorService_StartCuration_Handler,
		},
		{
			MethodName: "GetCurationStatus",
			Handler:    _CuratorService_GetCurationStatus_Handler,
		},
		{
			MethodName: "SubmitFeedback",
			Handler:    _CuratorService_SubmitFeedback_Handler,
		},
		{
			MethodName: "ListCurationJobs",
			Handler:    _CuratorService_ListCurationJobs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "curator/v1/curator.proto",
}
