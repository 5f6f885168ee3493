// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: triage.proto

package apiv1

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
	FeedbackTriage_ProcessFeedback_FullMethodName      = "/triage.v1.FeedbackTriage/ProcessFeedback"
	FeedbackTriage_GetTickets_FullMethodName           = "/triage.v1.FeedbackTriage/GetTickets"
	FeedbackTriage_GetPriorityBreakdown_FullMethodName = "/triage.v1.FeedbackTriage/GetPriorityBreakdown"
	FeedbackTriage_ReviewTickets_FullMethodName        = "/triage.v1.FeedbackTriage/ReviewTickets"
	FeedbackTriage_Chat_FullMethodName                 = "/triage.v1.FeedbackTriage/Chat"
)

// FeedbackTriageClient is the client API for FeedbackTriage service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FeedbackTriage converts batches of raw user feedback into triaged
// tickets and re-validates them for quality.
type FeedbackTriageClient interface {
	// ProcessFeedback ingests the review/email CSVs, runs the pipeline,
	// archives the tickets, and optionally exports them for handoff.
	ProcessFeedback(ctx context.Context, in *ProcessFeedbackRequest, opts ...grpc.CallOption) (*ProcessFeedbackResponse, error)
	// GetTickets lists archived tickets with optional filters.
	GetTickets(ctx context.Context, in *GetTicketsRequest, opts ...grpc.CallOption) (*GetTicketsResponse, error)
	// GetPriorityBreakdown counts archived tickets per priority.
	GetPriorityBreakdown(ctx context.Context, in *GetPriorityBreakdownRequest, opts ...grpc.CallOption) (*GetPriorityBreakdownResponse, error)
	// ReviewTickets runs the quality critic over the archive.
	ReviewTickets(ctx context.Context, in *ReviewTicketsRequest, opts ...grpc.CallOption) (*ReviewTicketsResponse, error)
	// Chat is a thin LLM completion passthrough.
	Chat(ctx context.Context, in *ChatRequest, opts ...grpc.CallOption) (*ChatResponse, error)
}

type feedbackTriageClient struct {
	cc grpc.ClientConnInterface
}

func NewFeedbackTriageClient(cc grpc.ClientConnInterface) FeedbackTriageClient {
	return &feedbackTriageClient{cc}
}

func (c *feedbackTriageClient) ProcessFeedback(ctx context.Context, in *ProcessFeedbackRequest, opts ...grpc.CallOption) (*ProcessFeedbackResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessFeedbackResponse)
	err := c.cc.Invoke(ctx, FeedbackTriage_ProcessFeedback_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedbackTriageClient) GetTickets(ctx context.Context, in *GetTicketsRequest, opts ...grpc.CallOption) (*GetTicketsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTicketsResponse)
	err := c.cc.Invoke(ctx, FeedbackTriage_GetTickets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedbackTriageClient) GetPriorityBreakdown(ctx context.Context, in *GetPriorityBreakdownRequest, opts ...grpc.CallOption) (*GetPriorityBreakdownResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPriorityBreakdownResponse)
	err := c.cc.Invoke(ctx, FeedbackTriage_GetPriorityBreakdown_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedbackTriageClient) ReviewTickets(ctx context.Context, in *ReviewTicketsRequest, opts ...grpc.CallOption) (*ReviewTicketsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewTicketsResponse)
	err := c.cc.Invoke(ctx, FeedbackTriage_ReviewTickets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedbackTriageClient) Chat(ctx context.Context, in *ChatRequest, opts ...grpc.CallOption) (*ChatResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ChatResponse)
	err := c.cc.Invoke(ctx, FeedbackTriage_Chat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FeedbackTriageServer is the server API for FeedbackTriage service.
// All implementations must embed UnimplementedFeedbackTriageServer
// for forward compatibility.
//
// FeedbackTriage converts batches of raw user feedback into triaged
// tickets and re-validates them for quality.
type FeedbackTriageServer interface {
	// ProcessFeedback ingests the review/email CSVs, runs the pipeline,
	// archives the tickets, and optionally exports them for handoff.
	ProcessFeedback(context.Context, *ProcessFeedbackRequest) (*ProcessFeedbackResponse, error)
	// GetTickets lists archived tickets with optional filters.
	GetTickets(context.Context, *GetTicketsRequest) (*GetTicketsResponse, error)
	// GetPriorityBreakdown counts archived tickets per priority.
	GetPriorityBreakdown(context.Context, *GetPriorityBreakdownRequest) (*GetPriorityBreakdownResponse, error)
	// ReviewTickets runs the quality critic over the archive.
	ReviewTickets(context.Context, *ReviewTicketsRequest) (*ReviewTicketsResponse, error)
	// Chat is a thin LLM completion passthrough.
	Chat(context.Context, *ChatRequest) (*ChatResponse, error)
	mustEmbedUnimplementedFeedbackTriageServer()
}

// UnimplementedFeedbackTriageServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFeedbackTriageServer struct{}

func (UnimplementedFeedbackTriageServer) ProcessFeedback(context.Context, *ProcessFeedbackRequest) (*ProcessFeedbackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessFeedback not implemented")
}
func (UnimplementedFeedbackTriageServer) GetTickets(context.Context, *GetTicketsRequest) (*GetTicketsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTickets not implemented")
}
func (UnimplementedFeedbackTriageServer) GetPriorityBreakdown(context.Context, *GetPriorityBreakdownRequest) (*GetPriorityBreakdownResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPriorityBreakdown not implemented")
}
func (UnimplementedFeedbackTriageServer) ReviewTickets(context.Context, *ReviewTicketsRequest) (*ReviewTicketsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewTickets not implemented")
}
func (UnimplementedFeedbackTriageServer) Chat(context.Context, *ChatRequest) (*ChatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Chat not implemented")
}
func (UnimplementedFeedbackTriageServer) mustEmbedUnimplementedFeedbackTriageServer() {}
func (UnimplementedFeedbackTriageServer) testEmbeddedByValue()                        {}

// UnsafeFeedbackTriageServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FeedbackTriageServer will
// result in compilation errors.
type UnsafeFeedbackTriageServer interface {
	mustEmbedUnimplementedFeedbackTriageServer()
}

func RegisterFeedbackTriageServer(s grpc.ServiceRegistrar, srv FeedbackTriageServer) {
	// If the following call pancis, it indicates UnimplementedFeedbackTriageServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FeedbackTriage_ServiceDesc, srv)
}

func _FeedbackTriage_ProcessFeedback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessFeedbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackTriageServer).ProcessFeedback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedbackTriage_ProcessFeedback_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackTriageServer).ProcessFeedback(ctx, req.(*ProcessFeedbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedbackTriage_GetTickets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTicketsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackTriageServer).GetTickets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedbackTriage_GetTickets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackTriageServer).GetTickets(ctx, req.(*GetTicketsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedbackTriage_GetPriorityBreakdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPriorityBreakdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackTriageServer).GetPriorityBreakdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedbackTriage_GetPriorityBreakdown_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackTriageServer).GetPriorityBreakdown(ctx, req.(*GetPriorityBreakdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedbackTriage_ReviewTickets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewTicketsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackTriageServer).ReviewTickets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedbackTriage_ReviewTickets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackTriageServer).ReviewTickets(ctx, req.(*ReviewTicketsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedbackTriage_Chat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackTriageServer).Chat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedbackTriage_Chat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackTriageServer).Chat(ctx, req.(*ChatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FeedbackTriage_ServiceDesc is the grpc.ServiceDesc for FeedbackTriage service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FeedbackTriage_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "triage.v1.FeedbackTriage",
	HandlerType: (*FeedbackTriageServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessFeedback",
			Handler:    _FeedbackTriage_ProcessFeedback_Handler,
		},
		{
			MethodName: "GetTickets",
			Handler:    _FeedbackTriage_GetTickets_Handler,
		},
		{
			MethodName: "GetPriorityBreakdown",
			Handler:    _FeedbackTriage_GetPriorityBreakdown_Handler,
		},
		{
			MethodName: "ReviewTickets",
			Handler:    _FeedbackTriage_ReviewTickets_Handler,
		},
		{
			MethodName: "Chat",
			Handler:    _FeedbackTriage_Chat_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "triage.proto",
}
