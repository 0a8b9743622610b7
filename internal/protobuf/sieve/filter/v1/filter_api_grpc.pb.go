// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: sieve/filter/v1/filter_api.proto

package filterv1

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
	FilterAPI_CheckFilter_FullMethodName    = "/sieve.filter.v1.FilterAPI/CheckFilter"
	FilterAPI_SaveFilter_FullMethodName     = "/sieve.filter.v1.FilterAPI/SaveFilter"
	FilterAPI_ListFilters_FullMethodName    = "/sieve.filter.v1.FilterAPI/ListFilters"
	FilterAPI_DeleteFilter_FullMethodName   = "/sieve.filter.v1.FilterAPI/DeleteFilter"
	FilterAPI_EvaluateFilter_FullMethodName = "/sieve.filter.v1.FilterAPI/EvaluateFilter"
	FilterAPI_MatchTraffic_FullMethodName   = "/sieve.filter.v1.FilterAPI/MatchTraffic"
)

// FilterAPIClient is the client API for FilterAPI service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FilterAPI manages stored traffic filters and evaluates them against
// field values supplied by the caller.
type FilterAPIClient interface {
	// CheckFilter validates an expression against the server's schema
	// without storing anything.
	CheckFilter(ctx context.Context, in *CheckFilterRequest, opts ...grpc.CallOption) (*CheckFilterResponse, error)
	// SaveFilter validates, compiles and persists a filter. Requires the
	// admin scope.
	SaveFilter(ctx context.Context, in *SaveFilterRequest, opts ...grpc.CallOption) (*SaveFilterResponse, error)
	// ListFilters returns the tenant's stored filters.
	ListFilters(ctx context.Context, in *ListFiltersRequest, opts ...grpc.CallOption) (*ListFiltersResponse, error)
	// DeleteFilter removes a stored filter. Requires the admin scope.
	DeleteFilter(ctx context.Context, in *DeleteFilterRequest, opts ...grpc.CallOption) (*DeleteFilterResponse, error)
	// EvaluateFilter runs one stored filter against a JSON object of
	// field values.
	EvaluateFilter(ctx context.Context, in *EvaluateFilterRequest, opts ...grpc.CallOption) (*EvaluateFilterResponse, error)
	// MatchTraffic runs every enabled filter against a JSON object of
	// field values and reports the matches and the resulting verdict.
	MatchTraffic(ctx context.Context, in *MatchTrafficRequest, opts ...grpc.CallOption) (*MatchTrafficResponse, error)
}

type filterAPIClient struct {
	cc grpc.ClientConnInterface
}

func NewFilterAPIClient(cc grpc.ClientConnInterface) FilterAPIClient {
	return &filterAPIClient{cc}
}

func (c *filterAPIClient) CheckFilter(ctx context.Context, in *CheckFilterRequest, opts ...grpc.CallOption) (*CheckFilterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckFilterResponse)
	err := c.cc.Invoke(ctx, FilterAPI_CheckFilter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *filterAPIClient) SaveFilter(ctx context.Context, in *SaveFilterRequest, opts ...grpc.CallOption) (*SaveFilterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveFilterResponse)
	err := c.cc.Invoke(ctx, FilterAPI_SaveFilter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *filterAPIClient) ListFilters(ctx context.Context, in *ListFiltersRequest, opts ...grpc.CallOption) (*ListFiltersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFiltersResponse)
	err := c.cc.Invoke(ctx, FilterAPI_ListFilters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *filterAPIClient) DeleteFilter(ctx context.Context, in *DeleteFilterRequest, opts ...grpc.CallOption) (*DeleteFilterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteFilterResponse)
	err := c.cc.Invoke(ctx, FilterAPI_DeleteFilter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *filterAPIClient) EvaluateFilter(ctx context.Context, in *EvaluateFilterRequest, opts ...grpc.CallOption) (*EvaluateFilterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvaluateFilterResponse)
	err := c.cc.Invoke(ctx, FilterAPI_EvaluateFilter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *filterAPIClient) MatchTraffic(ctx context.Context, in *MatchTrafficRequest, opts ...grpc.CallOption) (*MatchTrafficResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MatchTrafficResponse)
	err := c.cc.Invoke(ctx, FilterAPI_MatchTraffic_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FilterAPIServer is the server API for FilterAPI service.
// All implementations must embed UnimplementedFilterAPIServer
// for forward compatibility.
//
// FilterAPI manages stored traffic filters and evaluates them against
// field values supplied by the caller.
type FilterAPIServer interface {
	// CheckFilter validates an expression against the server's schema
	// without storing anything.
	CheckFilter(context.Context, *CheckFilterRequest) (*CheckFilterResponse, error)
	// SaveFilter validates, compiles and persists a filter. Requires the
	// admin scope.
	SaveFilter(context.Context, *SaveFilterRequest) (*SaveFilterResponse, error)
	// ListFilters returns the tenant's stored filters.
	ListFilters(context.Context, *ListFiltersRequest) (*ListFiltersResponse, error)
	// DeleteFilter removes a stored filter. Requires the admin scope.
	DeleteFilter(context.Context, *DeleteFilterRequest) (*DeleteFilterResponse, error)
	// EvaluateFilter runs one stored filter against a JSON object of
	// field values.
	EvaluateFilter(context.Context, *EvaluateFilterRequest) (*EvaluateFilterResponse, error)
	// MatchTraffic runs every enabled filter against a JSON object of
	// field values and reports the matches and the resulting verdict.
	MatchTraffic(context.Context, *MatchTrafficRequest) (*MatchTrafficResponse, error)
	mustEmbedUnimplementedFilterAPIServer()
}

// UnimplementedFilterAPIServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFilterAPIServer struct{}

func (UnimplementedFilterAPIServer) CheckFilter(context.Context, *CheckFilterRequest) (*CheckFilterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckFilter not implemented")
}
func (UnimplementedFilterAPIServer) SaveFilter(context.Context, *SaveFilterRequest) (*SaveFilterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveFilter not implemented")
}
func (UnimplementedFilterAPIServer) ListFilters(context.Context, *ListFiltersRequest) (*ListFiltersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFilters not implemented")
}
func (UnimplementedFilterAPIServer) DeleteFilter(context.Context, *DeleteFilterRequest) (*DeleteFilterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteFilter not implemented")
}
func (UnimplementedFilterAPIServer) EvaluateFilter(context.Context, *EvaluateFilterRequest) (*EvaluateFilterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateFilter not implemented")
}
func (UnimplementedFilterAPIServer) MatchTraffic(context.Context, *MatchTrafficRequest) (*MatchTrafficResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MatchTraffic not implemented")
}
func (UnimplementedFilterAPIServer) mustEmbedUnimplementedFilterAPIServer() {}
func (UnimplementedFilterAPIServer) testEmbeddedByValue()                   {}

// UnsafeFilterAPIServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FilterAPIServer will
// result in compilation errors.
type UnsafeFilterAPIServer interface {
	mustEmbedUnimplementedFilterAPIServer()
}

func RegisterFilterAPIServer(s grpc.ServiceRegistrar, srv FilterAPIServer) {
	// If the following call pancis, it indicates UnimplementedFilterAPIServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FilterAPI_ServiceDesc, srv)
}

func _FilterAPI_CheckFilter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckFilterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FilterAPIServer).CheckFilter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FilterAPI_CheckFilter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FilterAPIServer).CheckFilter(ctx, req.(*CheckFilterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FilterAPI_SaveFilter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveFilterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FilterAPIServer).SaveFilter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FilterAPI_SaveFilter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FilterAPIServer).SaveFilter(ctx, req.(*SaveFilterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FilterAPI_ListFilters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFiltersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FilterAPIServer).ListFilters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FilterAPI_ListFilters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FilterAPIServer).ListFilters(ctx, req.(*ListFiltersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FilterAPI_DeleteFilter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFilterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FilterAPIServer).DeleteFilter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FilterAPI_DeleteFilter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FilterAPIServer).DeleteFilter(ctx, req.(*DeleteFilterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FilterAPI_EvaluateFilter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateFilterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FilterAPIServer).EvaluateFilter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FilterAPI_EvaluateFilter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FilterAPIServer).EvaluateFilter(ctx, req.(*EvaluateFilterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FilterAPI_MatchTraffic_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MatchTrafficRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FilterAPIServer).MatchTraffic(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FilterAPI_MatchTraffic_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FilterAPIServer).MatchTraffic(ctx, req.(*MatchTrafficRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FilterAPI_ServiceDesc is the grpc.ServiceDesc for FilterAPI service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FilterAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sieve.filter.v1.FilterAPI",
	HandlerType: (*FilterAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckFilter",
			Handler:    _FilterAPI_CheckFilter_Handler,
		},
		{
			MethodName: "SaveFilter",
			Handler:    _FilterAPI_SaveFilter_Handler,
		},
		{
			MethodName: "ListFilters",
			Handler:    _FilterAPI_ListFilters_Handler,
		},
		{
			MethodName: "DeleteFilter",
			Handler:    _FilterAPI_DeleteFilter_Handler,
		},
		{
			MethodName: "EvaluateFilter",
			Handler:    _FilterAPI_EvaluateFilter_Handler,
		},
		{
			MethodName: "MatchTraffic",
			Handler:    _FilterAPI_MatchTraffic_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sieve/filter/v1/filter_api.proto",
}
