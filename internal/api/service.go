package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "carregistry.RentalService"

const (
	RentalService_Ping_FullMethodName           = "/carregistry.RentalService/Ping"
	RentalService_RegisterOwner_FullMethodName  = "/carregistry.RentalService/RegisterOwner"
	RentalService_RegisterRenter_FullMethodName = "/carregistry.RentalService/RegisterRenter"
	RentalService_RentCar_FullMethodName        = "/carregistry.RentalService/RentCar"
	RentalService_GetOwner_FullMethodName       = "/carregistry.RentalService/GetOwner"
	RentalService_GetOwners_FullMethodName      = "/carregistry.RentalService/GetOwners"
	RentalService_GetRenter_FullMethodName      = "/carregistry.RentalService/GetRenter"
	RentalService_GetRenters_FullMethodName     = "/carregistry.RentalService/GetRenters"
	RentalService_GetTransfers_FullMethodName   = "/carregistry.RentalService/GetTransfers"
	RentalService_ExportSnapshot_FullMethodName = "/carregistry.RentalService/ExportSnapshot"
)

// RentalServiceServer is the server API for carregistry.RentalService.
type RentalServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	RegisterOwner(context.Context, *RegisterOwnerRequest) (*RegisterOwnerResponse, error)
	RegisterRenter(context.Context, *RegisterRenterRequest) (*RegisterRenterResponse, error)
	RentCar(context.Context, *RentCarRequest) (*RentCarResponse, error)
	GetOwner(context.Context, *GetOwnerRequest) (*GetOwnerResponse, error)
	GetOwners(context.Context, *GetOwnersRequest) (*GetOwnersResponse, error)
	GetRenter(context.Context, *GetRenterRequest) (*GetRenterResponse, error)
	GetRenters(context.Context, *GetRentersRequest) (*GetRentersResponse, error)
	GetTransfers(context.Context, *GetTransfersRequest) (*GetTransfersResponse, error)
	ExportSnapshot(context.Context, *ExportSnapshotRequest) (*ExportSnapshotResponse, error)
}

// UnimplementedRentalServiceServer can be embedded to get forward-compatible
// implementations.
type UnimplementedRentalServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedRentalServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedRentalServiceServer) RegisterOwner(context.Context, *RegisterOwnerRequest) (*RegisterOwnerResponse, error) {
	return nil, unimplemented("RegisterOwner")
}
func (UnimplementedRentalServiceServer) RegisterRenter(context.Context, *RegisterRenterRequest) (*RegisterRenterResponse, error) {
	return nil, unimplemented("RegisterRenter")
}
func (UnimplementedRentalServiceServer) RentCar(context.Context, *RentCarRequest) (*RentCarResponse, error) {
	return nil, unimplemented("RentCar")
}
func (UnimplementedRentalServiceServer) GetOwner(context.Context, *GetOwnerRequest) (*GetOwnerResponse, error) {
	return nil, unimplemented("GetOwner")
}
func (UnimplementedRentalServiceServer) GetOwners(context.Context, *GetOwnersRequest) (*GetOwnersResponse, error) {
	return nil, unimplemented("GetOwners")
}
func (UnimplementedRentalServiceServer) GetRenter(context.Context, *GetRenterRequest) (*GetRenterResponse, error) {
	return nil, unimplemented("GetRenter")
}
func (UnimplementedRentalServiceServer) GetRenters(context.Context, *GetRentersRequest) (*GetRentersResponse, error) {
	return nil, unimplemented("GetRenters")
}
func (UnimplementedRentalServiceServer) GetTransfers(context.Context, *GetTransfersRequest) (*GetTransfersResponse, error) {
	return nil, unimplemented("GetTransfers")
}
func (UnimplementedRentalServiceServer) ExportSnapshot(context.Context, *ExportSnapshotRequest) (*ExportSnapshotResponse, error) {
	return nil, unimplemented("ExportSnapshot")
}

func RegisterRentalServiceServer(s grpc.ServiceRegistrar, srv RentalServiceServer) {
	s.RegisterService(&RentalService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(RentalServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RentalServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RentalServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var RentalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RentalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(RentalService_Ping_FullMethodName, RentalServiceServer.Ping)},
		{MethodName: "RegisterOwner", Handler: unaryHandler(RentalService_RegisterOwner_FullMethodName, RentalServiceServer.RegisterOwner)},
		{MethodName: "RegisterRenter", Handler: unaryHandler(RentalService_RegisterRenter_FullMethodName, RentalServiceServer.RegisterRenter)},
		{MethodName: "RentCar", Handler: unaryHandler(RentalService_RentCar_FullMethodName, RentalServiceServer.RentCar)},
		{MethodName: "GetOwner", Handler: unaryHandler(RentalService_GetOwner_FullMethodName, RentalServiceServer.GetOwner)},
		{MethodName: "GetOwners", Handler: unaryHandler(RentalService_GetOwners_FullMethodName, RentalServiceServer.GetOwners)},
		{MethodName: "GetRenter", Handler: unaryHandler(RentalService_GetRenter_FullMethodName, RentalServiceServer.GetRenter)},
		{MethodName: "GetRenters", Handler: unaryHandler(RentalService_GetRenters_FullMethodName, RentalServiceServer.GetRenters)},
		{MethodName: "GetTransfers", Handler: unaryHandler(RentalService_GetTransfers_FullMethodName, RentalServiceServer.GetTransfers)},
		{MethodName: "ExportSnapshot", Handler: unaryHandler(RentalService_ExportSnapshot_FullMethodName, RentalServiceServer.ExportSnapshot)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "carregistry/rental_service",
}

// RentalServiceClient is the client API for carregistry.RentalService.
type RentalServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	RegisterOwner(ctx context.Context, in *RegisterOwnerRequest, opts ...grpc.CallOption) (*RegisterOwnerResponse, error)
	RegisterRenter(ctx context.Context, in *RegisterRenterRequest, opts ...grpc.CallOption) (*RegisterRenterResponse, error)
	RentCar(ctx context.Context, in *RentCarRequest, opts ...grpc.CallOption) (*RentCarResponse, error)
	GetOwner(ctx context.Context, in *GetOwnerRequest, opts ...grpc.CallOption) (*GetOwnerResponse, error)
	GetOwners(ctx context.Context, in *GetOwnersRequest, opts ...grpc.CallOption) (*GetOwnersResponse, error)
	GetRenter(ctx context.Context, in *GetRenterRequest, opts ...grpc.CallOption) (*GetRenterResponse, error)
	GetRenters(ctx context.Context, in *GetRentersRequest, opts ...grpc.CallOption) (*GetRentersResponse, error)
	GetTransfers(ctx context.Context, in *GetTransfersRequest, opts ...grpc.CallOption) (*GetTransfersResponse, error)
	ExportSnapshot(ctx context.Context, in *ExportSnapshotRequest, opts ...grpc.CallOption) (*ExportSnapshotResponse, error)
}

type rentalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRentalServiceClient(cc grpc.ClientConnInterface) RentalServiceClient {
	return &rentalServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, RentalService_Ping_FullMethodName, in, opts)
}

func (c *rentalServiceClient) RegisterOwner(ctx context.Context, in *RegisterOwnerRequest, opts ...grpc.CallOption) (*RegisterOwnerResponse, error) {
	return invoke[RegisterOwnerResponse](ctx, c.cc, RentalService_RegisterOwner_FullMethodName, in, opts)
}

func (c *rentalServiceClient) RegisterRenter(ctx context.Context, in *RegisterRenterRequest, opts ...grpc.CallOption) (*RegisterRenterResponse, error) {
	return invoke[RegisterRenterResponse](ctx, c.cc, RentalService_RegisterRenter_FullMethodName, in, opts)
}

func (c *rentalServiceClient) RentCar(ctx context.Context, in *RentCarRequest, opts ...grpc.CallOption) (*RentCarResponse, error) {
	return invoke[RentCarResponse](ctx, c.cc, RentalService_RentCar_FullMethodName, in, opts)
}

func (c *rentalServiceClient) GetOwner(ctx context.Context, in *GetOwnerRequest, opts ...grpc.CallOption) (*GetOwnerResponse, error) {
	return invoke[GetOwnerResponse](ctx, c.cc, RentalService_GetOwner_FullMethodName, in, opts)
}

func (c *rentalServiceClient) GetOwners(ctx context.Context, in *GetOwnersRequest, opts ...grpc.CallOption) (*GetOwnersResponse, error) {
	return invoke[GetOwnersResponse](ctx, c.cc, RentalService_GetOwners_FullMethodName, in, opts)
}

func (c *rentalServiceClient) GetRenter(ctx context.Context, in *GetRenterRequest, opts ...grpc.CallOption) (*GetRenterResponse, error) {
	return invoke[GetRenterResponse](ctx, c.cc, RentalService_GetRenter_FullMethodName, in, opts)
}

func (c *rentalServiceClient) GetRenters(ctx context.Context, in *GetRentersRequest, opts ...grpc.CallOption) (*GetRentersResponse, error) {
	return invoke[GetRentersResponse](ctx, c.cc, RentalService_GetRenters_FullMethodName, in, opts)
}

func (c *rentalServiceClient) GetTransfers(ctx context.Context, in *GetTransfersRequest, opts ...grpc.CallOption) (*GetTransfersResponse, error) {
	return invoke[GetTransfersResponse](ctx, c.cc, RentalService_GetTransfers_FullMethodName, in, opts)
}

func (c *rentalServiceClient) ExportSnapshot(ctx context.Context, in *ExportSnapshotRequest, opts ...grpc.CallOption) (*ExportSnapshotResponse, error) {
	return invoke[ExportSnapshotResponse](ctx, c.cc, RentalService_ExportSnapshot_FullMethodName, in, opts)
}
