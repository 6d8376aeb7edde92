// Package rpc defines the alchemy gRPC service. Messages are
// google.protobuf.Struct values shaped by the converter package.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "alchemy.v1.Alchemy"

// Full method names
const (
	DiscountFullMethod     = "/" + ServiceName + "/Discount"
	EffectFullMethod       = "/" + ServiceName + "/Effect"
	EffectChangeFullMethod = "/" + ServiceName + "/EffectChange"
	ListVialsFullMethod    = "/" + ServiceName + "/ListVials"
)

// AlchemyServer is the server API for the alchemy service
type AlchemyServer interface {
	Discount(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Effect(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EffectChange(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListVials(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterAlchemyServer registers srv on s
func RegisterAlchemyServer(s grpc.ServiceRegistrar, srv AlchemyServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryMethod func(AlchemyServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AlchemyServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AlchemyServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc of the alchemy service
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlchemyServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Discount",
			Handler:    unaryHandler(DiscountFullMethod, AlchemyServer.Discount),
		},
		{
			MethodName: "Effect",
			Handler:    unaryHandler(EffectFullMethod, AlchemyServer.Effect),
		},
		{
			MethodName: "EffectChange",
			Handler:    unaryHandler(EffectChangeFullMethod, AlchemyServer.EffectChange),
		},
		{
			MethodName: "ListVials",
			Handler:    unaryHandler(ListVialsFullMethod, AlchemyServer.ListVials),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "alchemy/v1/alchemy.proto",
}
