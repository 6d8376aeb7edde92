package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/converter"
	"github.com/napolitain/alchemy/internal/models"
)

// Client calls the alchemy service and converts its messages to model types
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Discount returns the bubble discount breakdown for levels
func (c *Client) Discount(ctx context.Context, levels alchemy.DiscountLevels, opts ...grpc.CallOption) (alchemy.Discount, error) {
	out, err := c.invoke(ctx, DiscountFullMethod, converter.LevelsToDiscountRequest(levels), opts...)
	if err != nil {
		return alchemy.Discount{}, err
	}
	return converter.StructToDiscount(out)
}

// Effect returns a bubble's effect at level
func (c *Client) Effect(ctx context.Context, b models.Bubble, level float64, opts ...grpc.CallOption) (float64, error) {
	req := converter.EffectRequest{Bubble: b, Level: level}
	out, err := c.invoke(ctx, EffectFullMethod, converter.EffectRequestToStruct(req), opts...)
	if err != nil {
		return 0, err
	}
	return converter.StructToEffect(out)
}

// EffectChange returns a bubble's effect at now and goal and its display line
func (c *Client) EffectChange(ctx context.Context, b models.Bubble, now, goal float64, opts ...grpc.CallOption) (converter.EffectChangeResult, error) {
	req := converter.EffectChangeRequest{Bubble: b, Now: now, Goal: goal}
	out, err := c.invoke(ctx, EffectChangeFullMethod, converter.EffectChangeRequestToStruct(req), opts...)
	if err != nil {
		return converter.EffectChangeResult{}, err
	}
	return converter.StructToEffectChange(out)
}

// ListVials returns the vials obtainable with roll. A negative roll lists all.
func (c *Client) ListVials(ctx context.Context, roll int, opts ...grpc.CallOption) ([]models.Vial, error) {
	out, err := c.invoke(ctx, ListVialsFullMethod, converter.ListVialsRequestToStruct(roll), opts...)
	if err != nil {
		return nil, err
	}
	return converter.StructToVials(out)
}
