package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/converter"
	"github.com/napolitain/alchemy/internal/logger"
	"github.com/napolitain/alchemy/internal/metrics"
	"github.com/napolitain/alchemy/internal/models"
)

// Server implements AlchemyServer on top of a calculator
type Server struct {
	calc *alchemy.Calculator
}

// NewServer creates a server. A nil calculator uses the default curves.
func NewServer(calc *alchemy.Calculator) *Server {
	if calc == nil {
		calc = alchemy.NewCalculator(nil, nil)
	}
	return &Server{calc: calc}
}

// Discount implements the Discount RPC
func (s *Server) Discount(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	levels, err := converter.DiscountRequestToLevels(req)
	if err != nil {
		return nil, requestError(err)
	}

	d := s.calc.Discount(levels)
	metrics.DiscountTotal.Observe(d.Total)
	logger.FromContext(ctx).Debug("discount computed", "total", d.Total)

	return converter.DiscountToStruct(d), nil
}

// Effect implements the Effect RPC
func (s *Server) Effect(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r, err := converter.StructToEffectRequest(req)
	if err != nil {
		return nil, requestError(err)
	}

	metrics.EffectsEvaluated.WithLabelValues(r.Bubble.Kind().String()).Inc()
	return converter.EffectToStruct(s.calc.Effect(r.Bubble, r.Level)), nil
}

// EffectChange implements the EffectChange RPC
func (s *Server) EffectChange(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r, err := converter.StructToEffectChangeRequest(req)
	if err != nil {
		return nil, requestError(err)
	}

	metrics.EffectsEvaluated.WithLabelValues(r.Bubble.Kind().String()).Add(2)
	now, goal := s.calc.EffectDelta(r.Bubble, r.Now, r.Goal)
	return converter.EffectChangeToStruct(converter.EffectChangeResult{
		Now:     now,
		Goal:    goal,
		Display: s.calc.EffectChange(r.Bubble, r.Now, r.Goal),
	}), nil
}

// ListVials implements the ListVials RPC
func (s *Server) ListVials(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	roll, err := converter.StructToListVialsRoll(req)
	if err != nil {
		return nil, requestError(err)
	}
	return converter.VialsToStruct(models.VialsForRoll(roll)), nil
}

// requestError maps converter failures to InvalidArgument
func requestError(err error) error {
	if errors.Is(err, converter.ErrMissingField) || errors.Is(err, converter.ErrWrongType) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
