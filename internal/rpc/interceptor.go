package rpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/napolitain/alchemy/internal/logger"
)

// RequestIDHeader carries a caller supplied request ID
const RequestIDHeader = "x-request-id"

// LoggingInterceptor tags each call with a request ID, taken from the
// x-request-id header or generated, and logs its outcome
func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		ctx = logger.WithRequestID(ctx, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{
			logger.AttrKeyRequestID, requestID,
			logger.AttrKeyMethod, info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		}
		if err != nil {
			log.Warn("request failed", append(attrs, "error", err)...)
		} else {
			log.Debug("request handled", attrs...)
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return logger.GenerateRequestID()
}
