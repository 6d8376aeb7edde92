package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryServerInterceptorCountsRequests(t *testing.T) {
	const method = "/test.Service/Ok"
	intercept := UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: method}

	before := testutil.ToFloat64(GRPCRequestsTotal.WithLabelValues(method, codes.OK.String()))

	var inFlight float64
	resp, err := intercept(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		inFlight = testutil.ToFloat64(GRPCRequestsInFlight)
		return "resp", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
	assert.Equal(t, 1.0, inFlight)
	assert.Equal(t, 0.0, testutil.ToFloat64(GRPCRequestsInFlight))
	assert.Equal(t, before+1, testutil.ToFloat64(GRPCRequestsTotal.WithLabelValues(method, codes.OK.String())))
}

func TestUnaryServerInterceptorRecordsErrorCode(t *testing.T) {
	const method = "/test.Service/Bad"
	intercept := UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: method}

	_, err := intercept(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "bad")
	})

	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(GRPCRequestsTotal.WithLabelValues(method, codes.InvalidArgument.String())))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(GRPCRequestDuration, MetricNameGRPCRequestDuration), 1)
}

func TestBusinessMetricsRegistered(t *testing.T) {
	EffectsEvaluated.WithLabelValues("Decay").Inc()
	DiscountTotal.Observe(42)

	assert.GreaterOrEqual(t, testutil.ToFloat64(EffectsEvaluated.WithLabelValues("Decay")), 1.0)
	assert.Equal(t, 1, testutil.CollectAndCount(DiscountTotal, MetricNameDiscountTotal))
}
