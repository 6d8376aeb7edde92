package main

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/config"
	"github.com/napolitain/alchemy/internal/models"
	"github.com/napolitain/alchemy/internal/rpc"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "dev",
		CurveCacheSize: 64,
	}
}

func dial(t *testing.T, lis *bufconn.Listener) *rpc.Client {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return rpc.NewClient(conn)
}

// TestServeMatchesDirectCalculator verifies that the served Discount returns
// the same breakdown as calling the calculator directly.
func TestServeMatchesDirectCalculator(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, lis, testConfig(), log) }()

	client := dial(t, lis)
	levels := alchemy.DiscountLevels{CauldronCostReduction: 40, BubbleTwelve: 30, BargainTag: 3}

	got, err := client.Discount(context.Background(), levels)
	require.NoError(t, err)
	assert.Equal(t, alchemy.ComputeDiscount(levels), got)

	vials, err := client.ListVials(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.VialsForRoll(1), vials)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}

	// development mode logs the discount breakdown
	assert.Contains(t, logs.String(), "bubble discount")
	assert.Contains(t, logs.String(), "shutting down")
}

func TestProductionModeSkipsDiscountBreakdown(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := testConfig()
	cfg.Environment = "prod"

	s, err := newGRPCServer(cfg, log)
	require.NoError(t, err)
	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	_, err = dial(t, lis).Discount(context.Background(), alchemy.DiscountLevels{BargainTag: 1})
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "bubble discount")
}

func TestNewMetricsServer(t *testing.T) {
	assert.Nil(t, newMetricsServer(""), "empty address disables metrics")

	srv := newMetricsServer(":0")
	require.NotNil(t, srv)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alchemy_grpc_requests_in_flight")
}
