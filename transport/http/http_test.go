package http

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/shared/background"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
)

func newTestServer() *HTTP {
	cfg := &config.Config{}

	return newServer(cfg, nil)
}

func newServer(cfg *config.Config, kafkaClient *kafkaMocks.MockClient) *HTTP {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)

	if kafkaClient == nil {
		return New(cfg, router.New(router.DomainHandlers{}), mw, nil, background.New(cfg))
	}

	return New(cfg, router.New(router.DomainHandlers{}), mw, kafkaClient, background.New(cfg))
}

func TestHTTP_Health(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name     string
		state    ServerState
		wantCode int
		wantBody string
	}{
		{
			name:     "ready",
			state:    ServerStateReady,
			wantCode: http.StatusOK,
			wantBody: `{"message":"OK"}`,
		},
		{
			name:     "grace period",
			state:    ServerStateInGracePeriod,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`,
		},
		{
			name:     "cleanup period",
			state:    ServerStateInCleanupPeriod,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server.setup()
			server.setState(tt.state)

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHTTP_ServeHTTP(t *testing.T) {
	server := newTestServer()

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("ready after first request", func(t *testing.T) {
		assert.Equal(t, ServerStateReady, server.State())
	})
}

func TestHTTP_ServeWaitsForShutdownToFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.Shutdown.CleanupPeriodSeconds = 5

	server := newServer(cfg, kafkaClient)
	server.setup()

	var (
		requestDone atomic.Bool
		taskDone    atomic.Bool
	)

	started := make(chan struct{})

	server.mux.Get("/slow", func(writer http.ResponseWriter, request *http.Request) {
		server.Tasks.Go(request.Context(), "slow.followup", func(context.Context) {
			time.Sleep(400 * time.Millisecond)
			taskDone.Store(true)
		})

		close(started)
		time.Sleep(300 * time.Millisecond)
		requestDone.Store(true)
		writer.WriteHeader(http.StatusOK)
	})

	kafkaClient.EXPECT().Close().DoAndReturn(func() error {
		assert.True(t, requestDone.Load(), "kafka closed while a request was in flight")
		assert.True(t, taskDone.Load(), "kafka closed while a background task was running")

		return nil
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)

	go func() { served <- server.serve(listener) }()

	status := make(chan int, 1)

	go func() {
		res, err := http.Get("http://" + listener.Addr().String() + "/slow")
		if err != nil {
			status <- 0

			return
		}

		res.Body.Close()
		status <- res.StatusCode
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("request never reached the handler")
	}

	go server.shutdown()

	select {
	case err := <-served:
		require.NoError(t, err)
		assert.True(t, requestDone.Load())
		assert.True(t, taskDone.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after shutdown")
	}

	assert.Equal(t, http.StatusOK, <-status)
	assert.Equal(t, ServerStateInCleanupPeriod, server.State())
}

func TestHTTP_ShutdownRunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Server.Env = "development"

	server := newServer(cfg, kafkaClient)
	server.setup()

	kafkaClient.EXPECT().Close().Return(nil).Times(1)

	server.shutdown()
	server.shutdown()

	select {
	case <-server.stopped:
	default:
		t.Fatal("shutdown did not mark the server stopped")
	}
}
