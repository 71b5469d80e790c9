package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newLimiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(mockCache *mocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:      "disabled limiter never touches redis",
			enable:    false,
			setupMock: func(_ *mocks.MockRedisCache) {},
			wantCode:  http.StatusOK,
		},
		{
			name:   "within the window",
			enable: true,
			setupMock: func(mockCache *mocks.MockRedisCache) {
				mockCache.EXPECT().
					Increment(gomock.Any(), "limiter:10.0.0.1:curl/8.0", 60).
					Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(mockCache *mocks.MockRedisCache) {
				mockCache.EXPECT().
					Increment(gomock.Any(), gomock.Any(), 60).
					Return(int64(3), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "redis failure lets the request through",
			enable: true,
			setupMock: func(mockCache *mocks.MockRedisCache) {
				mockCache.EXPECT().
					Increment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := mocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), newLimiterConfig(tt.enable), mockCache)

			req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-42")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestTracingAndLogger_KeepStatus(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	handler := mw.Tracing(mw.Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	t.Run("any origin when not configured", func(t *testing.T) {
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rec := httptest.NewRecorder()
		mw.CORS()(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured origins only", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.CORS.Enable = true
		cfg.App.CORS.AllowedOrigins = []string{"https://frontdesk.example.com"}

		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)

		allowed := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
		allowed.Header.Set("Origin", "https://frontdesk.example.com")

		rec := httptest.NewRecorder()
		mw.CORS()(okHandler()).ServeHTTP(rec, allowed)
		assert.Equal(t, "https://frontdesk.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

		denied := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
		denied.Header.Set("Origin", "https://evil.example.com")

		rec = httptest.NewRecorder()
		mw.CORS()(okHandler()).ServeHTTP(rec, denied)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
