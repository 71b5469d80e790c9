package http

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/shared/background"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"
	"hotel/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hotel/docs" // swagger spec
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout    = 10 * time.Second
	defaultCleanupPeriod = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Kafka      kafka.Client
	Tasks      *background.Group

	state     atomic.Int32
	mux       *chi.Mux
	server    *http.Server
	setupOnce sync.Once
	stopOnce  sync.Once
	stopped   chan struct{}
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, kafkaClient kafka.Client, tasks *background.Group) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Kafka:      kafkaClient,
		Tasks:      tasks,
		stopped:    make(chan struct{}),
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve blocks until a SIGTERM has been handled completely: in-flight requests
// drained, background tasks finished and shared clients closed.
func (h *HTTP) Serve() {
	h.setup()

	listener, err := net.Listen("tcp", net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err = h.serve(listener); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) serve(listener net.Listener) error {
	h.setup()

	if err := h.server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	// Serve returns as soon as the listener closes, long before shutdown is done
	<-h.stopped

	return nil
}

// ServeHTTP lets the service run behind a serverless function entry point.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.setupRoutes()

		h.server = &http.Server{
			Handler:           h.mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}

		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		chiMiddleware.Recoverer,
		h.Middleware.RequestID,
		h.Middleware.Logger,
		h.Middleware.CORS(),
		h.Middleware.Tracing,
		h.Middleware.RateLimit(),
	)

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.WrapHandler)

	h.Router.SetupRoutes(h.mux)
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	signal.Stop(done)

	log.Info().Msg("Received SIGTERM.")

	h.shutdown()
}

// shutdown reports 503 on /health for the grace period so load balancers stop
// routing here, then drains requests and background tasks within the cleanup
// period before closing shared clients. Safe to call more than once.
func (h *HTTP) shutdown() {
	h.stopOnce.Do(func() {
		defer close(h.stopped)

		shutdownConfig := h.Config.Server.Shutdown

		h.setState(ServerStateInGracePeriod)

		if h.Config.Server.Env == constant.ServerEnvDevelopment {
			log.Warn().Msg("Skipping grace period in development.")
		} else {
			log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

			time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
		}

		cleanupPeriod := time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second
		if cleanupPeriod <= 0 {
			cleanupPeriod = defaultCleanupPeriod
		}

		log.Info().Dur("period", cleanupPeriod).Msg("Entering cleanup period.")

		h.setState(ServerStateInCleanupPeriod)

		ctx, cancel := context.WithTimeout(context.Background(), cleanupPeriod)
		defer cancel()

		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to drain HTTP server")
		}

		if err := h.Tasks.Wait(ctx); err != nil {
			log.Error().Err(err).Msg("failed to finish background tasks")
		}

		h.cleanup()

		log.Info().Msg("Cleaning up completed. Shutting down now.")
	})
}

func (h *HTTP) cleanup() {
	if err := h.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka writer")
	}
}
