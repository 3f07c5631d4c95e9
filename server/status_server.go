package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// StatusServer exposes the serve-mode status endpoints and blocks until a
// shutdown signal arrives.
type StatusServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    *zap.Logger
}

func NewStatusServer(router *Router, muxRouter *mux.Router, addr string, logger *zap.Logger) *StatusServer {
	return &StatusServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		logger:    logger,
	}
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *StatusServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("starting status server", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("status server failed", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down status server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Fatal("status server forced to shutdown", zap.Error(err))
	}
	s.logger.Info("status server exiting")
}
