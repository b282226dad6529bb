package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type VenueDiscoveryHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	address         string
	shutdownTimeout time.Duration
	middlewares     []func(http.Handler) http.Handler
}

func NewVenueDiscoveryHttpServer(
	router *Router,
	muxRouter *mux.Router,
	address string,
	shutdownTimeout time.Duration,
	middlewares ...func(http.Handler) http.Handler) *VenueDiscoveryHttpServer {
	return &VenueDiscoveryHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		address:         address,
		shutdownTimeout: shutdownTimeout,
		middlewares:     middlewares,
	}
}

// Handler registers the routes and returns them wrapped in the middlewares.
func (s *VenueDiscoveryHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()
	return Chain(s.muxRouter, s.middlewares...)
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *VenueDiscoveryHttpServer) Start() {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[VenueDiscoveryHttpServer] Starting server on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[VenueDiscoveryHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[VenueDiscoveryHttpServer] Server exiting")
}
