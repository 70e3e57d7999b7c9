package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type FootfallHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewFootfallHttpServer(router *Router, muxRouter *mux.Router, port string) *FootfallHttpServer {
	return &FootfallHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      ":" + port,
	}
}

// Start registers routes, serves until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *FootfallHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Println("Starting server on " + s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
