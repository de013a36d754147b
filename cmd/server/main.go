/*
main.go - Application entry point

PURPOSE:
  Starts the payroll HTTP service. Handles configuration and graceful
  shutdown; all computation lives in the payroll package.

STARTUP SEQUENCE:
  1. Load .env (optional)
  2. Parse command-line flags (defaults come from the environment)
  3. Create API handler and router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port          HTTP server port (env PORT, default 8080)
  -cors-origins  Comma-separated allowed origins (env CORS_ORIGINS)
  -max-batch     Maximum items per batch request (env MAX_BATCH_SIZE, default 500)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  ./server -port=3000
  PORT=9000 ./server

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/warp/payroll-engine/api"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	// Flags
	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	origins := flag.String("cors-origins", os.Getenv("CORS_ORIGINS"), "Comma-separated allowed CORS origins")
	maxBatch := flag.Int("max-batch", envInt("MAX_BATCH_SIZE", api.DefaultMaxBatchSize), "Maximum items per batch request")
	flag.Parse()

	handler := api.NewHandler(*maxBatch)
	router := api.NewRouter(handler, splitList(*origins))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Payroll service listening on http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
