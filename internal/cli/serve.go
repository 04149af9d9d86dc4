package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/fabula/internal/adapters/httpapi"
)

// RunServe loads the story file and serves the read-only story API until
// interrupted, then shuts down gracefully.
func RunServe(opts RunOptions, port string) error {
	logger := createLogger(opts.Debug)

	tree, err := loadTree(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: httpapi.NewHandler(tree, logger),
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("Serving story API on %s\n", srv.Addr)
		fmt.Printf("Story source: %s\n", opts.StoryPath)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		fmt.Printf("\nShutting down... Signal: %v\n", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown did not complete", "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
		}
		fmt.Println("Server stopped gracefully")
	}
	return nil
}
