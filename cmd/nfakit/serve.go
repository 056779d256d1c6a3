package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nfakit/nfakit"
	httpAdapter "github.com/nfakit/nfakit/internal/adapters/http"
	"github.com/nfakit/nfakit/internal/adapters/memory"
	redisAdapter "github.com/nfakit/nfakit/internal/adapters/redis"
	"github.com/nfakit/nfakit/pkg/observability"
	"github.com/nfakit/nfakit/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the toolkit in server mode, exposing a JSON API over HTTP: store
automata by name, simulate inputs, compose, prune, and render diagrams.
Automata live in memory unless a Redis address is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")

		logger := newLogger(cmd)

		var store ports.Store
		if redisAddr != "" {
			rs := redisAdapter.New(redisAddr, "", 0)
			defer rs.Close()
			store = rs
		} else {
			store = memory.New()
		}

		registry := prometheus.NewRegistry()
		metrics := observability.New(registry)

		engine := nfakit.New(
			nfakit.WithLogger(logger),
			nfakit.WithStore(store),
			nfakit.WithMetrics(metrics),
			nfakit.WithMaxSteps(maxSteps),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(engine, registry, logger),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting nfakit server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("nfakit server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for shared automaton storage (host:port)")
	serveCmd.Flags().Int("max-steps", 0, "Step bound per simulation (0 = unbounded)")
}
