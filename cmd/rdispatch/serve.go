package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rdispatch"
	"github.com/rohanthewiz/rdispatch/consts"
	"github.com/spf13/cobra"
)

func serveCmd(routesFile *string) *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route table over HTTP",
		Long: `Serve dispatches every request path through the route table.
No application controllers are loaded, so every recognized path
is answered by an echo controller printing its params.

Also mounted:
  /_routes   the route table as HTML
  /metrics   Prometheus metrics

Examples:
  rdispatch serve -f routes.yaml --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()

			d, err := loadDispatcher(*routesFile, rdispatch.Options{Verbose: verbose, Registerer: reg})
			if err != nil {
				return err
			}
			d.Fallback(newEchoController)
			if verbose {
				d.Use(rdispatch.DispatchInfo)
			}

			return runServer(addr, newRouter(d, reg))
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to listen on")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every dispatch")
	return cmd
}

// newRouter mounts the dispatcher and the inspection endpoints.
func newRouter(d *rdispatch.Dispatcher, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/_routes", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(consts.HeaderContentType, consts.MIMETextHTML)
		_, _ = w.Write([]byte(rdispatch.RoutesPage(d)))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Handle("/*", rdispatch.NewHTTPHandler(d))
	return r
}

// runServer listens until SIGINT or SIGTERM, then shuts down gracefully.
func runServer(addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sigCh:
		logger.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
