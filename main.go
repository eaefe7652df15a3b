package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func route(api *api) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", api.indexHandler)
	mux.HandleFunc("GET /health", api.healthHandler)
	mux.HandleFunc("GET /api/special-dates", api.listDatesHandler)
	mux.HandleFunc("POST /api/special-dates", api.createDateHandler)
	mux.HandleFunc("PUT /api/special-dates/{id}", api.updateDateHandler)
	mux.HandleFunc("DELETE /api/special-dates/{id}", api.deleteDateHandler)
	mux.HandleFunc("POST /upload-photo", api.uploadPhotoHandler)
	mux.Handle("GET /static/", api.static)

	var h http.Handler = mux

	h = loggingMiddleware(api.log, h)
	h = proxyHeadersMiddleware(h)
	h = requestIDMiddleware(h)
	h = recoverMiddleware(api.log, h)

	return h
}

func newAPI(cfg Config, log *zap.Logger) (*api, error) {
	index, err := parseIndexTemplate()
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	return &api{
		addr:   cfg.Addr,
		cfg:    cfg,
		dates:  newDateStore(),
		log:    log,
		index:  index,
		static: staticHandler(cfg.StaticDir),
	}, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
func serve(ctx context.Context, api *api) error {
	srv := &http.Server{
		Addr:              api.addr,
		Handler:           route(api),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		api.log.Info("listening", zap.String("addr", api.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newServeCmd() *cobra.Command {
	var (
		addr      string
		staticDir string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard page and special-dates API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("static-dir") {
				cfg.StaticDir = staticDir
			}
			cfg.Debug = debug

			log, err := newLogger(cfg.Debug)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			api, err := newAPI(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, api)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "address to listen on")
	cmd.Flags().StringVar(&staticDir, "static-dir", defaultStaticDir, "directory served under /static/")
	cmd.Flags().BoolVar(&debug, "debug", false, "development logging")

	return cmd
}

func main() {
	serveCmd := newServeCmd()

	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "Personal dashboard backend",
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}
	root.Flags().AddFlagSet(serveCmd.Flags())
	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
