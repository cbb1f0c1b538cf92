package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davestewart/wxt-module-pages/internal/config"
	"github.com/davestewart/wxt-module-pages/internal/dev"
	pageserrors "github.com/davestewart/wxt-module-pages/internal/errors"
	"github.com/davestewart/wxt-module-pages/pkg/driver"
)

func devCmd() *cobra.Command {
	var (
		port    int
		host    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server with live regeneration.

The server watches the pages roots, rebuilds the route trees on
change, and serves:

  GET /routes.json        all scopes as JSON
  GET /routes/{scope}.js  one scope as a generated module
  GET /metrics            Prometheus metrics
  GET /_pages/reload      WebSocket reload notifications

Examples:
  pagegen dev
  pagegen dev --port=4000
  pagegen dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(port, host, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from pages.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from pages.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug-level logging")

	return cmd
}

func runDev(port int, host string, verbose bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	drv, err := driver.Get(cfg.Driver)
	if err != nil {
		return pageserrors.New("E103").WithDetail(err.Error())
	}

	logCfg := zap.NewDevelopmentConfig()
	if !verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := logCfg.Build()
	if err != nil {
		return err
	}
	defer log.Sync()

	printBanner()
	fmt.Println("  dev")
	fmt.Println()
	info("driver  %s", drv.Name())
	info("serving http://%s", cfg.DevAddress())
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	server := dev.NewServer(cfg, drv, log)
	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		return pageserrors.New("E160").Wrap(err)
	}
	return nil
}
