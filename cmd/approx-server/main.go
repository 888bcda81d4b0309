/*
DESCRIPTION
  approx-server serves the approx session API over HTTP.

AUTHORS
  The approx contributors

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/approx/config"
	"github.com/ausocean/approx/server"
	"github.com/ausocean/approx/session"
)

const (
	progName        = "approx-server"
	logSuppress     = true
	shutdownTimeout = 5 * time.Second
)

func main() {
	configFile := flag.String("ConfigFile", "", "Specifies config file")
	addr := flag.String("Addr", "", "Specifies listen address, overriding config")
	logLevel := flag.String("LogLevel", "", "Specifies log level, overriding config")
	logPath := flag.String("LogPath", "", "Specifies log path, overriding config")
	flag.Parse()

	// A missing .env file is normal; the environment is used as is.
	_ = godotenv.Load()

	var opts []config.Option
	if *addr != "" {
		opts = append(opts, config.WithAddr(*addr))
	}
	if *logLevel != "" {
		opts = append(opts, config.WithValue(config.KeyLogLevel, *logLevel))
	}
	if *logPath != "" {
		opts = append(opts, config.WithValue(config.KeyLogPath, *logPath))
	}
	cfg, err := config.Load(*configFile, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: could not load config: %v\n", progName, err)
		os.Exit(1)
	}

	fileLog := &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	}
	defer fileLog.Close()
	log := logging.New(cfg.LogLevel, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server failed", "error", err.Error())
	}
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	store := session.NewStore(session.WithOrders(cfg.Orders))
	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.New(store, log,
			server.WithTimeout(cfg.RequestTimeout),
			server.WithChartSize(cfg.ChartSize()),
		),
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr, "logLevel", int(cfg.LogLevel))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "sessions", store.Len())
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("could not shut down: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
