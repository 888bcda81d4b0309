/*
DESCRIPTION
  main_test.go provides testing for approx-server start up and shutdown.

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
	"testing"
	"time"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/approx/config"
)

func TestRunShutdown(t *testing.T) {
	cfg, err := config.Load("", config.WithAddr("127.0.0.1:0"))
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, (*logging.TestLogger)(t)) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunBadAddr(t *testing.T) {
	cfg, err := config.Load("", config.WithAddr("127.0.0.1:-1"))
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}
	if err := run(context.Background(), cfg, (*logging.TestLogger)(t)); err == nil {
		t.Error("expected error for invalid address")
	}
}
