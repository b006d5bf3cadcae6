// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// startAPI runs svc in the background and waits until it is bound.
func startAPI(t *testing.T, svc *APIServerService) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for svc.Addr() == nil {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("API server did not bind")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cancel, errCh
}

func waitServe(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return")
		return nil
	}
}

func TestNewAPIServerService(t *testing.T) {
	var _ suture.Service = (*APIServerService)(nil)

	tests := []struct {
		timeout time.Duration
		want    time.Duration
	}{
		{5 * time.Second, 5 * time.Second},
		{0, DefaultDrainTimeout},
		{-time.Second, DefaultDrainTimeout},
	}
	for _, tt := range tests {
		svc := NewAPIServerService(&http.Server{}, "127.0.0.1:0", tt.timeout)
		if svc.drainTimeout != tt.want {
			t.Errorf("timeout %v: drainTimeout = %v, want %v", tt.timeout, svc.drainTimeout, tt.want)
		}
		if svc.String() != "api-server" {
			t.Errorf("String() = %q", svc.String())
		}
		if svc.Addr() != nil {
			t.Errorf("Addr() before Serve = %v, want nil", svc.Addr())
		}
	}
}

func TestAPIServerService_ServesAndStops(t *testing.T) {
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})}
	svc := NewAPIServerService(server, "127.0.0.1:0", time.Second)

	cancel, errCh := startAPI(t, svc)

	resp, err := http.Get("http://" + svc.Addr().String() + "/health/live")
	if err != nil {
		cancel()
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	if err := waitServe(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if svc.Addr() != nil {
		t.Errorf("Addr() after stop = %v, want nil", svc.Addr())
	}
}

func TestAPIServerService_DrainsInFlightRequest(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		_, _ = io.WriteString(w, "recorded")
	})}
	svc := NewAPIServerService(server, "127.0.0.1:0", 2*time.Second)

	cancel, errCh := startAPI(t, svc)
	url := "http://" + svc.Addr().String() + "/api/v1/sessions/s-1/feedback"

	type result struct {
		body string
		err  error
	}
	respCh := make(chan result, 1)
	go func() {
		resp, err := http.Post(url, "application/json", nil)
		if err != nil {
			respCh <- result{err: err}
			return
		}
		defer func() { _ = resp.Body.Close() }()
		b, err := io.ReadAll(resp.Body)
		respCh <- result{body: string(b), err: err}
	}()

	<-entered
	cancel()
	time.Sleep(50 * time.Millisecond)
	close(release)

	got := <-respCh
	if got.err != nil || got.body != "recorded" {
		t.Errorf("in-flight request = %q, %v; want it to complete", got.body, got.err)
	}
	if err := waitServe(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestAPIServerService_BindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = taken.Close() }()

	svc := NewAPIServerService(&http.Server{}, taken.Addr().String(), time.Second)
	err = svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve() on a taken port returned nil")
	}
	if svc.Addr() != nil {
		t.Errorf("Addr() = %v after bind failure", svc.Addr())
	}
}

// stuckServer never finishes draining.
type stuckServer struct {
	served chan struct{}
	done   chan struct{}
}

func (s *stuckServer) Serve(l net.Listener) error {
	close(s.served)
	<-s.done
	return l.Close()
}

func (s *stuckServer) Shutdown(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestAPIServerService_DrainTimeout(t *testing.T) {
	server := &stuckServer{served: make(chan struct{}), done: make(chan struct{})}
	t.Cleanup(func() { close(server.done) })
	svc := NewAPIServerService(server, "127.0.0.1:0", 50*time.Millisecond)

	cancel, errCh := startAPI(t, svc)
	<-server.served
	cancel()

	if err := waitServe(t, errCh); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want drain deadline error", err)
	}
}

func TestAPIServerService_RebindsUnderSupervisor(t *testing.T) {
	svc := NewAPIServerService(&http.Server{Handler: http.NotFoundHandler()}, "127.0.0.1:0", time.Second)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for svc.Addr() == nil && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if svc.Addr() == nil {
		cancel()
		t.Fatal("API server did not bind under the supervisor")
	}

	cancel()
	<-errCh
	if svc.Addr() != nil {
		t.Error("listener still bound after the supervisor stopped")
	}
}
