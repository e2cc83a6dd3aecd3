package app

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestHTTPServiceServesUntilStopped(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	svc := NewHTTPService("127.0.0.1:0", handler)

	done := make(chan error, 1)
	go func() { done <- svc.Start(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for svc.Addr() == "" && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if svc.Addr() == "" {
		t.Fatalf("http service did not start listening")
	}

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + svc.Addr() + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	client.CloseIdleConnections()
	if string(body) != "ok" {
		t.Fatalf("body want ok got %q", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := svc.Stop(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("start should return nil after shutdown, got %v", err)
	}
}

func TestHTTPServiceReportsListenError(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:-1", http.NotFoundHandler())
	if err := svc.Start(context.Background()); err == nil {
		t.Fatalf("invalid address should fail")
	}
}
