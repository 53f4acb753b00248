package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":       ":8080",
		"  ":     ":8080",
		"9000":   ":9000",
		":9000":  ":9000",
		" 7000 ": ":7000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv := New("0", http.NotFoundHandler())
	if srv.Addr() != ":0" {
		t.Fatalf("addr = %q", srv.Addr())
	}
	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after Shutdown")
	}
}
