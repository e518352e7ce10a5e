package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-snake/status"
)

func TestMetricsHandler(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyScore).Store(40)

	srv := httptest.NewServer(newMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	if want := status.MetricName(status.KeyScore) + " 40"; !strings.Contains(text, want) {
		t.Errorf("Expected %q in output", want)
	}
	if !strings.Contains(text, "go_goroutines") {
		t.Error("Expected Go runtime metrics")
	}
}
