package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
)

// newMetricsHandler exposes the status registry and Go runtime metrics in Prometheus text format
func newMetricsHandler(reg *status.Registry) http.Handler {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		status.NewCollector(reg),
		collectors.NewGoCollector(),
	)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	return mux
}

// startMetricsServer serves /metrics on addr until shutdown is called
func startMetricsServer(addr string, reg *status.Registry) (shutdown func()) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMetricsHandler(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	core.Go(func() {
		log.Printf("metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	})

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
