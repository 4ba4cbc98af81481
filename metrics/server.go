package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Serve starts a bare /metrics HTTP endpoint backed by reg and returns the
// *http.Server immediately; the caller owns its lifetime and should call
// Shutdown (or Close) once the search run this Collector was attached to
// has finished.
func Serve(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()

	return srv
}

// Shutdown is a thin convenience wrapper so callers don't need to import
// context solely to stop a Serve-returned server.
func Shutdown(srv *http.Server) error {
	return srv.Shutdown(context.Background())
}
