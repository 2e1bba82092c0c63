// cmd/worker-manager/health.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type check func(ctx context.Context) error

// newHealthMux serves /health (process up), /ready (storage and broker
// reachable) and /metrics.
func newHealthMux(storage, broker check) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		body := map[string]string{"status": "ready", "storage": "ok", "broker": "ok"}
		code := http.StatusOK
		if err := storage(ctx); err != nil {
			body["storage"] = err.Error()
			body["status"] = "not ready"
			code = http.StatusServiceUnavailable
		}
		if err := broker(ctx); err != nil {
			body["broker"] = err.Error()
			body["status"] = "not ready"
			code = http.StatusServiceUnavailable
		}
		writeStatus(w, code, body)
	})

	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func writeStatus(w http.ResponseWriter, code int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
