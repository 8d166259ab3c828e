package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests tags each request with an ID and logs it once it completes.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		slog.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"htmx", r.Header.Get("HX-Request") == "true",
			"duration", time.Since(start),
		)
	})
}

type toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// toasts collects notifications raised while handling one request. They
// reach the browser as a showToast event in the HX-Trigger header.
type toasts struct {
	items []toast
}

func (t *toasts) Success(msg string) { t.items = append(t.items, toast{"success", msg}) }
func (t *toasts) Error(msg string)   { t.items = append(t.items, toast{"error", msg}) }

func (t *toasts) flush(w http.ResponseWriter) {
	if t == nil || len(t.items) == 0 {
		return
	}
	payload := map[string]any{"showToast": map[string]any{"toasts": t.items}}
	b, err := json.Marshal(payload)
	if err != nil {
		slog.Error("encode toasts", "err", err)
		return
	}
	w.Header().Set("HX-Trigger", string(b))
}
