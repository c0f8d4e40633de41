package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// RequestCounter counts handled HTTP requests by method, path template and
// status code.
type RequestCounter struct {
	requests *prometheus.CounterVec
}

func NewRequestCounter(reg prometheus.Registerer) (*RequestCounter, error) {
	rc := &RequestCounter{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
	}

	if err := reg.Register(rc.requests); err != nil {
		return nil, err
	}

	return rc, nil
}

// Handler labels requests with the mux route template so document IDs do not
// explode metric cardinality. /metrics itself is not counted.
func (rc *RequestCounter) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			rc.requests.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
		})
	}
}
