package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hrpower/meetreport/pkg/logger"
)

// RouterDeps are the handlers the router wires up. Declared as interfaces
// here to avoid an import cycle with the handlers package.
type RouterDeps struct {
	Results interface {
		GetResults(http.ResponseWriter, *http.Request)
		GetRankings(http.ResponseWriter, *http.Request)
		GetTop(http.ResponseWriter, *http.Request)
		GetStats(http.ResponseWriter, *http.Request)
	}
	Hub *Hub
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps RouterDeps, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/results", deps.Results.GetResults).Methods("GET")
	apiRouter.HandleFunc("/rankings/{sex}/{event}", deps.Results.GetRankings).Methods("GET")
	apiRouter.HandleFunc("/top/{sex}/{event}", deps.Results.GetTop).Methods("GET")
	apiRouter.HandleFunc("/stats", deps.Results.GetStats).Methods("GET")

	if deps.Hub != nil {
		r.HandleFunc("/ws", deps.Hub.Handle)
	}

	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "meetreport-api",
	})
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics.
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
