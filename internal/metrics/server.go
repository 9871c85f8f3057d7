package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusFunc supplies the current risk snapshot for the /risk
// endpoint. It is called per request, so it should be cheap and safe
// to call from the HTTP serving goroutine.
type StatusFunc func() RiskStatus

// RiskStatus is the JSON body served on /risk.
type RiskStatus struct {
	CurrentVaR float64 `json:"current_var"`
	Regime     string  `json:"regime"`
	Positions  int     `json:"positions"`
}

// NewServer builds the HTTP server exposing /metrics, /health and
// /risk on addr. The caller owns its lifecycle.
func NewServer(addr string, collector *Collector, status StatusFunc) *http.Server {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/risk", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status())
	}).Methods(http.MethodGet)

	return &http.Server{Addr: addr, Handler: router}
}
