package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/attest/internal/api"
	"github.com/JaimeStill/attest/internal/config"
	"github.com/JaimeStill/attest/internal/infrastructure"
	"github.com/JaimeStill/attest/pkg/module"
)

// Modules holds the mounted HTTP modules.
type Modules struct {
	API *module.Module
}

// NewModules builds every module served by the process.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{API: apiModule}, nil
}

// Mount attaches each module to router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

type probeResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, probeResponse{Status: "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			writeStatus(w, http.StatusServiceUnavailable, probeResponse{Status: "starting"})
			return
		}
		if failures := infra.Lifecycle.Probe(r.Context()); len(failures) > 0 {
			writeStatus(w, http.StatusServiceUnavailable, probeResponse{Status: "degraded", Checks: failures})
			return
		}
		writeStatus(w, http.StatusOK, probeResponse{Status: "ready"})
	})

	return router
}

func writeStatus(w http.ResponseWriter, code int, body probeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
