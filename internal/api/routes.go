package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/attest/internal/config"
	"github.com/JaimeStill/attest/pkg/openapi"
	"github.com/JaimeStill/attest/pkg/routes"
)

// Groups returns every domain route group in registration order.
func (d *Domain) Groups(maxUploadSize int64) []routes.Group {
	return []routes.Group{
		d.Landlords.Handler().Routes(),
		d.Tenants.Handler().Routes(),
		d.Verification.Handler().Routes(),
		d.Rentals.Handler().Routes(),
		d.Ratings.Handler().Routes(),
		d.Vehicles.Handler().Routes(),
		d.Lands.Handler().Routes(),
		d.LandDocs.Handler(maxUploadSize).Routes(),
		d.Books.Handler().Routes(),
	}
}

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	groups := domain.Groups(runtime.MaxUploadSize)
	routes.Register(mux, groups...)

	spec, err := buildSpec(cfg, groups)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))
	return nil
}

func buildSpec(cfg *config.Config, groups []routes.Group) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.OpenAPI.Server(cfg.API.BasePath))

	routes.Describe(spec, groups...)

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return data, nil
}
