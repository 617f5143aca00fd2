package ratings

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/handlers"
	"github.com/JaimeStill/attest/pkg/pagination"
	"github.com/JaimeStill/attest/pkg/routes"
)

// Handler provides HTTP endpoints for rating operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "ratings"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for rating endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/ratings",
		Tags:        []string{"Ratings"},
		Description: "Ratings between landlords and tenants",
		Schemas:     Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/property", Handler: h.ByProperty, OpenAPI: Spec.ByProperty},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "GET", Pattern: "/landlord/{id}", Handler: h.ByLandlord, OpenAPI: Spec.ByLandlord},
			{Method: "GET", Pattern: "/landlord/{id}/to-tenants", Handler: h.ToTenants, OpenAPI: Spec.ToTenants},
			{Method: "GET", Pattern: "/landlord/{id}/from-tenants", Handler: h.FromTenants, OpenAPI: Spec.FromTenants},
			{Method: "GET", Pattern: "/tenant/{id}", Handler: h.ByTenant, OpenAPI: Spec.ByTenant},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "POST", Pattern: "/analyze-sentiment", Handler: h.AnalyzeSentiment, OpenAPI: Spec.AnalyzeSentiment},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	rt, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rt)
}

func (h *Handler) ByLandlord(w http.ResponseWriter, r *http.Request) {
	h.listByID(w, r, h.sys.ByLandlord)
}

// ToTenants lists the ratings a landlord has given tenants.
func (h *Handler) ToTenants(w http.ResponseWriter, r *http.Request) {
	h.listByID(w, r, func(ctx context.Context, id uuid.UUID) ([]Rating, error) {
		return h.sys.ByLandlordAndType(ctx, id, LandlordToTenant)
	})
}

// FromTenants lists the ratings tenants have given a landlord.
func (h *Handler) FromTenants(w http.ResponseWriter, r *http.Request) {
	h.listByID(w, r, func(ctx context.Context, id uuid.UUID) ([]Rating, error) {
		return h.sys.ByLandlordAndType(ctx, id, TenantToLandlord)
	})
}

func (h *Handler) ByTenant(w http.ResponseWriter, r *http.Request) {
	h.listByID(w, r, h.sys.ByTenant)
}

func (h *Handler) ByProperty(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.ByProperty(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	rt, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, rt)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	rt, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rt)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AnalyzeSentiment scores arbitrary text without storing anything.
func (h *Handler) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req SentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	analysis, err := h.sys.AnalyzeSentiment(req.Text)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, analysis)
}

func (h *Handler) listByID(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, uuid.UUID) ([]Rating, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	items, err := fetch(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
