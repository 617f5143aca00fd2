package vehicles

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

// Handler provides HTTP endpoints for vehicle operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "vehicles"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for vehicle endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/vehicles",
		Tags:        []string{"Vehicles"},
		Description: "Vehicle registry, theft and tampering reports, and verification",
		Schemas:     Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/stolen", Handler: h.Stolen, OpenAPI: Spec.Stolen},
			{Method: "GET", Pattern: "/tampered", Handler: h.Tampered, OpenAPI: Spec.Tampered},
			{Method: "GET", Pattern: "/chassis/{chassis}", Handler: h.FindByChassis, OpenAPI: Spec.FindByChassis},
			{Method: "GET", Pattern: "/registration/{registration}", Handler: h.FindByRegistration, OpenAPI: Spec.FindByRegistration},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
			{Method: "POST", Pattern: "/verify", Handler: h.Verify, OpenAPI: Spec.Verify},
			{Method: "POST", Pattern: "/verify/ai", Handler: h.VerifyWithAI, OpenAPI: Spec.VerifyWithAI},
			{Method: "POST", Pattern: "/report/stolen/{chassis}", Handler: h.ReportStolen, OpenAPI: Spec.ReportStolen},
			{Method: "POST", Pattern: "/report/tampered/{chassis}", Handler: h.ReportTampered, OpenAPI: Spec.ReportTampered},
			{Method: "POST", Pattern: "/ownership/{chassis}", Handler: h.TransferOwnership, OpenAPI: Spec.TransferOwnership},
		},
	}
}

// List returns a paginated list of vehicles with optional query parameter filters.
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

// Stolen returns every vehicle flagged as stolen.
func (h *Handler) Stolen(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.Stolen(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Tampered returns every vehicle flagged as tampered with.
func (h *Handler) Tampered(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.Tampered(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) FindByChassis(w http.ResponseWriter, r *http.Request) {
	v, err := h.sys.FindByChassis(r.Context(), r.PathValue("chassis"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

func (h *Handler) FindByRegistration(w http.ResponseWriter, r *http.Request) {
	v, err := h.sys.FindByRegistration(r.Context(), r.PathValue("registration"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

// Find returns a single vehicle by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	v, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

// Create registers a new vehicle from a JSON body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	v, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, v)
}

// Update overwrites the fields present in the JSON body.
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

	v, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

// Delete removes a vehicle by its UUID path parameter.
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

// Verify checks a vehicle by chassis or registration number.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, h.sys.Verify)
}

// VerifyWithAI checks a vehicle and attaches a confidence verdict.
func (h *Handler) VerifyWithAI(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, h.sys.VerifyWithAI)
}

func (h *Handler) ReportStolen(w http.ResponseWriter, r *http.Request) {
	v, err := h.sys.ReportStolen(r.Context(), r.PathValue("chassis"), r.URL.Query().Get("report_details"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

func (h *Handler) ReportTampered(w http.ResponseWriter, r *http.Request) {
	v, err := h.sys.ReportTampered(r.Context(), r.PathValue("chassis"), r.URL.Query().Get("report_details"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

// TransferOwnership moves a vehicle to the owner named in the query string.
func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	v, err := h.sys.TransferOwnership(r.Context(), r.PathValue("chassis"), q.Get("new_owner_name"), q.Get("new_owner_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

type verifyFunc func(ctx context.Context, req VerifyRequest) (*VerifyResponse, error)

func (h *Handler) verify(w http.ResponseWriter, r *http.Request, fn verifyFunc) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	resp, err := fn(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
