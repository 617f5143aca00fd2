package verification

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/handlers"
	"github.com/JaimeStill/attest/pkg/routes"
)

var errInvalidBody = faults.InvalidInput("verification request", "", "request body is not valid JSON")

// Handler provides the landlord and tenant verification endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "verification"),
	}
}

// Routes returns the verification routes. They sit beside the landlord and
// tenant resources rather than under a prefix of their own.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags:        []string{"Verification"},
		Description: "Trust assessment of landlords and tenants",
		Schemas:     Schemas,
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/landlords/verify", Handler: h.VerifyLandlord, OpenAPI: Spec.VerifyLandlord},
			{Method: "POST", Pattern: "/tenants/verify", Handler: h.VerifyTenant, OpenAPI: Spec.VerifyTenant},
		},
	}
}

// VerifyLandlord responds 404 with the report body when the landlord is unknown.
func (h *Handler) VerifyLandlord(w http.ResponseWriter, r *http.Request) {
	var req LandlordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidBody)
		return
	}

	resp, err := h.sys.VerifyLandlord(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, faults.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, status(resp.Exists), resp)
}

// VerifyTenant responds 404 with the report body when the tenant is unknown.
func (h *Handler) VerifyTenant(w http.ResponseWriter, r *http.Request) {
	var req TenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidBody)
		return
	}

	resp, err := h.sys.VerifyTenant(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, faults.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, status(resp.Exists), resp)
}

func status(exists bool) int {
	if exists {
		return http.StatusOK
	}
	return http.StatusNotFound
}
