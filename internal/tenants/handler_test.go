package tenants_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/internal/tenants"
	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/pagination"
	"github.com/JaimeStill/attest/pkg/routes"
)

type mockSystem struct {
	listFn   func(ctx context.Context, page pagination.PageRequest, filters tenants.Filters) (*pagination.PageResult[tenants.Tenant], error)
	findFn   func(ctx context.Context, id uuid.UUID) (*tenants.Tenant, error)
	searchFn func(ctx context.Context, criteria tenants.SearchCriteria) ([]tenants.Tenant, error)
	updateFn func(ctx context.Context, id uuid.UUID, cmd tenants.UpdateCommand) (*tenants.Tenant, error)
}

func (m *mockSystem) Handler() *tenants.Handler {
	return tenants.NewHandler(m, discard(), testPagination)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters tenants.Filters) (*pagination.PageResult[tenants.Tenant], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*tenants.Tenant, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Search(ctx context.Context, criteria tenants.SearchCriteria) ([]tenants.Tenant, error) {
	return m.searchFn(ctx, criteria)
}

func (m *mockSystem) FindByIdentifier(context.Context, string, party.IdentifierType) (*tenants.Tenant, error) {
	return nil, nil
}

func (m *mockSystem) Create(context.Context, tenants.CreateCommand) (*tenants.Tenant, error) {
	return nil, nil
}

func (m *mockSystem) Update(ctx context.Context, id uuid.UUID, cmd tenants.UpdateCommand) (*tenants.Tenant, error) {
	return m.updateFn(ctx, id, cmd)
}

func (m *mockSystem) Delete(context.Context, uuid.UUID) error {
	return nil
}

func (m *mockSystem) SaveAssessment(context.Context, uuid.UUID, party.Assessment) (*tenants.Tenant, error) {
	return nil, nil
}

var testPagination = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())
	return mux
}

func TestHandlerRoutes(t *testing.T) {
	group := (&mockSystem{}).Handler().Routes()

	if group.Prefix != "/tenants" {
		t.Errorf("prefix = %q, want /tenants", group.Prefix)
	}
	if len(group.Routes) != 7 {
		t.Errorf("route count = %d, want 7", len(group.Routes))
	}
}

func TestHandlerSearchBody(t *testing.T) {
	var gotPage pagination.PageRequest
	var gotFilters tenants.Filters
	sys := &mockSystem{
		listFn: func(_ context.Context, page pagination.PageRequest, filters tenants.Filters) (*pagination.PageResult[tenants.Tenant], error) {
			gotPage, gotFilters = page, filters
			result := pagination.NewPageResult([]tenants.Tenant{}, 0, page.Page, page.PageSize)
			return &result, nil
		},
	}

	body := `{"page":2,"page_size":500,"employment_status":"Employed"}`
	rec := httptest.NewRecorder()
	setupMux(sys).ServeHTTP(rec, httptest.NewRequest("POST", "/tenants/search", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotPage.Page != 2 || gotPage.PageSize != testPagination.MaxPageSize {
		t.Errorf("page = %+v, want page 2 capped at %d", gotPage, testPagination.MaxPageSize)
	}
	if gotFilters.EmploymentStatus == nil || *gotFilters.EmploymentStatus != "Employed" {
		t.Errorf("employment status = %v, want Employed", gotFilters.EmploymentStatus)
	}
}

func TestHandlerLookupRequiresParameter(t *testing.T) {
	sys := &mockSystem{
		searchFn: func(context.Context, tenants.SearchCriteria) ([]tenants.Tenant, error) {
			return nil, tenants.ErrNoSearchFields
		},
	}

	rec := httptest.NewRecorder()
	setupMux(sys).ServeHTTP(rec, httptest.NewRequest("GET", "/tenants/search", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerUpdate(t *testing.T) {
	known := uuid.New()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"updated", "/tenants/" + known.String(), `{"name":"Ann","email":"ann@example.com","phone":"0779876543"}`, http.StatusOK},
		{"missing", "/tenants/" + uuid.NewString(), `{"name":"Ann","email":"ann@example.com","phone":"0779876543"}`, http.StatusNotFound},
		{"invalid id", "/tenants/nope", `{}`, http.StatusBadRequest},
		{"malformed body", "/tenants/" + known.String(), `[`, http.StatusBadRequest},
	}

	sys := &mockSystem{
		updateFn: func(_ context.Context, id uuid.UUID, cmd tenants.UpdateCommand) (*tenants.Tenant, error) {
			if id != known {
				return nil, faults.NotFound("tenant", id.String())
			}
			return &tenants.Tenant{ID: id, Name: cmd.Name}, nil
		},
	}
	mux := setupMux(sys)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("PUT", tt.path, strings.NewReader(tt.body)))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}
