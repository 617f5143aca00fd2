package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/attest/pkg/openapi"
	"github.com/JaimeStill/attest/pkg/routes"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/vehicles",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: ok},
			{Method: "GET", Pattern: "/chassis/{chassis}", Handler: ok},
		},
		Children: []routes.Group{
			{
				Prefix: "/report",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "/stolen/{chassis}", Handler: ok},
				},
			},
		},
	})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"list", "GET", "/vehicles", http.StatusOK},
		{"by chassis", "GET", "/vehicles/chassis/ABC123", http.StatusOK},
		{"nested group", "POST", "/vehicles/report/stolen/ABC123", http.StatusOK},
		{"wrong method", "DELETE", "/vehicles", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	spec := openapi.NewSpec("Attest API", "0.1.0")
	listOp := &openapi.Operation{Summary: "List lands"}
	docOp := &openapi.Operation{Summary: "Verify land document"}

	routes.Describe(spec,
		routes.Group{
			Prefix:      "/lands",
			Tags:        []string{"Lands"},
			Description: "Land registry",
			Schemas:     map[string]*openapi.Schema{"Land": {Type: "object"}},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: ok, OpenAPI: listOp},
				{Method: "GET", Pattern: "/internal", Handler: ok},
			},
		},
		routes.Group{
			Tags: []string{"Land Documents"},
			Routes: []routes.Route{
				{Method: "POST", Pattern: "/lands/verify/document", Handler: ok, OpenAPI: docOp},
			},
		},
	)

	if item := spec.Paths["/lands"]; item == nil || item.Get != listOp {
		t.Fatalf("GET /lands not described: %+v", spec.Paths["/lands"])
	}
	if _, ok := spec.Paths["/lands/internal"]; ok {
		t.Error("routes without an operation should be left out")
	}
	if item := spec.Paths["/lands/verify/document"]; item == nil || item.Post != docOp {
		t.Error("empty-prefix group route not described")
	}
	if len(listOp.Tags) != 1 || listOp.Tags[0] != "Lands" {
		t.Errorf("operation tags = %v, want [Lands]", listOp.Tags)
	}
	if _, ok := spec.Components.Schemas["Land"]; !ok {
		t.Error("group schemas should be added to components")
	}
	if len(spec.Tags) != 1 || spec.Tags[0].Name != "Lands" {
		t.Errorf("tags = %+v, want only the described Lands tag", spec.Tags)
	}
}

func TestDescribeWildcardPath(t *testing.T) {
	spec := openapi.NewSpec("Attest API", "0.1.0")
	op := &openapi.Operation{Summary: "Download"}

	routes.Describe(spec, routes.Group{
		Prefix: "/blobs",
		Routes: []routes.Route{{Method: "GET", Pattern: "/{key...}", Handler: ok, OpenAPI: op}},
	})

	if _, ok := spec.Paths["/blobs/{key}"]; !ok {
		t.Errorf("wildcard not converted, paths = %v", spec.Paths)
	}
}
