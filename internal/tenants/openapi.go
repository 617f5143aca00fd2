package tenants

import (
	"maps"

	"github.com/JaimeStill/attest/pkg/openapi"
)

type spec struct {
	List   *openapi.Operation
	Lookup *openapi.Operation
	Search *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec documents the tenant endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List tenants",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches name, email, phone, address, or employer", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("verification_status", "string", "Exact verification status", false),
			openapi.QueryParam("classification", "string", "Safe, Caution, or Avoid", false),
			openapi.QueryParam("employment_status", "string", "Employment status, case-insensitive", false),
			openapi.QueryParam("name", "string", "Name contains", false),
			openapi.QueryParam("min_trust_score", "integer", "Minimum trust score", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Tenant page", "TenantPage"),
		},
	},
	Lookup: &openapi.Operation{
		Summary:     "Look up tenants",
		Description: "Uses the first supplied parameter in the order id_number, email, phone, name, address.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("id_number", "string", "Exact ID number", false),
			openapi.QueryParam("email", "string", "Exact email", false),
			openapi.QueryParam("phone", "string", "Exact phone", false),
			openapi.QueryParam("name", "string", "Name contains", false),
			openapi.QueryParam("address", "string", "Current address contains", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Matching tenants", "Tenant"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search tenants",
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Tenant page", "TenantPage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get tenant",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Tenant ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Tenant", "Tenant"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Register tenant",
		RequestBody: openapi.RequestBodyJSON("CreateTenant", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created tenant", "Tenant"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update tenant",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Tenant ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateTenant", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated tenant", "Tenant"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete tenant",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Tenant ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Tenant deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

var tenantFields = map[string]*openapi.Schema{
	"name":              {Type: "string"},
	"email":             {Type: "string", Format: "email"},
	"phone":             {Type: "string", Pattern: `^[0-9+\-\s()]*$`},
	"current_address":   {Type: "string"},
	"employment_status": {Type: "string"},
	"employer":          {Type: "string"},
	"monthly_income":    {Type: "string", Format: "decimal"},
}

func withFields(extra map[string]*openapi.Schema) map[string]*openapi.Schema {
	out := make(map[string]*openapi.Schema, len(tenantFields)+len(extra))
	maps.Copy(out, tenantFields)
	maps.Copy(out, extra)
	return out
}

// Schemas holds the tenant component schemas.
var Schemas = map[string]*openapi.Schema{
	"Tenant": {
		Type: "object",
		Properties: withFields(map[string]*openapi.Schema{
			"id":                  {Type: "string", Format: "uuid"},
			"id_number":           {Type: "string"},
			"verification_status": {Type: "string"},
			"average_rating":      {Type: "number"},
			"total_ratings":       {Type: "integer"},
			"trust_score":         {Type: "integer"},
			"classification":      {Type: "string", Enum: []any{"Safe", "Caution", "Avoid"}},
			"behavioral_summary":  {Type: "string"},
			"red_flags":           {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"created_at":          {Type: "string", Format: "date-time"},
			"updated_at":          {Type: "string", Format: "date-time"},
		}),
	},
	"TenantPage": openapi.PageOf("Tenant"),
	"CreateTenant": {
		Type:       "object",
		Required:   []string{"name", "id_number", "email", "phone"},
		Properties: withFields(map[string]*openapi.Schema{"id_number": {Type: "string"}}),
	},
	"UpdateTenant": {
		Type:       "object",
		Required:   []string{"name", "email", "phone"},
		Properties: withFields(nil),
	},
}
