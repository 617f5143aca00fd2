package landlords

import "github.com/JaimeStill/attest/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Lookup *openapi.Operation
	Search *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec documents the landlord endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List landlords",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches name, email, phone, or address", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("verification_status", "string", "Exact verification status", false),
			openapi.QueryParam("classification", "string", "Safe, Caution, or Avoid", false),
			openapi.QueryParam("name", "string", "Name contains", false),
			openapi.QueryParam("min_trust_score", "integer", "Minimum trust score", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Landlord page", "LandlordPage"),
		},
	},
	Lookup: &openapi.Operation{
		Summary:     "Look up landlords",
		Description: "Uses the first supplied parameter in the order id_number, email, phone, name, address.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("id_number", "string", "Exact ID number", false),
			openapi.QueryParam("email", "string", "Exact email", false),
			openapi.QueryParam("phone", "string", "Exact phone", false),
			openapi.QueryParam("name", "string", "Name contains", false),
			openapi.QueryParam("address", "string", "Address contains", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Matching landlords", "Landlord"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search landlords",
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Landlord page", "LandlordPage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get landlord",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Landlord ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Landlord", "Landlord"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Register landlord",
		RequestBody: openapi.RequestBodyJSON("CreateLandlord", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created landlord", "Landlord"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update landlord",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Landlord ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateLandlord", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated landlord", "Landlord"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete landlord",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Landlord ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Landlord deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas holds the landlord component schemas.
var Schemas = map[string]*openapi.Schema{
	"Landlord": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":                   {Type: "string", Format: "uuid"},
			"name":                 {Type: "string"},
			"id_number":            {Type: "string"},
			"email":                {Type: "string", Format: "email"},
			"phone":                {Type: "string"},
			"address":              {Type: "string"},
			"verification_status":  {Type: "string"},
			"average_rating":       {Type: "number"},
			"total_ratings":        {Type: "integer"},
			"trust_score":          {Type: "integer"},
			"classification":       {Type: "string", Enum: []any{"Safe", "Caution", "Avoid"}},
			"responsiveness_score": {Type: "integer"},
			"fairness_score":       {Type: "integer"},
			"deposit_return_rate":  {Type: "number"},
			"behavioral_summary":   {Type: "string"},
			"red_flags":            {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"managed_properties":   {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"created_at":           {Type: "string", Format: "date-time"},
			"updated_at":           {Type: "string", Format: "date-time"},
		},
	},
	"LandlordPage": openapi.PageOf("Landlord"),
	"CreateLandlord": {
		Type:     "object",
		Required: []string{"name", "id_number", "email", "phone"},
		Properties: map[string]*openapi.Schema{
			"name":               {Type: "string"},
			"id_number":          {Type: "string"},
			"email":              {Type: "string", Format: "email"},
			"phone":              {Type: "string", Pattern: `^[0-9+\-\s()]*$`},
			"address":            {Type: "string"},
			"managed_properties": {Type: "array", Items: &openapi.Schema{Type: "string"}},
		},
	},
	"UpdateLandlord": {
		Type:     "object",
		Required: []string{"name", "email", "phone"},
		Properties: map[string]*openapi.Schema{
			"name":               {Type: "string"},
			"email":              {Type: "string", Format: "email"},
			"phone":              {Type: "string", Pattern: `^[0-9+\-\s()]*$`},
			"address":            {Type: "string"},
			"managed_properties": {Type: "array", Items: &openapi.Schema{Type: "string"}},
		},
	},
}
