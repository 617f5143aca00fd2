package lands

import (
	"maps"

	"github.com/JaimeStill/attest/pkg/openapi"
)

type spec struct {
	List              *openapi.Operation
	FindByStandNumber *openapi.Operation
	Find              *openapi.Operation
	Create            *openapi.Operation
	Update            *openapi.Operation
	Delete            *openapi.Operation
	Verify            *openapi.Operation
	VerifyWithAI      *openapi.Operation
}

// Spec documents the land endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List lands",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches stand number, location, title, or owner", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("location", "string", "Location contains", false),
			openapi.QueryParam("owner_name", "string", "Owner name contains", false),
			openapi.QueryParam("owner_id_number", "string", "Exact owner ID number", false),
			openapi.QueryParam("allocated", "boolean", "Allocation flag", false),
			openapi.QueryParam("property_type", "string", "Property type, case-insensitive", false),
			openapi.QueryParam("verification_status", "string", "Exact verification status", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Land page", "LandPage"),
		},
	},
	FindByStandNumber: &openapi.Operation{
		Summary:    "Get land by stand number",
		Parameters: []*openapi.Parameter{openapi.PathString("stand", "Stand number")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Land", "Land"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get land",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Land ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Land", "Land"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Register land",
		RequestBody: openapi.RequestBodyJSON("CreateLand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created land", "Land"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update land",
		Description: "Overwrites only the fields present in the body.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Land ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateLand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated land", "Land"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete land",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Land ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Land deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Verify: &openapi.Operation{
		Summary:     "Verify stand",
		Description: "Matches stand and location exactly, then accepts the stand when the locations overlap.",
		RequestBody: openapi.RequestBodyJSON("LandVerifyRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Verification result", "LandVerifyResponse"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	VerifyWithAI: &openapi.Operation{
		Summary:     "Verify stand with AI analysis",
		RequestBody: openapi.RequestBodyJSON("LandVerifyRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Verification result with confidence", "LandVerifyResponse"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

var landFields = map[string]*openapi.Schema{
	"stand_number":                {Type: "string"},
	"location":                    {Type: "string"},
	"title":                       {Type: "string"},
	"owner_name":                  {Type: "string"},
	"owner_id_number":             {Type: "string"},
	"is_allocated":                {Type: "boolean"},
	"allocation_date":             {Type: "string", Format: "date"},
	"property_size_square_meters": {Type: "number"},
	"property_type":               {Type: "string"},
	"verification_status":         {Type: "string"},
}

// Schemas holds the land component schemas.
var Schemas = map[string]*openapi.Schema{
	"Land": {
		Type: "object",
		Properties: withFields(map[string]*openapi.Schema{
			"id":         {Type: "string", Format: "uuid"},
			"created_at": {Type: "string", Format: "date-time"},
			"updated_at": {Type: "string", Format: "date-time"},
		}),
	},
	"LandPage": openapi.PageOf("Land"),
	"CreateLand": {
		Type:       "object",
		Required:   []string{"stand_number", "location", "title"},
		Properties: withFields(nil),
	},
	"UpdateLand": {
		Type:       "object",
		Properties: withFields(nil),
	},
	"LandVerifyRequest": {
		Type:     "object",
		Required: []string{"stand_number"},
		Properties: map[string]*openapi.Schema{
			"stand_number": {Type: "string"},
			"location":     {Type: "string"},
		},
	},
	"LandVerifyResponse": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"stand_number":        {Type: "string"},
			"location":            {Type: "string"},
			"exists":              {Type: "boolean"},
			"is_allocated":        {Type: "boolean"},
			"owner_name":          {Type: "string"},
			"verification_status": {Type: "string"},
			"message":             {Type: "string"},
			"confidence_score":    {Type: "number"},
		},
	},
}

func withFields(extra map[string]*openapi.Schema) map[string]*openapi.Schema {
	props := make(map[string]*openapi.Schema, len(landFields)+len(extra))
	maps.Copy(props, landFields)
	maps.Copy(props, extra)
	return props
}
