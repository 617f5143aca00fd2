package vehicles

import (
	"maps"

	"github.com/JaimeStill/attest/pkg/openapi"
)

type spec struct {
	List               *openapi.Operation
	Stolen             *openapi.Operation
	Tampered           *openapi.Operation
	FindByChassis      *openapi.Operation
	FindByRegistration *openapi.Operation
	Find               *openapi.Operation
	Create             *openapi.Operation
	Update             *openapi.Operation
	Delete             *openapi.Operation
	Verify             *openapi.Operation
	VerifyWithAI       *openapi.Operation
	ReportStolen       *openapi.Operation
	ReportTampered     *openapi.Operation
	TransferOwnership  *openapi.Operation
}

// Spec documents the vehicle endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List vehicles",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches chassis, registration, make, model, or owner", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("make", "string", "Make contains", false),
			openapi.QueryParam("model", "string", "Model contains", false),
			openapi.QueryParam("year", "integer", "Exact model year", false),
			openapi.QueryParam("owner_name", "string", "Current owner name contains", false),
			openapi.QueryParam("owner_id", "string", "Exact current owner ID", false),
			openapi.QueryParam("verification_status", "string", "Exact verification status", false),
			openapi.QueryParam("stolen", "boolean", "Stolen flag", false),
			openapi.QueryParam("tampered", "boolean", "Tampered flag", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Vehicle page", "VehiclePage"),
		},
	},
	Stolen: &openapi.Operation{
		Summary: "List stolen vehicles",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Stolen vehicles", "Vehicle"),
		},
	},
	Tampered: &openapi.Operation{
		Summary: "List tampered vehicles",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Tampered vehicles", "Vehicle"),
		},
	},
	FindByChassis: &openapi.Operation{
		Summary:    "Get vehicle by chassis number",
		Parameters: []*openapi.Parameter{openapi.PathString("chassis", "Chassis number")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Vehicle", "Vehicle"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	FindByRegistration: &openapi.Operation{
		Summary:    "Get vehicle by registration number",
		Parameters: []*openapi.Parameter{openapi.PathString("registration", "Registration number")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Vehicle", "Vehicle"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get vehicle",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Vehicle ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Vehicle", "Vehicle"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Register vehicle",
		RequestBody: openapi.RequestBodyJSON("CreateVehicle", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created vehicle", "Vehicle"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update vehicle",
		Description: "Overwrites only the fields present in the body.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Vehicle ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateVehicle", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated vehicle", "Vehicle"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete vehicle",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Vehicle ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Vehicle deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Verify: &openapi.Operation{
		Summary:     "Verify vehicle",
		Description: "Looks up by chassis number, falling back to registration number.",
		RequestBody: openapi.RequestBodyJSON("VehicleVerifyRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Verification result", "VehicleVerifyResponse"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	VerifyWithAI: &openapi.Operation{
		Summary:     "Verify vehicle with AI analysis",
		RequestBody: openapi.RequestBodyJSON("VehicleVerifyRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Verification result with confidence", "VehicleVerifyResponse"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	ReportStolen: &openapi.Operation{
		Summary: "Report vehicle as stolen",
		Parameters: []*openapi.Parameter{
			openapi.PathString("chassis", "Chassis number"),
			openapi.QueryParam("report_details", "string", "Details of the report", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Reported vehicle", "Vehicle"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ReportTampered: &openapi.Operation{
		Summary: "Report vehicle as tampered",
		Parameters: []*openapi.Parameter{
			openapi.PathString("chassis", "Chassis number"),
			openapi.QueryParam("report_details", "string", "Details of the report", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Reported vehicle", "Vehicle"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	TransferOwnership: &openapi.Operation{
		Summary: "Transfer vehicle ownership",
		Parameters: []*openapi.Parameter{
			openapi.PathString("chassis", "Chassis number"),
			openapi.QueryParam("new_owner_name", "string", "Name of the new owner", true),
			openapi.QueryParam("new_owner_id", "string", "ID of the new owner", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated vehicle", "Vehicle"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

var vehicleFields = map[string]*openapi.Schema{
	"chassis_number":      {Type: "string"},
	"registration_number": {Type: "string"},
	"make":                {Type: "string"},
	"model":               {Type: "string"},
	"year":                {Type: "integer"},
	"color":               {Type: "string"},
	"engine_number":       {Type: "string"},
	"current_owner_name":  {Type: "string"},
	"current_owner_id":    {Type: "string"},
	"purchase_date":       {Type: "string", Format: "date"},
	"is_stolen":           {Type: "boolean"},
	"has_been_tampered":   {Type: "boolean"},
	"verification_status": {Type: "string"},
	"verification_notes":  {Type: "string"},
}

// Schemas holds the vehicle component schemas.
var Schemas = map[string]*openapi.Schema{
	"Vehicle": {
		Type: "object",
		Properties: withFields(map[string]*openapi.Schema{
			"id":         {Type: "string", Format: "uuid"},
			"created_at": {Type: "string", Format: "date-time"},
			"updated_at": {Type: "string", Format: "date-time"},
		}),
	},
	"VehiclePage": openapi.PageOf("Vehicle"),
	"CreateVehicle": {
		Type:       "object",
		Required:   []string{"chassis_number"},
		Properties: withFields(nil),
	},
	"UpdateVehicle": {
		Type:       "object",
		Properties: withFields(nil),
	},
	"VehicleVerifyRequest": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"chassis_number":      {Type: "string"},
			"registration_number": {Type: "string"},
		},
	},
	"VehicleVerifyResponse": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"chassis_number":      {Type: "string"},
			"registration_number": {Type: "string"},
			"exists":              {Type: "boolean"},
			"make":                {Type: "string"},
			"model":               {Type: "string"},
			"year":                {Type: "integer"},
			"current_owner_name":  {Type: "string"},
			"purchase_date":       {Type: "string", Format: "date"},
			"is_stolen":           {Type: "boolean"},
			"has_been_tampered":   {Type: "boolean"},
			"verification_status": {Type: "string"},
			"message":             {Type: "string"},
			"confidence_score":    {Type: "number"},
			"ownership_history":   openapi.ArrayOf("Ownership"),
		},
	},
	"Ownership": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"owner_name": {Type: "string"},
			"owner_id":   {Type: "string"},
			"start_date": {Type: "string", Format: "date"},
			"end_date":   {Type: "string", Format: "date"},
		},
	},
}

func withFields(extra map[string]*openapi.Schema) map[string]*openapi.Schema {
	props := make(map[string]*openapi.Schema, len(vehicleFields)+len(extra))
	maps.Copy(props, vehicleFields)
	maps.Copy(props, extra)
	return props
}
