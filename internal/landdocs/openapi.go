package landdocs

import "github.com/JaimeStill/attest/pkg/openapi"

type spec struct {
	Verify   *openapi.Operation
	List     *openapi.Operation
	Find     *openapi.Operation
	Download *openapi.Operation
	Delete   *openapi.Operation
}

// Spec documents the land document endpoints.
var Spec = spec{
	Verify: &openapi.Operation{
		Summary:     "Verify land document",
		Description: "Stores the scan, extracts stand and owner details, and checks them against the land registry.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {Schema: openapi.SchemaRef("LandDocumentUpload")},
			},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Verification record", "LandDocument"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "File exceeds maximum upload size"},
		},
	},
	List: &openapi.Operation{
		Summary: "List land document verifications",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches filename, stand number, or owner", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("verification_status", "string", "VERIFIED, MISMATCH, NOT_FOUND, or INSUFFICIENT_DATA", false),
			openapi.QueryParam("matched", "boolean", "Match flag", false),
			openapi.QueryParam("filename", "string", "Filename contains", false),
			openapi.QueryParam("stand_number", "string", "Extracted stand number contains", false),
			openapi.QueryParam("content_type", "string", "Exact content type", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Land document page", "LandDocumentPage"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get land document verification",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Record ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Verification record", "LandDocument"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Download: &openapi.Operation{
		Summary:    "Download land document scan",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Record ID")},
		Responses: map[int]*openapi.Response{
			200: {Description: "Stored scan"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete land document verification",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Record ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Record and scan deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas holds the land document component schemas.
var Schemas = map[string]*openapi.Schema{
	"LandDocument": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":                     {Type: "string", Format: "uuid"},
			"filename":               {Type: "string"},
			"content_type":           {Type: "string"},
			"size_bytes":             {Type: "integer"},
			"page_count":             {Type: "integer"},
			"storage_key":            {Type: "string"},
			"extracted_stand_number": {Type: "string"},
			"extracted_owner_name":   {Type: "string"},
			"extracted_id_number":    {Type: "string"},
			"land_id":                {Type: "string", Format: "uuid"},
			"record_stand_number":    {Type: "string"},
			"record_owner_name":      {Type: "string"},
			"record_id_number":       {Type: "string"},
			"matched":                {Type: "boolean"},
			"verification_status":    {Type: "string", Enum: []any{"VERIFIED", "MISMATCH", "NOT_FOUND", "INSUFFICIENT_DATA"}},
			"message":                {Type: "string"},
			"confidence_scores":      {Type: "object", AdditionalProperties: &openapi.Schema{Type: "integer"}},
			"created_at":             {Type: "string", Format: "date-time"},
		},
	},
	"LandDocumentPage": openapi.PageOf("LandDocument"),
	"LandDocumentUpload": {
		Type:     "object",
		Required: []string{"file"},
		Properties: map[string]*openapi.Schema{
			"file":            {Type: "string", Format: "binary"},
			"stand_number":    {Type: "string"},
			"owner_name":      {Type: "string"},
			"owner_id_number": {Type: "string"},
		},
	},
}
