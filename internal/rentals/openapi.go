package rentals

import "github.com/JaimeStill/attest/pkg/openapi"

type spec struct {
	List       *openapi.Operation
	Find       *openapi.Operation
	ByLandlord *openapi.Operation
	ByTenant   *openapi.Operation
	Create     *openapi.Operation
	Delete     *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary: "List rental histories",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches property address or party names", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("tenant_id", "string", "Tenant ID", false),
			openapi.QueryParam("landlord_id", "string", "Landlord ID", false),
			openapi.QueryParam("property_address", "string", "Property address contains", false),
			openapi.QueryParam("had_disputes", "boolean", "Only histories with or without disputes", false),
			openapi.QueryParam("eviction_filed", "boolean", "Only histories with or without evictions", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Rental history page", "RentalHistoryPage"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get rental history",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Rental history ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Rental history", "RentalHistory"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ByLandlord: &openapi.Operation{
		Summary:    "List a landlord's rental histories",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Landlord ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Rental histories", "RentalHistory"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	ByTenant: &openapi.Operation{
		Summary:    "List a tenant's rental histories",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Tenant ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Rental histories", "RentalHistory"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Record rental history",
		RequestBody: openapi.RequestBodyJSON("CreateRentalHistory", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created rental history", "RentalHistory"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete rental history",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Rental history ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Rental history deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func recordFields() map[string]*openapi.Schema {
	rating := func() *openapi.Schema { return &openapi.Schema{Type: "integer", Description: "1 to 5"} }
	return map[string]*openapi.Schema{
		"tenant_id":                      {Type: "string", Format: "uuid"},
		"landlord_id":                    {Type: "string", Format: "uuid"},
		"property_address":               {Type: "string"},
		"lease_start_date":               {Type: "string", Format: "date"},
		"lease_end_date":                 {Type: "string", Format: "date"},
		"rent_amount":                    {Type: "string", Format: "decimal"},
		"deposit_amount":                 {Type: "string", Format: "decimal"},
		"security_deposit_returned":      {Type: "boolean"},
		"deposit_deduction_reason":       {Type: "string"},
		"on_time_payments":               {Type: "boolean"},
		"late_payments_count":            {Type: "integer"},
		"property_damage":                {Type: "boolean"},
		"damage_description":             {Type: "string"},
		"had_disputes":                   {Type: "boolean"},
		"dispute_description":            {Type: "string"},
		"eviction_filed":                 {Type: "boolean"},
		"eviction_reason":                {Type: "string"},
		"landlord_responsiveness_rating": rating(),
		"landlord_fairness_rating":       rating(),
		"tenant_cleanliness_rating":      rating(),
		"tenant_cooperation_rating":      rating(),
	}
}

var Schemas = map[string]*openapi.Schema{
	"RentalHistory": func() *openapi.Schema {
		props := recordFields()
		props["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
		props["tenant_name"] = &openapi.Schema{Type: "string"}
		props["landlord_name"] = &openapi.Schema{Type: "string"}
		props["created_at"] = &openapi.Schema{Type: "string", Format: "date-time"}
		props["updated_at"] = &openapi.Schema{Type: "string", Format: "date-time"}
		return &openapi.Schema{Type: "object", Properties: props}
	}(),
	"RentalHistoryPage": openapi.PageOf("RentalHistory"),
	"CreateRentalHistory": {
		Type:       "object",
		Required:   []string{"tenant_id", "landlord_id", "property_address", "lease_start_date", "rent_amount"},
		Properties: recordFields(),
	},
}
