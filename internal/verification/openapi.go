package verification

import "github.com/JaimeStill/attest/pkg/openapi"

type spec struct {
	VerifyLandlord *openapi.Operation
	VerifyTenant   *openapi.Operation
}

var Spec = spec{
	VerifyLandlord: &openapi.Operation{
		Summary:     "Verify landlord",
		Description: "Resolves the identifier, computes and stores the trust assessment, and returns the report. identifier_type is one of NAME, ID_NUMBER, PHONE, ADDRESS, PROPERTY_ADDRESS and defaults to ID_NUMBER.",
		RequestBody: openapi.RequestBodyJSON("LandlordVerificationRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Landlord report", "LandlordVerification"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseJSON("Landlord not found", "LandlordVerification"),
		},
	},
	VerifyTenant: &openapi.Operation{
		Summary:     "Verify tenant",
		Description: "Resolves the identifier, computes and stores the trust assessment, and returns the report. identifier_type is one of NAME, ID_NUMBER, PHONE, ADDRESS and defaults to ID_NUMBER.",
		RequestBody: openapi.RequestBodyJSON("TenantVerificationRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Tenant report", "TenantVerification"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseJSON("Tenant not found", "TenantVerification"),
		},
	},
}

func str() *openapi.Schema { return &openapi.Schema{Type: "string"} }
func integer() *openapi.Schema { return &openapi.Schema{Type: "integer"} }
func number() *openapi.Schema { return &openapi.Schema{Type: "number"} }
func boolean() *openapi.Schema { return &openapi.Schema{Type: "boolean"} }
func date() *openapi.Schema { return &openapi.Schema{Type: "string", Format: "date"} }
func stringList() *openapi.Schema { return &openapi.Schema{Type: "array", Items: str()} }

var Schemas = map[string]*openapi.Schema{
	"LandlordVerificationRequest": {
		Type:     "object",
		Required: []string{"identifier"},
		Properties: map[string]*openapi.Schema{
			"identifier":         str(),
			"identifier_type":    {Type: "string", Enum: []any{"NAME", "ID_NUMBER", "PHONE", "ADDRESS", "PROPERTY_ADDRESS"}},
			"include_properties": {Type: "boolean", Default: true},
			"include_ratings":    {Type: "boolean", Default: true},
		},
	},
	"TenantVerificationRequest": {
		Type:     "object",
		Required: []string{"identifier"},
		Properties: map[string]*openapi.Schema{
			"identifier":             str(),
			"identifier_type":        {Type: "string", Enum: []any{"NAME", "ID_NUMBER", "PHONE", "ADDRESS"}},
			"include_rental_history": {Type: "boolean", Default: true},
			"include_ratings":        {Type: "boolean", Default: true},
		},
	},
	"LandlordVerification": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":                   {Type: "string", Format: "uuid"},
			"name":                 str(),
			"id_number":            str(),
			"phone":                str(),
			"address":              str(),
			"exists":               boolean(),
			"verification_status":  str(),
			"average_rating":       number(),
			"trust_score":          integer(),
			"classification":       {Type: "string", Enum: []any{"Safe", "Caution", "Avoid"}},
			"responsiveness_score": integer(),
			"fairness_score":       integer(),
			"deposit_return_rate":  number(),
			"behavioral_summary":   str(),
			"red_flags":            stringList(),
			"managed_properties":   stringList(),
			"properties":           openapi.ArrayOf("PropertySummary"),
			"ratings":              openapi.ArrayOf("LandlordReportRating"),
			"message":              str(),
		},
	},
	"PropertySummary": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"property_address": str(),
			"managed_since":    date(),
			"total_tenants":    integer(),
			"total_disputes":   integer(),
			"total_evictions":  integer(),
			"average_rating":   number(),
			"tenant_names":     stringList(),
		},
	},
	"LandlordReportRating": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"tenant_name":         str(),
			"rating_value":        number(),
			"review":              str(),
			"property_address":    str(),
			"rating_date":         date(),
			"responsiveness":      integer(),
			"maintenance_quality": integer(),
			"fairness":            integer(),
			"deposit_handling":    integer(),
			"privacy_respect":     integer(),
			"detected_traits":     stringList(),
		},
	},
	"TenantVerification": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":                  {Type: "string", Format: "uuid"},
			"name":                str(),
			"id_number":           str(),
			"phone":               str(),
			"current_address":     str(),
			"exists":              boolean(),
			"verification_status": str(),
			"average_rating":      number(),
			"trust_score":         integer(),
			"classification":      {Type: "string", Enum: []any{"Safe", "Caution", "Avoid"}},
			"behavioral_summary":  str(),
			"red_flags":           stringList(),
			"rental_history":      openapi.ArrayOf("TenantReportHistory"),
			"ratings":             openapi.ArrayOf("TenantReportRating"),
			"message":             str(),
		},
	},
	"TenantReportHistory": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"property_address":    str(),
			"lease_start_date":    date(),
			"lease_end_date":      date(),
			"rent_amount":         {Type: "string", Format: "decimal"},
			"on_time_payments":    boolean(),
			"late_payments_count": integer(),
			"property_damage":     boolean(),
			"damage_description":  str(),
			"had_disputes":        boolean(),
			"dispute_description": str(),
			"eviction_filed":      boolean(),
			"eviction_reason":     str(),
			"landlord_name":       str(),
		},
	},
	"TenantReportRating": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"landlord_name":      str(),
			"rating_value":       number(),
			"review":             str(),
			"property_address":   str(),
			"rating_date":        date(),
			"payment_timeliness": integer(),
			"property_care":      integer(),
			"communication":      integer(),
			"rule_adherence":     integer(),
			"cleanliness":        integer(),
			"detected_traits":    stringList(),
		},
	},
}
