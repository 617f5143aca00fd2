package ratings

import (
	"maps"

	"github.com/JaimeStill/attest/pkg/openapi"
)

type spec struct {
	List             *openapi.Operation
	Find             *openapi.Operation
	ByLandlord       *openapi.Operation
	ToTenants        *openapi.Operation
	FromTenants      *openapi.Operation
	ByTenant         *openapi.Operation
	ByProperty       *openapi.Operation
	Create           *openapi.Operation
	Update           *openapi.Operation
	Delete           *openapi.Operation
	AnalyzeSentiment *openapi.Operation
}

func ratingList(summary, param string) *openapi.Operation {
	return &openapi.Operation{
		Summary:    summary,
		Parameters: []*openapi.Parameter{openapi.PathParam("id", param)},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Ratings", "Rating"),
			400: openapi.ResponseRef("BadRequest"),
		},
	}
}

var Spec = spec{
	List: &openapi.Operation{
		Summary: "List ratings",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches review, property, or party names", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("landlord_id", "string", "Landlord ID", false),
			openapi.QueryParam("tenant_id", "string", "Tenant ID", false),
			openapi.QueryParam("rating_type", "string", "LANDLORD_TO_TENANT or TENANT_TO_LANDLORD", false),
			openapi.QueryParam("property_address", "string", "Property address contains", false),
			openapi.QueryParam("min_value", "number", "Minimum rating value", false),
			openapi.QueryParam("max_value", "number", "Maximum rating value", false),
			openapi.QueryParam("min_sentiment", "number", "Minimum sentiment score", false),
			openapi.QueryParam("max_sentiment", "number", "Maximum sentiment score", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Rating page", "RatingPage"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get rating",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Rating ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Rating", "Rating"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ByLandlord:  ratingList("List all ratings involving a landlord", "Landlord ID"),
	ToTenants:   ratingList("List ratings a landlord gave tenants", "Landlord ID"),
	FromTenants: ratingList("List ratings tenants gave a landlord", "Landlord ID"),
	ByTenant:    ratingList("List all ratings involving a tenant", "Tenant ID"),
	ByProperty: &openapi.Operation{
		Summary: "List ratings for a property",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("address", "string", "Property address contains", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Ratings", "Rating"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Submit rating",
		Description: "Updates the rated party's average rating. Metrics belonging to the other direction are discarded.",
		RequestBody: openapi.RequestBodyJSON("CreateRating", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created rating", "Rating"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update rating",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Rating ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateRating", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated rating", "Rating"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete rating",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Rating ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Rating deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AnalyzeSentiment: &openapi.Operation{
		Summary:     "Analyze review text",
		RequestBody: openapi.RequestBodyJSON("SentimentRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sentiment and traits", "SentimentAnalysis"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

func metric() *openapi.Schema {
	return &openapi.Schema{Type: "integer", Description: "1 to 5"}
}

func ratingFields() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"rating_value":        {Type: "number", Description: "1 to 5"},
		"review":              {Type: "string"},
		"property_address":    {Type: "string"},
		"lease_start_date":    {Type: "string", Format: "date"},
		"lease_end_date":      {Type: "string", Format: "date"},
		"payment_timeliness":  metric(),
		"property_care":       metric(),
		"communication":       metric(),
		"rule_adherence":      metric(),
		"cleanliness":         metric(),
		"responsiveness":      metric(),
		"maintenance_quality": metric(),
		"fairness":            metric(),
		"deposit_handling":    metric(),
		"privacy_respect":     metric(),
	}
}

func with(base map[string]*openapi.Schema, extra map[string]*openapi.Schema) map[string]*openapi.Schema {
	maps.Copy(base, extra)
	return base
}

var ratingType = &openapi.Schema{Type: "string", Enum: []any{string(LandlordToTenant), string(TenantToLandlord)}}

var Schemas = map[string]*openapi.Schema{
	"Rating": {
		Type: "object",
		Properties: with(ratingFields(), map[string]*openapi.Schema{
			"id":              {Type: "string", Format: "uuid"},
			"landlord_id":     {Type: "string", Format: "uuid"},
			"landlord_name":   {Type: "string"},
			"tenant_id":       {Type: "string", Format: "uuid"},
			"tenant_name":     {Type: "string"},
			"rating_type":     ratingType,
			"sentiment_score": {Type: "number", Description: "-1 to 1"},
			"detected_traits": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"created_at":      {Type: "string", Format: "date-time"},
			"updated_at":      {Type: "string", Format: "date-time"},
		}),
	},
	"RatingPage": openapi.PageOf("Rating"),
	"CreateRating": {
		Type:     "object",
		Required: []string{"landlord_id", "tenant_id", "rating_type", "rating_value"},
		Properties: with(ratingFields(), map[string]*openapi.Schema{
			"landlord_id": {Type: "string", Format: "uuid"},
			"tenant_id":   {Type: "string", Format: "uuid"},
			"rating_type": ratingType,
		}),
	},
	"UpdateRating": {
		Type:       "object",
		Required:   []string{"rating_value"},
		Properties: ratingFields(),
	},
	"SentimentRequest": {
		Type:       "object",
		Required:   []string{"text"},
		Properties: map[string]*openapi.Schema{"text": {Type: "string"}},
	},
	"SentimentAnalysis": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"sentiment_score": {Type: "number"},
			"detected_traits": {Type: "array", Items: &openapi.Schema{Type: "string"}},
		},
	},
}
