package books

import "github.com/JaimeStill/attest/pkg/openapi"

type spec struct {
	List       *openapi.Operation
	FindByISBN *openapi.Operation
	Find       *openapi.Operation
	Create     *openapi.Operation
	Update     *openapi.Operation
	Delete     *openapi.Operation
}

// Spec documents the book endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List books",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches title, author, or ISBN", false),
			openapi.QueryParam("sort", "string", "Sort fields", false),
			openapi.QueryParam("title", "string", "Title contains", false),
			openapi.QueryParam("author", "string", "Author contains", false),
			openapi.QueryParam("published_year", "integer", "Exact publication year", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Book page", "BookPage"),
		},
	},
	FindByISBN: &openapi.Operation{
		Summary:    "Get book by ISBN",
		Parameters: []*openapi.Parameter{openapi.PathString("isbn", "ISBN")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Book", "Book"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get book",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Book ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Book", "Book"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Catalogue book",
		RequestBody: openapi.RequestBodyJSON("CreateBook", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created book", "Book"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update book",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Book ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateBook", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated book", "Book"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete book",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Book ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Book deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas holds the book component schemas.
var Schemas = map[string]*openapi.Schema{
	"Book": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":             {Type: "string", Format: "uuid"},
			"title":          {Type: "string"},
			"author":         {Type: "string"},
			"isbn":           {Type: "string"},
			"description":    {Type: "string"},
			"published_year": {Type: "integer"},
			"created_at":     {Type: "string", Format: "date-time"},
			"updated_at":     {Type: "string", Format: "date-time"},
		},
	},
	"BookPage": openapi.PageOf("Book"),
	"CreateBook": {
		Type:     "object",
		Required: []string{"title", "author", "isbn"},
		Properties: map[string]*openapi.Schema{
			"title":          {Type: "string"},
			"author":         {Type: "string"},
			"isbn":           {Type: "string"},
			"description":    {Type: "string"},
			"published_year": {Type: "integer"},
		},
	},
	"UpdateBook": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"title":          {Type: "string"},
			"author":         {Type: "string"},
			"isbn":           {Type: "string"},
			"description":    {Type: "string"},
			"published_year": {Type: "integer"},
		},
	},
}
