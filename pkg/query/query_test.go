package query_test

import (
	"testing"

	"github.com/JaimeStill/attest/pkg/query"
)

const selectAll = "SELECT l.id, l.name, l.trust_score, l.managed_properties, l.created_at FROM public.landlords l"

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "landlords", "l").
		Project("id", "ID").
		Project("name", "Name").
		Project("trust_score", "TrustScore").
		Project("managed_properties", "ManagedProperties").
		Project("created_at", "CreatedAt")
}

func ptr(s string) *string { return &s }

func TestProjectionMap(t *testing.T) {
	p := testProjection()

	if got := p.Table(); got != "public.landlords l" {
		t.Errorf("Table() = %q", got)
	}
	if got := p.Alias(); got != "l" {
		t.Errorf("Alias() = %q", got)
	}

	tests := []struct {
		name   string
		lookup string
		want   string
		mapped bool
	}{
		{"view name", "TrustScore", "l.trust_score", true},
		{"column name", "created_at", "l.created_at", true},
		{"unmapped", "password", "password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.lookup); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.lookup, got, tt.want)
			}
			if _, ok := p.Lookup(tt.lookup); ok != tt.mapped {
				t.Errorf("Lookup(%q) mapped = %v, want %v", tt.lookup, ok, tt.mapped)
			}
		})
	}
}

func TestProjectionMapJoin(t *testing.T) {
	p := query.NewProjectionMap("public", "ratings", "r").
		Project("id", "ID").
		Project("rating_value", "RatingValue").
		Join("public", "landlords", "l", "JOIN", "l.id = r.landlord_id").
		Project("name", "LandlordName").
		Join("public", "tenants", "t", "LEFT JOIN", "t.id = r.tenant_id").
		Project("name", "TenantName")

	wantFrom := "public.ratings r JOIN public.landlords l ON l.id = r.landlord_id LEFT JOIN public.tenants t ON t.id = r.tenant_id"
	if got := p.From(); got != wantFrom {
		t.Errorf("From():\ngot  %q\nwant %q", got, wantFrom)
	}
	if got := p.Columns(); got != "r.id, r.rating_value, l.name, t.name" {
		t.Errorf("Columns() = %q", got)
	}
	if got := p.Column("TenantName"); got != "t.name" {
		t.Errorf("Column(TenantName) = %q, want t.name", got)
	}
	if got := p.Column("name"); got != "l.name" {
		t.Errorf("Column(name) = %q, want the first projection l.name", got)
	}

	sql, _ := query.NewBuilder(p).BuildSingle("ID", "abc")
	want := "SELECT r.id, r.rating_value, l.name, t.name FROM " + wantFrom + " WHERE r.id = $1"
	if sql != want {
		t.Errorf("BuildSingle:\ngot  %q\nwant %q", sql, want)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty string", "", nil},
		{"single ascending", "name", []query.SortField{{Field: "name"}}},
		{"single descending", "-created_at", []query.SortField{{Field: "created_at", Descending: true}}},
		{
			"mixed with spaces and blanks",
			" name ,, -trust_score ",
			[]query.SortField{{Field: "name"}, {Field: "trust_score", Descending: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ParseSortFields(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuilderStatements(t *testing.T) {
	newest := query.SortField{Field: "CreatedAt", Descending: true}

	tests := []struct {
		name     string
		build    func() (string, []any)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "build",
			build:   query.NewBuilder(testProjection()).Build,
			wantSQL: selectAll,
		},
		{
			name:    "count",
			build:   query.NewBuilder(testProjection(), newest).BuildCount,
			wantSQL: "SELECT COUNT(*) FROM public.landlords l",
		},
		{
			name: "page",
			build: func() (string, []any) {
				return query.NewBuilder(testProjection(), newest).BuildPage(2, 10)
			},
			wantSQL: selectAll + " ORDER BY l.created_at DESC LIMIT 10 OFFSET 10",
		},
		{
			name: "single",
			build: func() (string, []any) {
				return query.NewBuilder(testProjection()).BuildSingle("ID", "abc")
			},
			wantSQL:  selectAll + " WHERE l.id = $1",
			wantArgs: []any{"abc"},
		},
		{
			name: "first is ordered",
			build: query.NewBuilder(testProjection(), newest).
				WhereEquals("Name", "Wanjiru").
				BuildFirst,
			wantSQL:  selectAll + " WHERE l.name = $1 ORDER BY l.created_at DESC LIMIT 1",
			wantArgs: []any{"Wanjiru"},
		},
		{
			name: "limit",
			build: func() (string, []any) {
				return query.NewBuilder(testProjection(), newest).BuildLimit(25)
			},
			wantSQL: selectAll + " ORDER BY l.created_at DESC LIMIT 25",
		},
		{
			name: "zero limit is uncapped",
			build: func() (string, []any) {
				return query.NewBuilder(testProjection(), newest).BuildLimit(0)
			},
			wantSQL: selectAll + " ORDER BY l.created_at DESC",
		},
		{
			name: "exists",
			build: query.NewBuilder(testProjection()).
				WhereEquals("Name", "Wanjiru").
				WhereNot("ID", "self").
				BuildExists,
			wantSQL:  "SELECT EXISTS(SELECT 1 FROM public.landlords l WHERE l.name = $1 AND l.id <> $2)",
			wantArgs: []any{"Wanjiru", "self"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.build()
			if sql != tt.wantSQL {
				t.Errorf("sql:\ngot  %q\nwant %q", sql, tt.wantSQL)
			}
			assertArgs(t, args, tt.wantArgs)
		})
	}
}

func TestBuilderConditions(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(b *query.Builder)
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "equals",
			apply:     func(b *query.Builder) { b.WhereEquals("Name", "Otieno") },
			wantWhere: " WHERE l.name = $1",
			wantArgs:  []any{"Otieno"},
		},
		{
			name:  "nil equals skipped",
			apply: func(b *query.Builder) { b.WhereEquals("Name", (*string)(nil)) },
		},
		{
			name:      "contains",
			apply:     func(b *query.Builder) { b.WhereContains("Name", ptr("oti")) },
			wantWhere: " WHERE l.name ILIKE $1 ESCAPE '\\'",
			wantArgs:  []any{"%oti%"},
		},
		{
			name:      "contains escapes wildcards",
			apply:     func(b *query.Builder) { b.WhereContains("Name", ptr(`50%_off\`)) },
			wantWhere: " WHERE l.name ILIKE $1 ESCAPE '\\'",
			wantArgs:  []any{`%50\%\_off\\%`},
		},
		{
			name:      "underscore alone is literal",
			apply:     func(b *query.Builder) { b.WhereContains("Name", ptr("_")) },
			wantWhere: " WHERE l.name ILIKE $1 ESCAPE '\\'",
			wantArgs:  []any{`%\_%`},
		},
		{
			name:  "empty contains skipped",
			apply: func(b *query.Builder) { b.WhereContains("Name", ptr("")) },
		},
		{
			name:      "equal fold",
			apply:     func(b *query.Builder) { b.WhereEqualFold("Name", ptr("OTIENO")) },
			wantWhere: " WHERE LOWER(l.name) = LOWER($1)",
			wantArgs:  []any{"OTIENO"},
		},
		{
			name:      "element contains",
			apply:     func(b *query.Builder) { b.WhereElementContains("ManagedProperties", ptr("Kilimani")) },
			wantWhere: " WHERE EXISTS (SELECT 1 FROM jsonb_array_elements_text(l.managed_properties) AS elem WHERE elem ILIKE $1 ESCAPE '\\')",
			wantArgs:  []any{"%Kilimani%"},
		},
		{
			name:      "element contains escapes wildcards",
			apply:     func(b *query.Builder) { b.WhereElementContains("ManagedProperties", ptr("Plot_7%")) },
			wantWhere: " WHERE EXISTS (SELECT 1 FROM jsonb_array_elements_text(l.managed_properties) AS elem WHERE elem ILIKE $1 ESCAPE '\\')",
			wantArgs:  []any{`%Plot\_7\%%`},
		},
		{
			name: "range",
			apply: func(b *query.Builder) {
				b.WhereAtLeast("TrustScore", 40).WhereAtMost("TrustScore", 70)
			},
			wantWhere: " WHERE l.trust_score >= $1 AND l.trust_score <= $2",
			wantArgs:  []any{40, 70},
		},
		{
			name:  "nil range skipped",
			apply: func(b *query.Builder) { b.WhereAtLeast("TrustScore", (*int)(nil)) },
		},
		{
			name:      "search",
			apply:     func(b *query.Builder) { b.WhereSearch(ptr("west"), "Name", "ID") },
			wantWhere: " WHERE (l.name ILIKE $1 ESCAPE '\\' OR l.id ILIKE $2 ESCAPE '\\')",
			wantArgs:  []any{"%west%", "%west%"},
		},
		{
			name:      "search escapes wildcards",
			apply:     func(b *query.Builder) { b.WhereSearch(ptr("%"), "Name") },
			wantWhere: " WHERE (l.name ILIKE $1 ESCAPE '\\')",
			wantArgs:  []any{`%\%%`},
		},
		{
			name:  "nil search skipped",
			apply: func(b *query.Builder) { b.WhereSearch(nil, "Name") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(testProjection())
			tt.apply(b)
			sql, args := b.Build()

			if want := selectAll + tt.wantWhere; sql != want {
				t.Errorf("sql:\ngot  %q\nwant %q", sql, want)
			}
			assertArgs(t, args, tt.wantArgs)
		})
	}
}

func TestBuilderOrdering(t *testing.T) {
	defaultSort := query.SortField{Field: "CreatedAt"}

	tests := []struct {
		name      string
		sort      []query.SortField
		wantOrder string
	}{
		{"default", nil, " ORDER BY l.created_at ASC"},
		{
			"client fields by column name",
			query.ParseSortFields("-trust_score,name"),
			" ORDER BY l.trust_score DESC, l.name ASC",
		},
		{
			"unmapped fields dropped",
			query.ParseSortFields("name;DROP TABLE landlords,-name"),
			" ORDER BY l.name DESC",
		},
		{
			"all unmapped falls back to default",
			query.ParseSortFields("1=1"),
			" ORDER BY l.created_at ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(testProjection(), defaultSort)
			if tt.sort != nil {
				b.OrderByFields(tt.sort)
			}
			sql, _ := b.Build()

			if want := selectAll + tt.wantOrder; sql != want {
				t.Errorf("sql:\ngot  %q\nwant %q", sql, want)
			}
		})
	}
}

func TestBuilderPageNumbersParameters(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "ID"})
	b.WhereContains("Name", ptr("kim")).WhereAtLeast("TrustScore", 70)
	sql, args := b.BuildPage(3, 25)

	want := selectAll + " WHERE l.name ILIKE $1 ESCAPE '\\' AND l.trust_score >= $2 ORDER BY l.id ASC LIMIT 25 OFFSET 50"
	if sql != want {
		t.Errorf("sql:\ngot  %q\nwant %q", sql, want)
	}
	assertArgs(t, args, []any{"%kim%", 70})
}

func assertArgs(t *testing.T, got, want []any) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
