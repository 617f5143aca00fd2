// Package query builds parameterized PostgreSQL SELECT statements against a
// projection of view names onto table columns.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view property names to qualified column references
// (alias.column). Raw column names resolve as well, so API sort keys such as
// "created_at" and view names such as "CreatedAt" reach the same column.
type ProjectionMap struct {
	schema     string
	table      string
	alias      string
	current    string
	joins      []string
	columns    map[string]string
	columnList []string
}

func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		current: alias,
		columns: make(map[string]string),
	}
}

// Join adds a joined table. Columns projected after a Join are read from the
// joined alias.
func (p *ProjectionMap) Join(schema, table, alias, kind, on string) *ProjectionMap {
	p.joins = append(p.joins, fmt.Sprintf("%s %s.%s %s ON %s", kind, schema, table, alias, on))
	p.current = alias
	return p
}

// Project maps column of the most recently joined table (or the base table)
// to viewName.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.current, column)
	p.columns[viewName] = qualified
	if _, taken := p.columns[column]; !taken {
		p.columns[column] = qualified
	}
	p.columnList = append(p.columnList, qualified)
	return p
}

func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns "schema.table alias".
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// From returns the FROM target including any joins.
func (p *ProjectionMap) From() string {
	if len(p.joins) == 0 {
		return p.Table()
	}
	return p.Table() + " " + strings.Join(p.joins, " ")
}

// Column returns the qualified column for name, or name itself when unmapped.
func (p *ProjectionMap) Column(name string) string {
	if col, ok := p.columns[name]; ok {
		return col
	}
	return name
}

// Lookup reports the qualified column for name and whether it is mapped.
func (p *ProjectionMap) Lookup(name string) (string, bool) {
	col, ok := p.columns[name]
	return col, ok
}

// Columns returns every projected column, comma-separated, in projection order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columnList, ", ")
}
