/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

import (
	"fmt"

	"github.com/blastrain/vitess-sqlparser/sqlparser"
)

// Prepared SQL statement with positional binds
type Statement struct {
	SQL   string
	Binds []string
	ast   *sqlparser.Select
}

func (s *Statement) String() string { return fmt.Sprintf("%s %q", s.SQL, s.Binds) }

// Query result, values are rendered as strings; empty string is NULL
type ResultSet struct {
	Columns []string
	Rows    [][]string
}

// Returns value of named column in row
func (rs *ResultSet) Value(row int, column string) (string, bool) {
	for i, c := range rs.Columns {
		if c == column {
			return rs.Rows[row][i], true
		}
	}
	return "", false
}

// Bind source of statement template
type bindSource struct {
	// key field name, empty for effective date
	field string
}

// Parsed statement template
type template struct {
	sql   string
	ast   *sqlparser.Select
	binds []bindSource
}
