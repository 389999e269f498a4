/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

import (
	"context"
	"strconv"
	"strings"

	"github.com/blastrain/vitess-sqlparser/sqlparser"
	"github.com/shopspring/decimal"
)

// Row of in-memory table, values are rendered as strings
type Row map[string]string

// In-memory tables executor.
//
// Supports selects from one table with conjunctive comparisons, bind arguments,
// TO_DATE / TO_CHAR directives and scalar MAX subqueries
type MemExecutor struct {
	tables map[string][]Row
}

// Adds row to table. Table name is stored in upper case
func (e *MemExecutor) AddRow(table string, row Row) *MemExecutor {
	t := strings.ToUpper(table)
	e.tables[t] = append(e.tables[t], row)
	return e
}

func (e *MemExecutor) Query(ctx context.Context, stmt *Statement) (*ResultSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sel := stmt.ast
	if sel == nil {
		var err error
		if sel, err = parseSelect(stmt.SQL); err != nil {
			return nil, err
		}
	}
	q := &memQuery{exec: e, binds: stmt.Binds}
	return q.run(sel, nil)
}

// scope of evaluated row, outer scope is used for correlated subqueries
type memScope struct {
	alias string
	row   Row
	outer *memScope
}

func (s *memScope) lookup(qualifier, col string) (string, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if qualifier != "" && !strings.EqualFold(qualifier, sc.alias) {
			continue
		}
		for k, v := range sc.row {
			if strings.EqualFold(k, col) {
				return v, true
			}
		}
		if qualifier != "" {
			return "", false
		}
	}
	return "", false
}

type memQuery struct {
	exec  *MemExecutor
	binds []string
}

func (q *memQuery) run(sel *sqlparser.Select, outer *memScope) (*ResultSet, error) {
	if len(sel.From) != 1 {
		return nil, ErrUnsupportedStatement(sel.From)
	}
	ate, ok := sel.From[0].(*sqlparser.AliasedTableExpr)
	if !ok {
		return nil, ErrUnsupportedStatement(sel.From[0])
	}
	tn, ok := ate.Expr.(sqlparser.TableName)
	if !ok {
		return nil, ErrUnsupportedStatement(ate.Expr)
	}
	table := strings.ToUpper(tn.Name.String())
	rows, ok := q.exec.tables[table]
	if !ok {
		return nil, ErrTableNotFound(table)
	}
	alias := ate.As.String()
	if alias == "" {
		alias = tn.Name.String()
	}

	matched := make([]*memScope, 0)
	for _, r := range rows {
		sc := &memScope{alias: alias, row: r, outer: outer}
		if sel.Where != nil {
			ok, err := q.condition(sel.Where.Expr, sc)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		matched = append(matched, sc)
	}

	rs := &ResultSet{}
	for _, se := range sel.SelectExprs {
		ae, ok := se.(*sqlparser.AliasedExpr)
		if !ok {
			return nil, ErrUnsupportedStatement(se)
		}
		rs.Columns = append(rs.Columns, columnName(ae))
	}

	if agg, ok := q.aggregate(sel); ok {
		v, err := q.max(agg, matched)
		if err != nil {
			return nil, err
		}
		rs.Rows = append(rs.Rows, []string{v})
		return rs, nil
	}

	for _, sc := range matched {
		vals := make([]string, 0, len(sel.SelectExprs))
		for _, se := range sel.SelectExprs {
			v, err := q.value(se.(*sqlparser.AliasedExpr).Expr, sc)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		rs.Rows = append(rs.Rows, vals)
	}
	return rs, nil
}

// Returns MAX() function if select consists of one MAX expression
func (q *memQuery) aggregate(sel *sqlparser.Select) (*sqlparser.FuncExpr, bool) {
	if len(sel.SelectExprs) != 1 {
		return nil, false
	}
	ae, ok := sel.SelectExprs[0].(*sqlparser.AliasedExpr)
	if !ok {
		return nil, false
	}
	fe, ok := ae.Expr.(*sqlparser.FuncExpr)
	if !ok || fe.Name.Lowered() != "max" {
		return nil, false
	}
	return fe, true
}

func (q *memQuery) max(fe *sqlparser.FuncExpr, scopes []*memScope) (string, error) {
	if len(fe.Exprs) != 1 {
		return "", ErrUnsupportedStatement(fe)
	}
	arg, ok := fe.Exprs[0].(*sqlparser.AliasedExpr)
	if !ok {
		return "", ErrUnsupportedStatement(fe.Exprs[0])
	}
	res := ""
	for _, sc := range scopes {
		v, err := q.value(arg.Expr, sc)
		if err != nil {
			return "", err
		}
		if res == "" || compareValues(v, res) > 0 {
			res = v
		}
	}
	return res, nil
}

func (q *memQuery) condition(expr sqlparser.Expr, sc *memScope) (bool, error) {
	switch e := expr.(type) {
	case *sqlparser.AndExpr:
		l, err := q.condition(e.Left, sc)
		if err != nil || !l {
			return false, err
		}
		return q.condition(e.Right, sc)
	case *sqlparser.OrExpr:
		l, err := q.condition(e.Left, sc)
		if err != nil || l {
			return l, err
		}
		return q.condition(e.Right, sc)
	case *sqlparser.ParenExpr:
		return q.condition(e.Expr, sc)
	case *sqlparser.ComparisonExpr:
		l, err := q.value(e.Left, sc)
		if err != nil {
			return false, err
		}
		r, err := q.value(e.Right, sc)
		if err != nil {
			return false, err
		}
		if l == "" || r == "" {
			// NULL never matches
			return false, nil
		}
		c := compareValues(l, r)
		switch e.Operator {
		case sqlparser.EqualStr:
			return c == 0, nil
		case sqlparser.NotEqualStr:
			return c != 0, nil
		case sqlparser.LessThanStr:
			return c < 0, nil
		case sqlparser.LessEqualStr:
			return c <= 0, nil
		case sqlparser.GreaterThanStr:
			return c > 0, nil
		case sqlparser.GreaterEqualStr:
			return c >= 0, nil
		}
	}
	return false, ErrUnsupportedStatement(expr)
}

func (q *memQuery) value(expr sqlparser.Expr, sc *memScope) (string, error) {
	switch e := expr.(type) {
	case *sqlparser.ColName:
		v, _ := sc.lookup(e.Qualifier.Name.String(), e.Name.String())
		return v, nil
	case *sqlparser.SQLVal:
		switch e.Type {
		case sqlparser.StrVal, sqlparser.IntVal, sqlparser.FloatVal:
			return string(e.Val), nil
		case sqlparser.ValArg:
			return q.bind(string(e.Val))
		}
	case *sqlparser.ParenExpr:
		return q.value(e.Expr, sc)
	case *sqlparser.FuncExpr:
		switch e.Name.Lowered() {
		case "to_date", "to_char":
			if len(e.Exprs) == 0 {
				break
			}
			if ae, ok := e.Exprs[0].(*sqlparser.AliasedExpr); ok {
				return q.value(ae.Expr, sc)
			}
		}
	case *sqlparser.Subquery:
		sel, ok := e.Select.(*sqlparser.Select)
		if !ok {
			break
		}
		rs, err := q.run(sel, sc)
		if err != nil {
			return "", err
		}
		if len(rs.Rows) == 0 {
			return "", nil
		}
		return rs.Rows[0][0], nil
	}
	return "", ErrUnsupportedStatement(expr)
}

// ":v1" is the first positional bind
func (q *memQuery) bind(arg string) (string, error) {
	idx, err := strconv.Atoi(strings.TrimPrefix(arg, ":v"))
	if err != nil || idx < 1 || idx > len(q.binds) {
		return "", ErrBindNotFound(arg)
	}
	return q.binds[idx-1], nil
}

func columnName(ae *sqlparser.AliasedExpr) string {
	if !ae.As.IsEmpty() {
		return ae.As.String()
	}
	switch e := ae.Expr.(type) {
	case *sqlparser.ColName:
		return e.Name.String()
	case *sqlparser.FuncExpr:
		if len(e.Exprs) > 0 {
			if arg, ok := e.Exprs[0].(*sqlparser.AliasedExpr); ok {
				return columnName(arg)
			}
		}
	}
	return sqlparser.String(ae.Expr)
}

// Numbers are compared as decimals, other values as strings
func compareValues(a, b string) int {
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA == nil && errB == nil {
		return da.Cmp(db)
	}
	return strings.Compare(a, b)
}
