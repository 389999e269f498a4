/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/blastrain/vitess-sqlparser/sqlparser"
	"github.com/valyala/bytebufferpool"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/goutils/timeu"
	"github.com/voedger/cbuffer/pkg/objcache"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Statement library. Templates are built once per record and field and kept in LRU cache
type Library struct {
	clock     timeu.ITime
	templates objcache.ICache[string, *template]
}

// Returns statement selecting default field value from default record by keys.
//
// Keys are resolved from buffer context, unresolvable key returns ErrDeferredResolution.
// Keyed EFFDT is resolved by effective-dated subquery as of today
func (l *Library) NonConstantDefaultQuery(defRec *defs.Record, defField string, keys IKeyResolver) (*Statement, error) {
	f, ok := defRec.Field(defField)
	if !ok {
		return nil, defs.ErrFieldNotFound(defRec.Name, defField)
	}
	tmpl, err := l.template("default:"+defRec.Name+"."+defField, func() string {
		return selectByKeyEffDt(defRec, []*defs.RecordField{f})
	}, defRec)
	if err != nil {
		return nil, err
	}
	return l.bind(defRec, tmpl, keys)
}

// Returns statement selecting all record fields by keys, effective-dated as of today
func (l *Library) SelectByKeyEffDt(rec *defs.Record, keys IKeyResolver) (*Statement, error) {
	tmpl, err := l.template("select:"+rec.Name, func() string {
		return selectByKeyEffDt(rec, rec.ExpandedFields())
	}, rec)
	if err != nil {
		return nil, err
	}
	return l.bind(rec, tmpl, keys)
}

var dateInPattern = regexp.MustCompile(`(?i)%DATEIN\(([^)]*)\)`)

// Returns fill statement for record with where clause in platform notation.
//
// Numeric bind sockets (":1") are replaced by "?" and bind values are ordered
// by socket occurrence, %DateIn(x) is replaced by TO_DATE(x,'YYYY-MM-DD')
func (l *Library) FillQuery(rec *defs.Record, where string, binds ...string) (*Statement, error) {
	where, ordered, err := bindSockets(where, binds)
	if err != nil {
		return nil, err
	}
	where = dateInPattern.ReplaceAllString(where, "TO_DATE(${1},"+sqlDateFormat+")")
	sql := selectClause(rec.ExpandedFields(), "") + " FROM " + rec.Table()
	if w := strings.TrimSpace(where); w != "" {
		sql += " " + w
	}
	ast, err := parseSelect(sql)
	if err != nil {
		return nil, err
	}
	return &Statement{SQL: sql, Binds: ordered, ast: ast}, nil
}

// Replaces numeric bind sockets outside string literals by "?".
//
// Returns bind values in socket order, one value per socket. Socket may be
// repeated, each bind value must be referenced at least once
func bindSockets(where string, binds []string) (string, []string, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	ordered := make([]string, 0, len(binds))
	used := make([]bool, len(binds))
	literal := false
	for i := 0; i < len(where); i++ {
		c := where[i]
		if c == '\'' {
			literal = !literal
		}
		j := i + 1
		for !literal && c == ':' && j < len(where) && where[j] >= '0' && where[j] <= '9' {
			j++
		}
		if j == i+1 {
			_ = bb.WriteByte(c)
			continue
		}
		n, err := strconv.Atoi(where[i+1 : j])
		if err != nil || n < 1 || n > len(binds) {
			return "", nil, ErrBindSocket(where[i:j], len(binds))
		}
		ordered = append(ordered, binds[n-1])
		used[n-1] = true
		_ = bb.WriteByte('?')
		i = j - 1
	}
	for i, u := range used {
		if !u {
			return "", nil, ErrUnusedBind(i + 1)
		}
	}
	return bb.String(), ordered, nil
}

func (l *Library) template(key string, build func() string, rec *defs.Record) (*template, error) {
	if t, ok := l.templates.Get(key); ok {
		return t, nil
	}
	sql := build()
	ast, err := parseSelect(sql)
	if err != nil {
		return nil, err
	}
	t := &template{sql: sql, ast: ast}
	for _, k := range rec.KeyFields() {
		if k.Name == defs.EffDtFieldName {
			t.binds = append(t.binds, bindSource{})
			continue
		}
		t.binds = append(t.binds, bindSource{field: k.Name})
	}
	if logger.IsVerbose() {
		logger.Verbose("template", key, sql)
	}
	l.templates.Put(key, t)
	return t, nil
}

func (l *Library) bind(rec *defs.Record, t *template, keys IKeyResolver) (*Statement, error) {
	binds := make([]string, 0, len(t.binds))
	for _, b := range t.binds {
		if b.field == "" {
			binds = append(binds, timeu.Today(l.clock).Format(timeu.DateLayout))
			continue
		}
		v, ok := keys.ResolveKey(b.field)
		if !ok {
			return nil, ErrKeyNotResolvable(rec.Name, b.field)
		}
		binds = append(binds, v)
	}
	return &Statement{SQL: t.sql, Binds: binds, ast: t.ast}, nil
}

func selectByKeyEffDt(rec *defs.Record, fields []*defs.RecordField) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString(selectClause(fields, mainAlias))
	b.WriteString(" FROM " + rec.Table() + " " + mainAlias)

	keys := rec.KeyFields()
	for i, k := range keys {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(mainAlias + "." + k.Name + "=")
		if k.Name != defs.EffDtFieldName {
			b.WriteString("?")
			continue
		}
		b.WriteString("(SELECT MAX(" + defs.EffDtFieldName + ") FROM " + rec.Table() + " " + subAlias + " WHERE ")
		for j, sk := range keys {
			if j > 0 {
				b.WriteString(" AND ")
			}
			if sk.Name != defs.EffDtFieldName {
				b.WriteString(subAlias + "." + sk.Name + "=" + mainAlias + "." + sk.Name)
			} else {
				b.WriteString(subAlias + "." + defs.EffDtFieldName + "<=TO_DATE(?," + sqlDateFormat + ")")
			}
		}
		b.WriteString(")")
	}
	return b.String()
}

// Date fields are selected with TO_CHAR directive
func selectClause(fields []*defs.RecordField, alias string) string {
	dotted := alias
	if dotted != "" {
		dotted += "."
	}
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Kind == ptypes.Kind_Date {
			cols = append(cols, "TO_CHAR("+dotted+f.Name+","+sqlDateFormat+")")
		} else {
			cols = append(cols, dotted+f.Name)
		}
	}
	return "SELECT " + strings.Join(cols, ",")
}

func parseSelect(sql string) (*sqlparser.Select, error) {
	stmt, err := sqlparser.Parse(sql)
	if err != nil {
		return nil, ErrInvalidStatement(sql, err)
	}
	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, ErrUnsupportedStatement(stmt)
	}
	return sel, nil
}

// Executes statement which must return at most one row.
//
// Returns nil row if no rows, ErrStructuralIntegrity if more than one
func QueryOne(ctx context.Context, exec IExecutor, stmt *Statement) (*ResultSet, error) {
	rs, err := exec.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	switch len(rs.Rows) {
	case 0:
		return nil, nil
	case 1:
		return rs, nil
	}
	return nil, ErrMultipleRows(stmt, len(rs.Rows))
}
