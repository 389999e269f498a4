/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/timeu"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/stmts"
	"github.com/voedger/cbuffer/pkg/trace"
)

// Collaborators of runtime value graph
type Config struct {
	// Component and market to look up component programs for
	Component string
	Market    string

	Defs        defs.IDefnSource
	Registry    progs.IRegistry
	Interpreter progs.IInterpreter
	Sink        trace.ISink
	Library     *stmts.Library
	Executor    stmts.IExecutor
	Clock       timeu.ITime
}

// Runtime shared by all entities of one value graph
type Runtime struct {
	Config
	searchRecord *Record
}

// Sets search record. Keylists reaching graph root look into search record
func (rt *Runtime) SetSearchRecord(rec *Record) { rt.searchRecord = rec }

func (rt *Runtime) SearchRecord() *Record { return rt.searchRecord }

// Allocates rowset against scroll buffer.
//
// Scroll buffer records become buffer-bound records of each row, child scrolls become child rowsets
func (rt *Runtime) NewRowset(sb *cbuffer.ScrollBuffer) (*Rowset, error) {
	return rt.newScrollRowset(nil, sb)
}

// Allocates standalone rowset with one row of primary record
func (rt *Runtime) NewStandaloneRowset(primary *defs.Record) (*Rowset, error) {
	return newRowset(rt, nil, primary, nil)
}

// Allocates standalone record, owned by the first row of new standalone rowset
func (rt *Runtime) NewStandaloneRecord(defn *defs.Record) (*Record, error) {
	rs, err := rt.NewStandaloneRowset(defn)
	if err != nil {
		return nil, err
	}
	return rs.rows[0].records[0], nil
}

func (rt *Runtime) newScrollRowset(parent *Row, sb *cbuffer.ScrollBuffer) (*Rowset, error) {
	var primary *defs.Record
	if name := sb.PrimaryRecName(); name != "" {
		r, err := rt.Defs.Record(name)
		if err != nil {
			return nil, err
		}
		primary = r
	}
	return newRowset(rt, parent, primary, sb)
}
