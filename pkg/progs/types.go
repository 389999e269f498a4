/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package progs

import (
	"strings"

	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Program event
type Event uint8

//go:generate stringer -type=Event -output=event_string.go

const (
	Event_null Event = iota
	Event_SearchInit
	Event_SearchSave
	Event_RowSelect
	Event_PreBuild
	Event_FieldDefault
	Event_FieldFormula
	Event_RowInit
	Event_FieldChange
	Event_RowInsert
	Event_SaveEdit
	Event_SavePreChange
	Event_WorkFlow
	Event_SavePostChange
	Event_PostBuild
	Event_Activate
	Event_count
)

func (e Event) TrimString() string {
	const pref = "Event_"
	return strings.TrimPrefix(e.String(), pref)
}

// Returns event by name, case-insensitive
func EventByName(name string) (Event, bool) {
	for e := Event_null + 1; e < Event_count; e++ {
		if strings.EqualFold(e.TrimString(), name) {
			return e, true
		}
	}
	return Event_null, false
}

// Program key. Record programs have empty Component and Market
type ProgramKey struct {
	Component string
	Market    string
	Record    string
	Field     string
	Event     Event
}

func RecordProgramKey(rec, field string, ev Event) ProgramKey {
	return ProgramKey{Record: rec, Field: field, Event: ev}
}

func ComponentProgramKey(comp, market, rec, field string, ev Event) ProgramKey {
	return ProgramKey{Component: comp, Market: market, Record: rec, Field: field, Event: ev}
}

func (k ProgramKey) IsComponentProgram() bool { return k.Component != "" }

// Returns program descriptor, e.g. "JOB_DATA.GBL.JOB.EMPLID.FieldDefault"
func (k ProgramKey) String() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{k.Component, k.Market, k.Record, k.Field} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(append(parts, k.Event.TrimString()), ".")
}

// Program, compiled by external parser
type Program struct {
	key        ProgramKey
	statements []string
}

func NewProgram(key ProgramKey, statements ...string) *Program {
	return &Program{key: key, statements: statements}
}

func (p *Program) Key() ProgramKey { return p.key }

func (p *Program) Statements() []string { return p.statements }

func (p *Program) HasAtLeastOneStatement() bool { return len(p.statements) > 0 }

func (p *Program) String() string { return p.key.String() }

// Program execution context
type ExecContext struct {
	Program     IProgram
	ScrollLevel int
	// 1-based row index in scroll, 0 for standalone
	RowIndex int
	// Implicit context, usually the field program is fired for
	Context ptypes.IValue
}
