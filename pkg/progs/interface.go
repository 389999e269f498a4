/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package progs

import "context"

type IProgram interface {
	Key() ProgramKey
	HasAtLeastOneStatement() bool
}

// Program registry
type IRegistry interface {
	// Returns record program for record field event
	RecordProgram(rec, field string, ev Event) (IProgram, bool)

	// Returns component program for record field event.
	// Empty rec and field address component-level programs
	ComponentProgram(comp, market, rec, field string, ev Event) (IProgram, bool)
}

// Program interpreter. Programs are opaque to the buffer core
type IInterpreter interface {
	Run(ctx context.Context, ec ExecContext) error
}
