/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package progs

func NewRegistry() *Registry {
	return &Registry{programs: make(map[ProgramKey]IProgram)}
}

// Returns interpreter which only logs programs runs
func NewNopInterpreter() IInterpreter { return nopInterpreter{} }
