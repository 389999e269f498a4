/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

// Null value, the only instance of Kind_Any variant.
//
// Allocated by "any" constraint, accepted by every array constraint
type Null struct{}

var null = &Null{}

// Returns null singleton
func NullValue() *Null { return null }

func (*Null) Kind() Kind { return Kind_Any }

func (*Null) IsReadOnly() bool { return true }

func (*Null) SetReadOnly() {}

func (*Null) IsSentinel() bool { return true }

func (*Null) String() string { return "Null" }
