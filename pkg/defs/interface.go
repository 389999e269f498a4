/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

// Record, page and component metadata source.
//
// Implementations must be side-effect free on repeated calls
type IDefnSource interface {
	// Returns linked record definition. ErrNotFound if record is unknown
	Record(name string) (*Record, error)

	// Returns page definition. ErrNotFound if page is unknown
	Page(name string) (*Page, error)

	// Returns component definition. ErrNotFound if component is unknown
	Component(name, market string) (*Component, error)
}
