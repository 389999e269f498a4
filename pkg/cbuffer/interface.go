/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

// Buffer tree node streaming protocol.
//
// Next emits the node itself first, then depth-first all descendants,
// then returns nil. Reset restores the node and all descendants to the state
// before iteration
type IStreamable interface {
	Next() IStreamable
	Reset()
}
