/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

// Returns the value as the callee sees it after crossing an execution boundary.
//
// Primitives are copied into new writeable instances; arrays, null and
// objects are shared
func PassAcrossBoundary(v IValue) IValue {
	if p, ok := v.(IPrimitive); ok {
		return p.Clone()
	}
	return v
}

// Passes all arguments across execution boundary
func PassArgs(args ...IValue) []IValue {
	res := make([]IValue, len(args))
	for i, a := range args {
		res[i] = PassAcrossBoundary(a)
	}
	return res
}
