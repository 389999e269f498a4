/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package trace

import "fmt"

// Trace record. Implementations must be comparable
type IEmission interface {
	fmt.Stringer
}

// Receiver of trace emissions
type ISink interface {
	Submit(IEmission) error
}
