/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package iterate

// Enumerator method shape, e.g. `Records(cb func(*defs.Record))`
type ForEachFunction[T any] func(enum func(T))
