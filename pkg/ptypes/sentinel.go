/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"github.com/voedger/cbuffer/pkg/objcache"
)

var sentinels = objcache.NewUnbounded[string, IValue]()

// Returns cached canonical uninitialized instance for constraint.
//
// Sentinels are read-only; neither Write nor SystemWrite is permitted on them
func Sentinel(c Constraint) (IValue, error) {
	key := c.cacheKey()
	if v, ok := sentinels.Get(key); ok {
		return v, nil
	}
	v, err := c.Alloc()
	if err != nil {
		return nil, err
	}
	switch s := v.(type) {
	case *Boolean:
		s.makeSentinel()
	case *Integer:
		s.makeSentinel()
	case *Number:
		s.makeSentinel()
	case *String:
		s.makeSentinel()
	case *Char:
		s.makeSentinel()
	case *Date:
		s.makeSentinel()
	case *DateTime:
		s.makeSentinel()
	case *Array:
		s.sentinel = true
		s.readOnly = true
	}
	sentinels.Put(key, v)
	return v, nil
}

// Returns sentinel for constraint. Panics if constraint has no sentinel
func MustSentinel(c Constraint) IValue {
	v, err := Sentinel(c)
	if err != nil {
		panic(err)
	}
	return v
}
