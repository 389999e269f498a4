/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/voedger/cbuffer/pkg/objcache"
)

// Process-wide read-only boolean literals
var (
	TRUE  = newBooleanLiteral(true)
	FALSE = newBooleanLiteral(false)
)

func newBooleanLiteral(b bool) *Boolean {
	v := NewBoolean(b)
	v.SetReadOnly()
	return v
}

// Returns TRUE or FALSE literal
func BooleanOf(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// Interning pools for literals. Structurally equal literals share one read-only instance
type LiteralPool struct {
	integers objcache.ICache[int64, *Integer]
	strings  objcache.ICache[string, *String]
	numbers  objcache.ICache[string, *Number]
}

func NewLiteralPool() *LiteralPool {
	return &LiteralPool{
		integers: objcache.NewUnbounded[int64, *Integer](),
		strings:  objcache.NewUnbounded[string, *String](),
		numbers:  objcache.NewUnbounded[string, *Number](),
	}
}

var (
	literalsOnce sync.Once
	literals     *LiteralPool
)

// Returns process-wide literal pool. Initialized once on first use
func Literals() *LiteralPool {
	literalsOnce.Do(func() {
		literals = NewLiteralPool()
	})
	return literals
}

func (p *LiteralPool) Integer(i int64) *Integer {
	if v, ok := p.integers.Get(i); ok {
		return v
	}
	v := NewInteger(i)
	v.SetReadOnly()
	p.integers.Put(i, v)
	return v
}

func (p *LiteralPool) String(s string) *String {
	if v, ok := p.strings.Get(s); ok {
		return v
	}
	v := NewString(s)
	v.SetReadOnly()
	p.strings.Put(s, v)
	return v
}

// Interned by canonical decimal string, so 1.50 and 1.5 share one instance
func (p *LiteralPool) Number(d decimal.Decimal) *Number {
	key := d.String()
	if v, ok := p.numbers.Get(key); ok {
		return v
	}
	v := NewNumber(d)
	v.SetReadOnly()
	p.numbers.Put(key, v)
	return v
}

// Returns count of interned literals
func (p *LiteralPool) Len() int {
	return p.integers.Len() + p.strings.Len() + p.numbers.Len()
}
