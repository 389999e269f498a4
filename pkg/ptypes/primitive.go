/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

// Common part of every primitive variant
type primitive struct {
	kind     Kind
	readOnly bool
	sentinel bool
	updated  bool
}

func makePrimitive(k Kind) primitive {
	return primitive{kind: k}
}

func (p *primitive) Kind() Kind { return p.kind }

func (p *primitive) IsReadOnly() bool { return p.readOnly }

func (p *primitive) SetReadOnly() { p.readOnly = true }

func (p *primitive) IsSentinel() bool { return p.sentinel }

func (p *primitive) IsUpdated() bool { return p.updated }

func (p *primitive) ResetUpdated() { p.updated = false }

func (p *primitive) checkWriteable(v any) error {
	if p.sentinel {
		return ErrSentinelWrite(v)
	}
	if p.readOnly {
		return ErrReadOnlyWrite(v)
	}
	return nil
}

func (p *primitive) checkSystemWriteable(v any) error {
	if p.sentinel {
		return ErrSentinelWrite(v)
	}
	return nil
}

func (p *primitive) makeSentinel() {
	p.sentinel = true
	p.readOnly = true
}
