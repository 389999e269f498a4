/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package testingu

import (
	"sync"
	"time"

	"github.com/voedger/cbuffer/pkg/goutils/timeu"
)

// MockTime must be a global var to avoid case when different times could be used in tests.
var MockTime = NewMockTime()

type IMockTime interface {
	timeu.ITime

	// moves the clock forward
	Add(d time.Duration)

	// sets the clock to exact instant
	Set(t time.Time)
}

func NewMockTime() IMockTime {
	return &mockedTime{
		now: time.Date(2014, time.November, 30, 12, 0, 0, 0, time.UTC),
	}
}

type mockedTime struct {
	sync.RWMutex
	now time.Time
}

func (t *mockedTime) Now() time.Time {
	t.RLock()
	defer t.RUnlock()
	return t.now
}

func (t *mockedTime) Add(d time.Duration) {
	t.Lock()
	defer t.Unlock()
	t.now = t.now.Add(d)
}

func (t *mockedTime) Set(v time.Time) {
	t.Lock()
	defer t.Unlock()
	t.now = v
}
