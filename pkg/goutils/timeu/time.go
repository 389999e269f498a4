/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package timeu

import (
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02-15.04.05.000000"
)

// Clock used by meta-value defaults (%date) and trace stamps
type ITime interface {
	Now() time.Time
}

func NewITime() ITime {
	return &realTime{}
}

// Returns the date part of the clock's current instant (midnight, same location)
func Today(t ITime) time.Time {
	return Date(t.Now())
}

// Truncates the time to midnight in its own location
func Date(v time.Time) time.Time {
	y, m, d := v.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, v.Location())
}

type realTime struct{}

func (t *realTime) Now() time.Time {
	return time.Now()
}
