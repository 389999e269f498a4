/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package trace

import (
	"github.com/google/uuid"
	"github.com/valyala/bytebufferpool"

	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

// Records all submitted emissions
type Recorder struct {
	runID     uuid.UUID
	emissions []IEmission
}

func (r *Recorder) Submit(e IEmission) error {
	if logger.IsTrace() {
		logger.Trace(r.runID, e)
	}
	r.emissions = append(r.emissions, e)
	return nil
}

func (r *Recorder) RunID() uuid.UUID { return r.runID }

func (r *Recorder) Emissions() []IEmission { return r.emissions }

// Returns emissions, one per line
func (r *Recorder) String() string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	for _, e := range r.emissions {
		_, _ = bb.WriteString(e.String())
		_ = bb.WriteByte('\n')
	}
	return bb.String()
}

// Checks submitted emissions against expected sequence
type Verifier struct {
	expected []IEmission
	next     int
}

func (v *Verifier) Submit(e IEmission) error {
	idx := v.next
	if idx >= len(v.expected) {
		return ErrUnexpectedEmission(idx, e)
	}
	if v.expected[idx] != e {
		return ErrEmissionMismatch(idx, v.expected[idx], e)
	}
	v.next++
	return nil
}

// Returns error if not all expected emissions were submitted
func (v *Verifier) Done() error {
	if v.next < len(v.expected) {
		return ErrMissedEmissions(v.next, v.expected[v.next])
	}
	return nil
}

type nopSink struct{}

func (nopSink) Submit(IEmission) error { return nil }

// Sends each emission to all sinks, stops on first error
type teeSink []ISink

func (t teeSink) Submit(e IEmission) error {
	for _, s := range t {
		if err := s.Submit(e); err != nil {
			return err
		}
	}
	return nil
}
