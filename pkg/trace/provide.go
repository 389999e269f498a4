/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package trace

import "github.com/google/uuid"

func NewRecorder() *Recorder {
	return &Recorder{runID: uuid.New()}
}

func NewVerifier(expected ...IEmission) *Verifier {
	return &Verifier{expected: expected}
}

// Returns sink which ignores all emissions
func NewNopSink() ISink { return nopSink{} }

func NewTee(sinks ...ISink) ISink { return teeSink(sinks) }
