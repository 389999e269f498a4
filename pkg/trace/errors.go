/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package trace

import "github.com/voedger/cbuffer/pkg/ptypes"

func ErrUnexpectedEmission(idx int, e IEmission) error {
	return ptypes.ErrStructuralIntegrity("unexpected emission #%d «%v»", idx, e)
}

func ErrEmissionMismatch(idx int, expected, actual IEmission) error {
	return ptypes.ErrStructuralIntegrity("emission #%d mismatch: expected «%v», got «%v»", idx, expected, actual)
}

func ErrMissedEmissions(idx int, expected IEmission) error {
	return ptypes.ErrStructuralIntegrity("emission #%d «%v» and following were not submitted", idx, expected)
}
