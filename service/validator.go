package service

import (
	"errors"
	"math"
)

// ValidationError reports a savings report that was rejected before
// reaching the store. Handlers translate it to a client error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err is a request-level rejection
// rather than a storage failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateSavings checks a reported savings amount against the anti-cheat
// plausibility bounds. Zero is allowed. Pure function of its input.
func ValidateSavings(carbonSavedKG, maxPerDay float64) error {
	if math.IsNaN(carbonSavedKG) || math.IsInf(carbonSavedKG, 0) {
		return &ValidationError{Reason: "Carbon saved must be a number."}
	}
	if carbonSavedKG < 0 {
		return &ValidationError{Reason: "Carbon saved must be positive."}
	}
	if carbonSavedKG > maxPerDay {
		return &ValidationError{Reason: "Reported savings exceed realistic thresholds."}
	}
	return nil
}
