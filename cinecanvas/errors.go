package cinecanvas

import "errors"

// Parse failures. Everything not covered here is tolerated by the builder.
var (
	ErrMalformedTiming          = errors.New("malformed timing")
	ErrMissingRequiredAttribute = errors.New("missing required attribute")
	ErrStructuralViolation      = errors.New("structural violation")
	ErrInvalidFieldValue        = errors.New("invalid field value")
)
