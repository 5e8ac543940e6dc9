package convert

import "errors"

var (
	// ErrUnresolvableFontContext is returned when neither local nor inherited
	// font context provides a face.
	ErrUnresolvableFontContext = errors.New("unresolvable font context")
	// ErrUnsupportedContent means parser produced content emitter does not
	// know about.
	ErrUnsupportedContent = errors.New("unsupported content")
	ErrInvalidOptions     = errors.New("invalid conversion options")
)
