package glade

import "errors"

var (
	// ErrParse marks unreadable or malformed source documents. Wrapped
	// errors carry a "phase=parse" prefix and line info when the decoder
	// provides it.
	ErrParse = errors.New("cannot parse glade document")

	// ErrEmptyModel is returned when no id-bearing object exists anywhere
	// in the document, so there is nothing to generate code for.
	ErrEmptyModel = errors.New("no usable objects found")

	// ErrUnknownTemplate is returned for template names outside the
	// embedded template set.
	ErrUnknownTemplate = errors.New("unknown template name")
)
