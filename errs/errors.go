// Package errs defines sentinel error values shared across laxjson packages.
package errs

import "errors"

var (
	// ErrInvalidJSON indicates the input byte stream is not syntactically valid JSON.
	// It is the only hard failure laxjson produces; everything past the decode
	// boundary degrades to Null / no-value results instead of erroring.
	ErrInvalidJSON = errors.New("invalid JSON payload")

	// ErrUnknownCompression indicates an unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrInvalidPrimitiveKind indicates a primitive kind outside the
	// bool/int/double/string/date set.
	ErrInvalidPrimitiveKind = errors.New("invalid primitive kind")

	// ErrEmptySource indicates an empty source name was passed to a snapshot store.
	ErrEmptySource = errors.New("empty source name")
)
