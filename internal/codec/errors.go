package codec

import "errors"

// Codec errors. Callers map them to caller-facing rejections.
var (
	// ErrDecode is returned when text is not valid in the expected encoding.
	ErrDecode = errors.New("decode failed")

	// ErrLength is returned when decoded bytes have the wrong size for the target type.
	ErrLength = errors.New("unexpected length")
)
