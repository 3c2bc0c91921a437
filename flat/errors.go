package flat

import "errors"

var (
	// ErrNoRecognizers indicates an empty RecognizerLengths slice.
	ErrNoRecognizers = errors.New("flat: no recognizers")

	// ErrShapeMismatch indicates input buffers whose lengths disagree with the chain.
	ErrShapeMismatch = errors.New("flat: buffer shape mismatch")

	// ErrOutputSize indicates an output buffer too short for the chain.
	ErrOutputSize = errors.New("flat: output buffer too small")

	// ErrBadMaxLength indicates a non-positive MaxLength in tabulated mode.
	ErrBadMaxLength = errors.New("flat: max length must be positive")
)
