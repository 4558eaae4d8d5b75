package icon

import "errors"

var (
	// ErrNoCandidate means no frame has both dimensions divisible by the
	// target size. The input asset is unusable; there is no fallback frame.
	ErrNoCandidate = errors.New("icon: no sub-icon divisible by target size found")
	// ErrInvalidSize is returned when an image handed to an encoder is not
	// exactly the target size.
	ErrInvalidSize = errors.New("icon: image is not the target size")
)

// CodecError wraps a failure raised while reading or writing an image
// container.
type CodecError struct {
	Op  string
	Err error
}

func (e *CodecError) Error() string { return "icon: " + e.Op + ": " + e.Err.Error() }

func (e *CodecError) Unwrap() error { return e.Err }
