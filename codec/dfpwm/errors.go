package dfpwm

import "errors"

// ErrInvalidArgument is wrapped by every validation error in this package.
// It is the only error class the codec produces; encoding and decoding
// themselves never fail.
var ErrInvalidArgument = errors.New("invalid argument")
