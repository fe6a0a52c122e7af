package wire

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps one of these, so callers
// can classify with errors.Is(err, ErrFormat) and friends.
var (
	ErrValidation = errors.New("rowfile: validation error")
	ErrFormat     = errors.New("rowfile: format error")
	ErrUsage      = errors.New("rowfile: usage error")
)

var (
	ErrBadSignature       = fmt.Errorf("%w: invalid signature", ErrFormat)
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported version", ErrFormat)
	ErrBadSchema          = fmt.Errorf("%w: bad schema encoding", ErrFormat)
	ErrBadRow             = fmt.Errorf("%w: bad row encoding", ErrFormat)

	ErrNoTable         = fmt.Errorf("%w: table does not expose rows and a schema", ErrValidation)
	ErrSchemaMismatch  = fmt.Errorf("%w: row does not match schema", ErrValidation)
	ErrNotNullable     = fmt.Errorf("%w: null value in non-nullable column", ErrValidation)
	ErrVarTooLong      = fmt.Errorf("%w: variable-length value exceeds u32", ErrValidation)
	ErrUnsupportedType = fmt.Errorf("%w: unsupported column type", ErrValidation)

	ErrIterationInProgress = fmt.Errorf("%w: iteration already in progress", ErrUsage)
)
