package frechetgrid

import "errors"

// ErrBadError is returned when an error rate outside (0, 1] is supplied.
var ErrBadError = errors.New("frechetgrid: error rate must be in (0, 1]")
