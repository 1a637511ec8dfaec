package repository

import "errors"

// ErrStatusChanged is returned by a conditional status update when the row no longer has the expected status
var ErrStatusChanged = errors.New("status changed by another update")
