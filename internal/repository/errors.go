package repository

import "errors"

// ErrNotFound is returned when a query addressed a specific row and the
// row does not exist. The service layer maps it to a 404; the caller can
// tell it apart from validation and constraint failures.
var ErrNotFound = errors.New("record not found")
