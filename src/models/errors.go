package models

import "errors"

// ErrUnknownValue is returned when a value falls outside a closed enumeration.
var ErrUnknownValue = errors.New("unknown value")
