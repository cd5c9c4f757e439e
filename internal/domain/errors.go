package domain

import "errors"

// ErrMalformedPayload reports source data that does not match the expected
// shape. The whole run aborts before matching; there is no partial
// reconciliation. A mismatch found by the comparator is a normal result, not
// an error.
var ErrMalformedPayload = errors.New("malformed source payload")
