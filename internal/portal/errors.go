package portal

import "errors"

// ErrStatus marks a response with a non-success HTTP status. Callers match it
// with errors.Is when they need to distinguish a portal rejection from a
// transport failure.
var ErrStatus = errors.New("unexpected response status")
