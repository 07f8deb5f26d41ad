package recogniser

import "errors"

// ErrInvalidSpec reports a malformed or internally inconsistent
// recogniser definition. All loader and validation failures wrap it, so
// callers can match the whole class with errors.Is.
var ErrInvalidSpec = errors.New("recogniser: invalid spec")
