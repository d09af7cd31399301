// Package validation holds the pure field and business-hour rules for
// reservations and tables.  Every function here is side-effect free:
// callers pass the candidate values (and the current time, so tests can
// pin the clock) and get back either nil or an *Error naming the first
// rule that failed.  Rules are applied in a fixed order; the first
// failure wins.
package validation

// Error describes a single violated rule.  Field names the offending
// input field and Message is safe to return to the client verbatim.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// failf builds an *Error for the given field.
func failf(field, message string) *Error {
	return &Error{Field: field, Message: message}
}
