package errors

// ValidationException collects every violated field of a request payload so
// the client sees all problems at once, not just the first.
type ValidationException struct {
	Fields map[string]string
}

func (e *ValidationException) Error() string {
	return "validation failed"
}

func NewValidation(fields map[string]string) *ValidationException {
	return &ValidationException{Fields: fields}
}
