package errors

import "net/http"

// NotFound reports a missing entity or referent by its type name,
// e.g. "Project not found".
func NotFound(entity string) *Exception {
	return &Exception{
		Message:    entity + " not found",
		StatusCode: http.StatusNotFound,
	}
}
