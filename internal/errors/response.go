package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrorDetail is the inner payload of an API error response.
type ErrorDetail struct {
	Message string                 `json:"message"`
	Hint    string                 `json:"hint,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the JSON body returned for all API errors.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse converts any error into the API error response shape.
// Hints and reportable details survive; raw wrapped causes do not leak.
func NewErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message: err.Error(),
		},
	}

	var ie *InternalError
	if errors.As(err, &ie) {
		resp.Error.Hint = ie.Hint()
		resp.Error.Details = ie.ReportableDetails()
	}

	return resp
}

// HTTPStatusFromErr maps a classified error to an HTTP status code.
func HTTPStatusFromErr(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidDateFormat),
		errors.Is(err, ErrDateRangeTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrDatabase), errors.Is(err, ErrSystem):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
