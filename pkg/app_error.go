package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the error shape returned by every handler.
//
// Code is kept for logs; the wire body only carries error/detail/issues.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	Issues     map[string]string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Error  string            `json:"error"`
	Detail string            `json:"detail,omitempty"`
	Issues map[string]string `json:"issues,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError wraps an underlying error. Its message is exposed as detail
// so operators can diagnose 500s without reading logs.
func NewDomainError(code, message string, err error, status int) *AppError {
	appErr := &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
	if err != nil {
		appErr.Detail = err.Error()
	}
	return appErr
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError builds a 400 with field level issues.
func NewValidationError(message string, issues map[string]string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		Issues:     issues,
		HTTPStatus: http.StatusBadRequest,
	}
}

// WithDetail returns a copy of the error carrying detail.
func (e *AppError) WithDetail(detail string) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Error:  e.Message,
		Detail: e.Detail,
		Issues: e.Issues,
	}
}
