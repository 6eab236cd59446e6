package pkg

import "fmt"

// FieldDetail describes one invalid input field.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError carries an HTTP-facing error code next to the underlying cause.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []FieldDetail
}

// HTTPError is the JSON body written for every failed request.
type HTTPError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// WithDetails returns a copy of e carrying details.
func (e *AppError) WithDetails(details []FieldDetail) *AppError {
	cp := *e
	cp.Details = details
	return &cp
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

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
