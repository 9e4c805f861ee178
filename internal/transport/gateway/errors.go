package gateway

import "fmt"

type StatusCodeError struct {
	Code int
	Body string
}

func NewStatusCodeError(code int, body string) *StatusCodeError {
	return &StatusCodeError{Code: code, Body: body}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d: %s", e.Code, e.Body)
}
