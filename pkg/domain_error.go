package pkg

import "fmt"

// DomainError is the structured error payload handlers return to clients.
//
// Codes in use: VALIDATION_ERROR, CONFIGURATION_ERROR, CREDENTIALS_NOT_FOUND,
// PROCESSOR_DECLINED, PROCESSOR_FAULT, VOID_REQUIRED, NOT_FOUND.

type DomainError struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	HTTPStatus    int    `json:"-"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDomainErrorSimple builds a DomainError with just code/message/status.
func NewDomainErrorSimple(code, message string, httpStatus int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewDomainErrorWithCorrelation tags the error with a correlation id so a
// client report can be matched to server logs.
func NewDomainErrorWithCorrelation(code, message string, httpStatus int, correlationID string) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus, CorrelationID: correlationID}
}

// HTTPError is the JSON body rendered for clients.

type HTTPError struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// ToHTTPError converts a DomainError into its response body.
func (e *DomainError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, CorrelationID: e.CorrelationID}
}
