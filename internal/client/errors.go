package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ClientError represents an error encountered when communicating with the
// study backend API.
// StatusCode 0 = network/connection error, >0 = HTTP response received
type ClientError struct {
	StatusCode  int    `json:"status_code"`
	UserMessage string `json:"user_message"`
	LogMessage  string `json:"log_message"`
}

func (e *ClientError) Error() string {
	return e.LogMessage
}

// UserError returns the user-friendly message
func (e *ClientError) UserError() string {
	return e.UserMessage
}

// NewClientConnectionError creates a ClientError for network/connection issues
func NewClientConnectionError(err error) *ClientError {
	return &ClientError{
		StatusCode:  0,
		UserMessage: "Unable to connect. Please check your internet connection and try again.",
		LogMessage:  fmt.Sprintf("network error: %v", err),
	}
}

// NewClientInternalError creates a ClientError for internal errors, supply the
// error and an explanation of what was being done when the error occurred
func NewClientInternalError(err error, while string) *ClientError {
	return &ClientError{
		StatusCode:  0,
		UserMessage: "An error occurred. Please try again later.",
		LogMessage:  fmt.Sprintf("internal error: %v while %v", err, while),
	}
}

// NewClientApiError creates a ClientError from an HTTP error response sent by
// the study backend
func NewClientApiError(res *http.Response) *ClientError {
	var serverErr struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}

	if res.Body != nil {
		_ = json.NewDecoder(res.Body).Decode(&serverErr)
	}
	serverMsg := serverErr.Detail
	if serverMsg == "" {
		serverMsg = serverErr.Message
	}

	var userMsg string
	switch res.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		userMsg = "You are not authorized to perform this action."
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		// use the server message for validation errors if available
		if serverMsg != "" {
			userMsg = serverMsg
		} else {
			userMsg = "Invalid request. Please check your input and try again."
		}
	case http.StatusTooManyRequests:
		userMsg = "Too many requests. Please try again in a few moments."
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		userMsg = "The study service is temporarily unavailable. Please try again later."
	default:
		userMsg = "An error occurred. Please try again."
	}

	logMsg := fmt.Sprintf("backend status %d", res.StatusCode)
	if serverMsg != "" {
		logMsg += fmt.Sprintf(" - %s", serverMsg)
	}

	return &ClientError{
		StatusCode:  res.StatusCode,
		UserMessage: userMsg,
		LogMessage:  logMsg,
	}
}

// ForbiddenError is returned when an authenticated endpoint answers 403.
//
// Unlike other failures the response body is parsed and preserved: the backend
// uses 403 bodies to tell the participant why access was refused ("study
// complete", "already submitted", token expired), and the caller needs to
// render that reason rather than a generic failure.
type ForbiddenError struct {
	Body map[string]any
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %v", e.Body)
}

// parseForbidden decodes a 403 body into a ForbiddenError. An unparseable
// body yields an empty map rather than a decode failure - the status alone is
// informative enough.
func parseForbidden(res *http.Response) *ForbiddenError {
	body := map[string]any{}
	if res.Body != nil {
		_ = json.NewDecoder(res.Body).Decode(&body)
	}
	return &ForbiddenError{Body: body}
}
