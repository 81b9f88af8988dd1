package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Fallback messages shown when the backend provides none.
const (
	msgSomethingWentWrong = "Something went wrong"
	msgInvalidCredentials = "Invalid email or password"
)

// Error is the normalized failure shape every call returns: a human-readable
// message plus the HTTP status when one was observed. Transport failures
// carry no status.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// AsError unwraps err into the normalized shape, if it carries one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func normalizeTransport(err error) *Error {
	msg := msgSomethingWentWrong
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Message: msg}
}

// normalizeFailure maps a non-2xx response to Error. Login failures get a
// friendlier fallback so the login form can show it verbatim.
func normalizeFailure(path string, status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	if strings.Contains(path, "/login") && (status == http.StatusUnauthorized || status == http.StatusBadRequest) {
		if payload.Message == "" {
			payload.Message = msgInvalidCredentials
		}
		return &Error{Message: payload.Message, Status: status}
	}
	if payload.Message == "" {
		payload.Message = msgSomethingWentWrong
	}
	return &Error{Message: payload.Message, Status: status}
}
