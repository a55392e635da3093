package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies a failed backend call
type Kind string

const (
	// KindNetworkUnavailable means no response reached the client at all
	KindNetworkUnavailable Kind = "NETWORK_UNAVAILABLE"
	// KindUnauthorized is HTTP 401
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindForbidden is HTTP 403
	KindForbidden Kind = "FORBIDDEN"
	// KindRateLimited is HTTP 429
	KindRateLimited Kind = "RATE_LIMITED"
	// KindServerError is HTTP 500
	KindServerError Kind = "SERVER_ERROR"
	// KindOtherHTTP is any other non-2xx status
	KindOtherHTTP Kind = "OTHER_HTTP_ERROR"
	// KindDecode means a 2xx response carried a body that failed to decode
	KindDecode Kind = "DECODE_ERROR"
)

// User-facing messages, one per failure class. Selection is deterministic:
// the same status always produces the same message template.
const (
	MsgNetworkUnavailable = "Backend service unavailable"
	MsgSessionExpired     = "Session expired"
	MsgAccessDenied       = "Access denied"
	MsgTooManyRequests    = "Too many requests"
	MsgServerError        = "Server error"
	MsgGenericError       = "An error occurred"
)

// Error is a classified backend call failure. Message is the user-facing
// toast text; ServerMessage is whatever the backend put in its error body.
type Error struct {
	Kind          Kind
	StatusCode    int
	Message       string
	ServerMessage string
	Err           error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend call failed: %s (status %d)", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("backend call failed: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorBody covers the two error shapes the backends produce: a flat
// {"message": ...} and the {"error": {"message": ...}} envelope.
type errorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// serverMessage extracts the backend-supplied message from an error body,
// or "" when the body has none.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	if eb.Error != nil {
		return eb.Error.Message
	}
	return ""
}

// classifyStatus maps a non-2xx status and its body to a classified error.
// Checked in documented order; 401/403/429 ignore the server message so the
// wording stays consistent across backends.
func classifyStatus(status int, body []byte) *Error {
	msg := serverMessage(body)

	e := &Error{StatusCode: status, ServerMessage: msg}
	switch status {
	case http.StatusUnauthorized:
		e.Kind = KindUnauthorized
		e.Message = MsgSessionExpired
	case http.StatusForbidden:
		e.Kind = KindForbidden
		e.Message = MsgAccessDenied
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.Message = MsgTooManyRequests
	case http.StatusInternalServerError:
		e.Kind = KindServerError
		e.Message = MsgServerError
		if msg != "" {
			e.Message = msg
		}
	default:
		e.Kind = KindOtherHTTP
		e.Message = MsgGenericError
		if msg != "" {
			e.Message = msg
		}
	}
	return e
}
