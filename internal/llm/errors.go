package llm

import (
	"errors"
	"net"
)

// Failures surfaced by Generate. Callers in this module only distinguish
// "fall back" from "context done", but the observer records which one hit.
var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("llm backend unavailable")
	// ErrTimeout means the task deadline passed before a reply arrived.
	ErrTimeout = errors.New("llm request timed out")
	// ErrInvalidOutput means a reply arrived but did not hold the expected JSON.
	ErrInvalidOutput = errors.New("invalid llm output format")
	// ErrRetryExhausted wraps the last error once every attempt failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	ErrMissingAPIKey   = errors.New("llm api key not set")
	ErrUnknownProvider = errors.New("unknown llm provider")
)

// errorCode is the short label logged with a failed LLMCallEvent.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrMissingAPIKey):
		return "NO_API_KEY"
	default:
		return "UNKNOWN"
	}
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return err != nil && errors.As(err, &netErr)
}
