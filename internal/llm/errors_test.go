package llm

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrTimeout, "TIMEOUT"},
		{ErrUnavailable, "UNAVAILABLE"},
		{fmt.Errorf("decode: %w", ErrInvalidOutput), "INVALID_OUTPUT"},
		{fmt.Errorf("%w: gemini", ErrMissingAPIKey), "NO_API_KEY"},
		{fmt.Errorf("%w: boom", ErrRetryExhausted), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorCode(tt.err), "%v", tt.err)
	}
}

func TestIsConnectionError(t *testing.T) {
	assert.False(t, isConnectionError(nil))
	assert.False(t, isConnectionError(errors.New("plain")))
	assert.True(t, isConnectionError(fmt.Errorf("post: %w", &net.OpError{Op: "dial", Err: errors.New("refused")})))
}
