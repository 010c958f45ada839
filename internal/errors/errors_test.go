package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAllTypedErrorsMatchRequestFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network", NewNetworkError("http://x/chat", errors.New("refused"))},
		{"api", NewAPIError(500, "http://x/chat", "boom")},
		{"parse", NewParseError("bad body")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrRequestFailed) {
				t.Errorf("%v does not match ErrRequestFailed", tt.err)
			}
		})
	}
}

func TestParseErrorMatchesInvalidResponse(t *testing.T) {
	err := NewParseError("bad body")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("%v does not match ErrInvalidResponse", err)
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("request failed: %w", NewAPIError(503, "http://x/chat", "unavailable"))

	if !errors.Is(err, ErrRequestFailed) {
		t.Errorf("wrapped error does not match ErrRequestFailed")
	}
	if got := GetHTTPStatus(err); got != 503 {
		t.Errorf("GetHTTPStatus = %d, want 503", got)
	}
	if got := GetEndpoint(err); got != "http://x/chat" {
		t.Errorf("GetEndpoint = %q", got)
	}
}

func TestHelpers(t *testing.T) {
	netErr := NewNetworkError("http://x/chat", errors.New("refused"))
	parseErr := NewParseError("bad")
	apiErr := NewAPIError(404, "http://x/chat", "missing")

	if !IsNetworkError(netErr) {
		t.Error("IsNetworkError(netErr) = false")
	}
	if IsNetworkError(apiErr) {
		t.Error("IsNetworkError(apiErr) = true")
	}
	if !IsParseError(parseErr) {
		t.Error("IsParseError(parseErr) = false")
	}
	if IsParseError(netErr) {
		t.Error("IsParseError(netErr) = true")
	}
	if GetHTTPStatus(netErr) != 0 {
		t.Error("GetHTTPStatus(netErr) != 0")
	}
	if GetEndpoint(netErr) != "http://x/chat" {
		t.Errorf("GetEndpoint(netErr) = %q", GetEndpoint(netErr))
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"api with status",
			NewAPIError(500, "http://x/chat", "boom"),
			"API error [500] at http://x/chat: boom",
		},
		{
			"api without status",
			NewAPIError(0, "http://x/chat", "boom"),
			"API error at http://x/chat: boom",
		},
		{
			"parse",
			NewParseError("bad body"),
			"parse error: bad body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewNetworkError("http://x/chat", inner)

	if !errors.Is(err, inner) {
		t.Error("NetworkError does not unwrap to its cause")
	}
}
