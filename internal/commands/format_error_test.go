package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "policyadvisor/internal/errors"
)

func TestFormatErrorMessageNil(t *testing.T) {
	if got := formatErrorMessage(nil, "ctx"); got != "" {
		t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
	}
}

func TestFormatErrorMessageAPIError(t *testing.T) {
	err := apierrors.NewAPIError(500, "http://x/chat", "boom")
	out := formatErrorMessage(err, "Request failed")

	if !strings.Contains(out, "Request failed") {
		t.Errorf("context missing from %q", out)
	}
	if !strings.Contains(out, "HTTP Status: 500") {
		t.Errorf("status missing from %q", out)
	}
	if !strings.Contains(out, "Endpoint: http://x/chat") {
		t.Errorf("endpoint missing from %q", out)
	}
}

func TestFormatErrorMessageNetworkHint(t *testing.T) {
	err := apierrors.NewNetworkError("http://x/chat", errors.New("connection refused"))
	out := formatErrorMessage(err, "Request failed")

	if !strings.Contains(out, "advisor service is running") {
		t.Errorf("network hint missing from %q", out)
	}
}

func TestFormatErrorMessageParseHint(t *testing.T) {
	err := apierrors.NewParseError("bad body")
	out := formatErrorMessage(err, "Request failed")

	if !strings.Contains(out, "unexpected payload") {
		t.Errorf("parse hint missing from %q", out)
	}
}

func TestRunQueryEmptyQuestion(t *testing.T) {
	if err := runQuery("   ", true); err == nil {
		t.Error("runQuery accepted a whitespace-only question")
	}
}
