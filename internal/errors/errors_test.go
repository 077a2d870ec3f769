package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("/api/chat", cause)

	expected := "network error at /api/chat: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrNetwork) {
		t.Error("Expected NetworkError to match ErrNetwork")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected NetworkError to unwrap to its cause")
	}
	if errors.Is(err, ErrServer) {
		t.Error("Expected NetworkError not to match ErrServer")
	}
}

func TestServerError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServerError
		expected string
	}{
		{
			name:     "with status",
			err:      NewServerError(503, "/api/files", "Storage not initialized"),
			expected: "server error [503] at /api/files: Storage not initialized",
		},
		{
			name:     "without status",
			err:      NewServerError(0, "/api/chat", "quota exceeded"),
			expected: "server error at /api/chat: quota exceeded",
		},
		{
			name:     "empty reason",
			err:      NewServerError(200, "/api/chat", ""),
			expected: "server error [200] at /api/chat: no reason given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Error() = %s, want %s", tt.err.Error(), tt.expected)
			}
			if !IsServerError(tt.err) {
				t.Error("IsServerError() = false, want true")
			}
		})
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("/health", "body is not JSON")

	expected := "parse error at /health: body is not JSON"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("Expected ParseError to match ErrInvalidResponse")
	}
}

func TestTimeoutError(t *testing.T) {
	if got := NewTimeoutError("").Error(); got != "request timed out" {
		t.Errorf("Error() = %s, want %s", got, "request timed out")
	}
	if got := NewTimeoutError("/api/chat").Error(); got != "request timed out: /api/chat" {
		t.Errorf("Error() = %s, want %s", got, "request timed out: /api/chat")
	}
	if !IsTimeoutError(NewTimeoutError("x")) {
		t.Error("IsTimeoutError() = false, want true")
	}
}

func TestClassifiers_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("refresh failed: %w", NewNetworkError("/api/files", nil))

	if !IsNetworkError(wrapped) {
		t.Error("IsNetworkError() should see through wrapping")
	}
	if IsParseError(wrapped) || IsServerError(wrapped) || IsTimeoutError(wrapped) {
		t.Error("wrapped NetworkError matched another class")
	}
	if got := GetEndpoint(wrapped); got != "/api/files" {
		t.Errorf("GetEndpoint() = %q, want %q", got, "/api/files")
	}
}

func TestReasonAndStatus(t *testing.T) {
	err := fmt.Errorf("delete: %w", NewServerError(404, "/api/files/a.txt", "Failed to delete 'a.txt'"))

	if got := Reason(err); got != "Failed to delete 'a.txt'" {
		t.Errorf("Reason() = %q", got)
	}
	if got := GetHTTPStatus(err); got != 404 {
		t.Errorf("GetHTTPStatus() = %d, want 404", got)
	}

	plain := errors.New("boom")
	if Reason(plain) != "" || GetHTTPStatus(plain) != 0 || GetEndpoint(plain) != "" {
		t.Error("plain error should carry no structured details")
	}
}
