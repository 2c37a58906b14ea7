package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "without details",
			err:      NewDomainError("PM-TEST-1000", "test message"),
			expected: "[PM-TEST-1000] test message",
		},
		{
			name:     "with details",
			err:      NewDomainError("PM-TEST-1001", "test message").WithDetails("post.txt"),
			expected: "[PM-TEST-1001] test message: post.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	a := NewDomainError("PM-TEST-1000", "message 1")
	b := NewDomainError("PM-TEST-1000", "message 2")
	c := NewDomainError("PM-TEST-1001", "message 1")

	if !errors.Is(a, b) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(a, c) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(a, fmt.Errorf("plain")) {
		t.Error("errors.Is should not match a plain error")
	}
}

func TestDomainError_WithCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := ErrReadSource.WithDetails("post.txt").WithCause(cause)

	if ErrReadSource.Cause != nil || ErrReadSource.Details != "" {
		t.Error("sentinel must not be modified")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, ErrReadSource) {
		t.Error("errors.Is should still match the sentinel")
	}
}

func TestIsDomainError(t *testing.T) {
	wrapped := fmt.Errorf("scan: %w", ErrInputTooLarge)

	if !IsDomainError(wrapped, "PM-INPUT-4130") {
		t.Error("IsDomainError should see through wrapping")
	}
	if !IsDomainError(wrapped, "") {
		t.Error("IsDomainError with empty code should match any DomainError")
	}
	if IsDomainError(wrapped, "PM-INPUT-4000") {
		t.Error("IsDomainError should not match another code")
	}
	if IsDomainError(fmt.Errorf("plain"), "") {
		t.Error("IsDomainError should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"domain error", ErrEmptyInput, "PM-INPUT-4001"},
		{"wrapped", fmt.Errorf("x: %w", ErrInvalidToken), "PM-INPUT-4000"},
		{"plain", fmt.Errorf("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err  *DomainError
		code string
	}{
		{ErrInvalidToken, "PM-INPUT-4000"},
		{ErrEmptyInput, "PM-INPUT-4001"},
		{ErrInputTooLarge, "PM-INPUT-4130"},
		{ErrReadSource, "PM-IO-5000"},
		{ErrWriteOutput, "PM-IO-5001"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if tt.err.Message == "" {
				t.Error("Message should not be empty")
			}
		})
	}
}

func TestReport_Found(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{"empty", Report{Source: "stdin"}, false},
		{"key only", Report{PublicKey: "abc"}, true},
		{"payload only", Report{Payload: "🎼x:||"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.Found(); got != tt.want {
				t.Errorf("Found() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateScanID(t *testing.T) {
	id, err := GenerateScanID()
	if err != nil {
		t.Fatalf("GenerateScanID() error = %v", err)
	}
	if len(id) != 31 {
		t.Errorf("len(id) = %d, want 31", len(id))
	}
	if id[:len(ScanIDPrefix)] != ScanIDPrefix {
		t.Errorf("id %q missing prefix", id)
	}

	other, _ := GenerateScanID()
	if other == id {
		t.Error("GenerateScanID() returned duplicate IDs")
	}
}
