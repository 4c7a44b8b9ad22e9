package main

import (
	"strings"
	"testing"
)

func TestReportResult(t *testing.T) {
	tests := []struct {
		name    string
		result  *SubmissionResult
		wantErr string
	}{
		{
			name:   "redirect success",
			result: &SubmissionResult{Status: StatusSuccess, StatusCode: 302, Location: "/admin/uploads/42"},
		},
		{
			name:   "plain success",
			result: &SubmissionResult{Status: StatusSuccess, StatusCode: 201},
		},
		{
			name:    "validation failure",
			result:  &SubmissionResult{Status: StatusValidationFailed, StatusCode: 422, Errors: []string{"Content can't be blank"}},
			wantErr: "rejected",
		},
		{
			name:    "unexpected status",
			result:  &SubmissionResult{Status: StatusUnexpected, StatusCode: 500},
			wantErr: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reportResult(tt.result)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("reportResult() error = %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("reportResult() should return error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("reportResult() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestTokenPreview(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"0123456789abcdefghijKLMNOPQRST", "0123456789...KLMNOPQRST (truncated)"},
		{"shorttoken", "shorttoken"},
		{"exactlytwentychars!!", "exactlytwentychars!!"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := tokenPreview(tt.token); got != tt.want {
			t.Errorf("tokenPreview(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate() = %q, want %q", got, "hello")
	}
	if got := truncate("hello world", 5); got != "hello..." {
		t.Errorf("truncate() = %q, want %q", got, "hello...")
	}
}
