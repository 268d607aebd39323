package util

import (
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2KB", 2048},
		{"10MB", 10 * 1024 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"512", 512},
		{" 2kb ", 2048},
		{"", 4096},
		{"garbage", 4096},
	}
	for _, tt := range tests {
		if got := ParseSize(tt.in, 4096); got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("super-secret-key", 4); got != "supe***" {
		t.Errorf("MaskSecret = %q", got)
	}
	if got := MaskSecret("ab", 4); got != "***" {
		t.Errorf("short secret should be fully masked, got %q", got)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world\n "); got != "helloworld" {
		t.Errorf("SanitizeString = %q", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("markup survived escaping: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped markup, got %q", got)
	}
}

func TestTruncateReference(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"normal", "Rent March", "Rent March"},
		{"empty falls back", "   ", "Transfer"},
		{"long is capped", strings.Repeat("a", 300), strings.Repeat("a", 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateReference(tt.in, 200, "Transfer"); got != tt.want {
				t.Errorf("TruncateReference = %q, want %q", got, tt.want)
			}
		})
	}
}
