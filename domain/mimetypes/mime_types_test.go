package mimetypes

import (
	"testing"

	"github.com/gabriel-vasile/mimetype"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		// Text types
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"CSV", "text/csv", TextCSV, true},
		{"CSV with charset", "text/csv; charset=utf-8", TextCSV, true},
		{"TSV", "text/tab-separated-values", TextTSV, true},

		// Fallback / mismatch
		{"Mismatch", "text/plain; charset=utf-8", TextCSV, false},
		{"Binary", "application/octet-stream", TextPlain, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			if ok != tt.want {
				t.Errorf("Matches(%q, %q) = %v; want %v", tt.detected, tt.expected, ok, tt.want)
			}
		})
	}
}

func TestIsTabular(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"CSV table", []byte("address,amount\nx,1\ny,2\n"), true},
		{"Header only", []byte("address\n"), true},
		{"PNG image", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), false},
		{"Binary blob", []byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe, 0x00}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTabular(mimetype.Detect(tt.content)); got != tt.want {
				t.Errorf("IsTabular(%q) = %v; want %v", tt.content, got, tt.want)
			}
		})
	}
}
