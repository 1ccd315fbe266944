package worker

import (
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", "Alex Morgan", "Alex Morgan"},
		{"Empty", "", ""},
		{"Leading and trailing space", "  Alex Morgan \t", "Alex Morgan"},
		{"Inner whitespace collapsed", "Alex \t  Morgan", "Alex Morgan"},
		{"Control characters dropped", "Alex\x00 Mor\x07gan", "Alex Morgan"},
		{"Newline is whitespace", "Alex\nMorgan", "Alex Morgan"},
		{"Only whitespace", " \t\n ", ""},
		{"Unicode kept", "José  Müller", "José Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeName(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeName(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func BenchmarkSanitizeName(b *testing.B) {
	input := "  Alex \t Morgan   de   la  Cruz "
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitizeName(input)
	}
}
