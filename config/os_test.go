package config

import (
	"os"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "site", "site"},
		{"separator", "a" + sep + "b", "ab"},
		{"leading dots", "..hidden", "hidden"},
		{"control", "tab\there", "tabhere"},
		{"nothing left", "..", badFileName},
		{"empty", "", badFileName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFileName(tt.in); got != tt.want {
				t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
