package version

import (
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{
			name:     "release version with commit",
			version:  "1.0.0",
			commit:   "abc1234",
			expected: "1.0.0+abc1234",
		},
		{
			name:     "unknown commit shows only version",
			version:  "1.0.0",
			commit:   "unknown",
			expected: "1.0.0",
		},
		{
			name:     "development build",
			version:  "development",
			commit:   "unknown",
			expected: "development",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion := Version
			origCommit := Commit
			defer func() {
				Version = origVersion
				Commit = origCommit
			}()

			Version = tt.version
			Commit = tt.commit

			if got := String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
