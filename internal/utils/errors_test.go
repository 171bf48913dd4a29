package utils

import (
	"errors"
	"testing"
)

func TestErrorWrappers(t *testing.T) {
	originalErr := errors.New("original error")

	tests := []struct {
		name     string
		wrapper  func(string, error) error
		item     string
		expected string
	}{
		{
			name:     "WrapLoadError",
			wrapper:  WrapLoadError,
			item:     "config",
			expected: "failed to load config: original error",
		},
		{
			name:     "WrapValidateError",
			wrapper:  WrapValidateError,
			item:     "options",
			expected: "failed to validate options: original error",
		},
		{
			name:     "WrapProcessError",
			wrapper:  WrapProcessError,
			item:     "src/app.ts",
			expected: "failed to process src/app.ts: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.wrapper(tt.item, originalErr)
			if result.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Error())
			}

			if !errors.Is(result, originalErr) {
				t.Errorf("wrapped error should be unwrappable to original error")
			}
		})
	}
}
