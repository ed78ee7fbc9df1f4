package config

import (
	"os"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "mongodb://localhost:27017",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      int
		expected int
	}{
		{
			name:     "valid integer",
			key:      "TEST_INT",
			value:    "42",
			def:      5,
			expected: 42,
		},
		{
			name:     "invalid integer falls back to default",
			key:      "TEST_INT_INVALID",
			value:    "not_a_number",
			def:      5,
			expected: 5,
		},
		{
			name:     "missing variable falls back to default",
			key:      "TEST_INT_MISSING",
			value:    "",
			def:      7,
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := getenvInt(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DUR",
			value:    "30s",
			def:      5 * time.Second,
			expected: 30 * time.Second,
		},
		{
			name:     "invalid duration falls back to default",
			key:      "TEST_DUR_INVALID",
			value:    "thirty",
			def:      5 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "missing variable falls back to default",
			key:      "TEST_DUR_MISSING",
			value:    "",
			def:      2 * time.Minute,
			expected: 2 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", def: false, expected: true},
		{name: "false value", value: "false", def: true, expected: false},
		{name: "numeric true", value: "1", def: false, expected: true},
		{name: "garbage falls back to default", value: "yep", def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL"
			if err := os.Setenv(key, tt.value); err != nil {
				t.Fatalf("failed to set env var: %v", err)
			}
			defer func() {
				if err := os.Unsetenv(key); err != nil {
					t.Errorf("failed to unset env var: %v", err)
				}
			}()

			result := mustBool(key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool(%q) = %v, want %v", tt.value, result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple list",
			input:    "https://a.example.com,https://b.example.com",
			expected: []string{"https://a.example.com", "https://b.example.com"},
		},
		{
			name:     "spaces and quotes stripped",
			input:    ` "10.0.0.0/8" , '192.168.1.1' `,
			expected: []string{"10.0.0.0/8", "192.168.1.1"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "only separators",
			input:    " , , ",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}
