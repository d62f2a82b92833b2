package main

import "testing"

// TestEnvFloat verifies the environment fallback parsing: unset and
// malformed values yield the zero default, valid values parse through.
func TestEnvFloat(t *testing.T) {
	cases := []struct {
		name  string
		value string
		set   bool
		want  float64
	}{
		{"unset", "", false, 0},
		{"empty", "", true, 0},
		{"malformed", "tall", true, 0},
		{"integer", "170", true, 170},
		{"decimal", "62.5", true, 62.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const key = "DRI_TEST_FLOAT"
			if tc.set {
				t.Setenv(key, tc.value)
			}
			if got := envFloat(key); got != tc.want {
				t.Errorf("envFloat(%q)=%v with value %q, want %v", key, got, tc.value, tc.want)
			}
		})
	}
}

// TestEnvOr verifies that a set variable wins over the fallback and an unset
// or empty one does not.
func TestEnvOr(t *testing.T) {
	const key = "DRI_TEST_STRING"

	if got := envOr(key, "inactive"); got != "inactive" {
		t.Errorf("envOr unset = %q, want fallback", got)
	}

	t.Setenv(key, "")
	if got := envOr(key, "inactive"); got != "inactive" {
		t.Errorf("envOr empty = %q, want fallback", got)
	}

	t.Setenv(key, "very_active")
	if got := envOr(key, "inactive"); got != "very_active" {
		t.Errorf("envOr set = %q, want env value", got)
	}
}
