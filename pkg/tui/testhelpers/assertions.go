package testhelpers

import (
	"strings"
	"testing"

	"github.com/pluqqy/drumroll/pkg/datepicker"
)

// AssertDate checks a date tuple
func AssertDate(t *testing.T, expected, actual datepicker.Date) {
	t.Helper()

	if expected != actual {
		t.Errorf("Date mismatch: expected %s, got %s", expected, actual)
	}
}

// AssertContains checks if a string contains a substring
func AssertContains(t *testing.T, str, substr string) {
	t.Helper()

	if !strings.Contains(str, substr) {
		t.Errorf("String does not contain expected substring.\nString: %q\nExpected substring: %q", str, substr)
	}
}

// AssertNotContains checks if a string does not contain a substring
func AssertNotContains(t *testing.T, str, substr string) {
	t.Helper()

	if strings.Contains(str, substr) {
		t.Errorf("String contains unexpected substring.\nString: %q\nUnexpected substring: %q", str, substr)
	}
}
