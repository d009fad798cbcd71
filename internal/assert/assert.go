package assert

import (
	"errors"
	"testing"
)

/**
 * Asserts that the expected and actual values are equal.
 */
func Equal(t *testing.T, expected interface{}, actual interface{}) {
	if expected != actual {
		t.Helper()
		t.Errorf("Expected %T(%v) but was %T(%v)", expected, expected, actual, actual)
	}
}

/**
 * Asserts that the actual value is true.
 */
func True(t *testing.T, actual bool) {
	if !actual {
		t.Helper()
		t.Errorf("Expected true but was %T(%v)", actual, actual)
	}
}

/**
 * Asserts that the actual value is false.
 */
func False(t *testing.T, actual bool) {
	if actual {
		t.Helper()
		t.Errorf("Expected false but was %T(%v)", actual, actual)
	}
}

/**
 * Asserts that the error is nil.
 */
func NoError(t *testing.T, err error) {
	if err != nil {
		t.Helper()
		t.Errorf("Expected no error but was %v", err)
	}
}

/**
 * Asserts that the error wraps the expected target.
 */
func ErrorIs(t *testing.T, target error, err error) {
	if !errors.Is(err, target) {
		t.Helper()
		t.Errorf("Expected error wrapping %v but was %v", target, err)
	}
}

/**
 * Asserts that the function panics with the expected object.
 */
func PanicsWith(t *testing.T, expected any, f func()) {
	defer func() {
		if r := recover(); r != nil {
			Equal(t, expected, r)
		} else {
			t.Errorf("Expected a panic, but got nil")
		}
	}()
	f()
}

/**
 * Asserts that the function panics with an error wrapping the expected target.
 */
func PanicsWithErrorIs(t *testing.T, target error, f func()) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				t.Errorf("Expected a panic with error, but got %T(%v)", r, r)
				return
			}
			ErrorIs(t, target, err)
		} else {
			t.Errorf("Expected a panic, but got nil")
		}
	}()
	f()
}
