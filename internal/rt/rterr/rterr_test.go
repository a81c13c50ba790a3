package rterr

import (
	"errors"
	"strings"
	"testing"
)

func TestAllocationFailedFormatsCauseAndType(t *testing.T) {
	err := AllocationFailed("ManagedFile", errors.New("permission denied"))

	if err.Category != CategoryAllocation {
		t.Fatalf("expected category %s, got %s", CategoryAllocation, err.Category)
	}

	msg := err.Error()
	if !strings.Contains(msg, "ManagedFile") || !strings.Contains(msg, "permission denied") {
		t.Fatalf("error message missing expected detail: %s", msg)
	}
}

func TestNewCapturesCallerName(t *testing.T) {
	err := New(CategoryConfig, "X", "boom", nil)

	if err.Caller == "unknown" || err.Caller == "" {
		t.Fatal("expected New to capture a caller name")
	}

	if !strings.Contains(err.Caller, "TestNewCapturesCallerName") {
		t.Fatalf("expected caller to name this test function, got %s", err.Caller)
	}
}

func TestInvalidConfigWrapsPathAndCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := InvalidConfig("/tmp/rt.json", cause)

	if err.Context["path"] != "/tmp/rt.json" {
		t.Fatalf("expected context to carry the path, got %v", err.Context)
	}
}
