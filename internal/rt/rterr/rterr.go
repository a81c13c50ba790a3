// Package rterr provides standardized error messaging for the managed
// object runtime, in the same shape the rest of the Orizon tree uses
// (see internal/errors.StandardError): a category, a code, a free-form
// message, structured context, and the caller that raised it.
//
// §7 of the spec splits errors into two categories: programmer misuse
// (undefined behavior, not detected — dereferencing an empty Ref, a
// ForEachChild that lies about its fields) and resource exhaustion during
// allocation, which propagates. rterr covers the second category, plus two
// diagnostics outside that split: failed downcasts logged by rt_strict
// builds, and malformed rtconfig files. It is not used to paper over the
// first.
package rterr

import (
	"fmt"
	"runtime"
)

// Category groups related failures.
type Category string

const (
	CategoryAllocation Category = "ALLOCATION"
	CategoryDowncast   Category = "DOWNCAST"
	CategoryConfig     Category = "CONFIG"
)

// Error is the runtime's standardized error value.
type Error struct {
	Category Category
	Code     string
	Message  string
	Context  map[string]any
	Caller   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// New builds a standardized error, capturing the immediate caller.
func New(category Category, code, message string, context map[string]any) *Error {
	caller := "unknown"

	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &Error{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// AllocationFailed reports a construction failure that could not propagate
// as a panic — e.g. an underlying resource (a File's os.Open) failing
// during a managed type's constructor.
func AllocationFailed(typeName string, cause error) *Error {
	return New(CategoryAllocation, "ALLOCATION_FAILED",
		fmt.Sprintf("failed to construct managed %s: %v", typeName, cause),
		map[string]any{"type": typeName, "cause": cause})
}

// DowncastRejected reports a failed Ref.As, surfaced only when the caller
// opted into diagnostics (the rt_strict build tag); the ordinary As simply
// returns an empty Ref.
func DowncastRejected(from, to string) *Error {
	return New(CategoryDowncast, "DOWNCAST_REJECTED",
		fmt.Sprintf("cannot view %s as %s", from, to),
		map[string]any{"from": from, "to": to})
}

// InvalidConfig reports a malformed rtconfig file.
func InvalidConfig(path string, cause error) *Error {
	return New(CategoryConfig, "INVALID_CONFIG",
		fmt.Sprintf("invalid collector config %s: %v", path, cause),
		map[string]any{"path": path, "cause": cause})
}
