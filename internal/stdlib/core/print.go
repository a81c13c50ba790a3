package core

import "fmt"

// Print mirrors original_source/src/core/io/inOut.hpp's print: every
// argument's string form, space-joined, newline-terminated.
func Print(args ...any) {
	for i, a := range args {
		if i > 0 {
			fmt.Print(" ")
		}

		fmt.Print(toDisplayString(a))
	}

	fmt.Println()
}

// toDisplayString prefers a Stringer if the argument has one, falling back
// to fmt's default verb otherwise.
func toDisplayString(a any) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%v", a)
}
