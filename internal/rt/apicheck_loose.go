//go:build !rt_strict

package rt

// CheckAPICompatible is a no-op in the default build — see apicheck_strict.go.
func CheckAPICompatible(constraint string) {}
