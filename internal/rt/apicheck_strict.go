//go:build rt_strict

package rt

import "github.com/orizon-lang/orizon-rt/internal/rt/rtversion"

// CheckAPICompatible panics if the runtime's API version does not satisfy
// constraint. Stdlib constructors call this at construction so an
// rt_strict build fails fast against a runtime it was not built for,
// rather than limping along; the default build skips the check entirely.
func CheckAPICompatible(constraint string) {
	rtversion.MustCompatible(constraint)
}
