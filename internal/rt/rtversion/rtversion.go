// Package rtversion exposes the managed-object runtime's own API version
// and lets callers — chiefly the stdlib types built on top of it — assert
// compatibility before wiring themselves to it, the same way
// internal/packagemanager/resolver.go checks a dependency's version against
// a semver constraint before the package manager lets two modules talk to
// each other.
package rtversion

import semver "github.com/Masterminds/semver/v3"

// APIVersion is the managed-object runtime's current API version.
const APIVersion = "1.0.0"

// current is parsed once; APIVersion is a compile-time constant guaranteed
// valid, so the parse error is unreachable in practice.
var current = semver.MustParse(APIVersion)

// Compatible reports whether the runtime's current API version satisfies
// constraint (a semver constraint expression, e.g. ">=1.0.0, <2.0.0").
func Compatible(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}

	return c.Check(current), nil
}

// MustCompatible panics if constraint is malformed or unsatisfied — called
// through rt.CheckAPICompatible from stdlib constructors in rt_strict builds,
// to fail fast rather than limp along against an incompatible runtime.
func MustCompatible(constraint string) {
	ok, err := Compatible(constraint)
	if err != nil {
		panic("rtversion: malformed constraint " + constraint + ": " + err.Error())
	}

	if !ok {
		panic("rtversion: runtime " + APIVersion + " does not satisfy " + constraint)
	}
}
