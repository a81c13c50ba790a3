//go:build !rt_strict

package rt

// reportDowncastFailure is a no-op in the default build: a failed Ref.As
// simply returns an empty handle, matching §7's "undefined behavior, not
// detected" treatment of programmer misuse.
func reportDowncastFailure(from any) {}
