//go:build !rt_norc_gc

package rt

// trackNew and untrackDead route allocation and last-release bookkeeping
// through the real cycle collector. Building with the rt_norc_gc tag swaps
// in collector_notrack.go's no-op pair instead, yielding pure reference
// counting with no cycle detection (§6's "compile-time switch").
func trackNew(obj Object)    { globalCollector.track(obj) }
func untrackDead(obj Object) { globalCollector.untrack(obj) }
