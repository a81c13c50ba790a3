//go:build rt_norc_gc

package rt

// This file provides no-op tracking hooks for pure-refcounting builds. See
// collector_track.go for the normal build's pair.
func trackNew(obj Object)    {}
func untrackDead(obj Object) {}
