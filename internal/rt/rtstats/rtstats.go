// Package rtstats samples process resource usage alongside the collector's
// own Snapshot, the observability surface §7 calls for ("the adaptive
// estimator's internal state (queryable for observability)"). Split per-OS
// the way internal/runtime/asyncio splits its pollers
// (kqueue_poller_bsd.go / iocp_poller_windows.go).
package rtstats

import "github.com/orizon-lang/orizon-rt/internal/rt"

// Report bundles the collector's generation snapshot with the process's
// maximum resident set size so far, in kilobytes.
type Report struct {
	rt.Snapshot
	MaxRSSKB int64
}

// Sample captures a Report for c.
func Sample(c *rt.Collector) Report {
	return Report{
		Snapshot: c.Snapshot(),
		MaxRSSKB: maxRSSKB(),
	}
}
