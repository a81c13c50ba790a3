//go:build unix

package rtstats

import "golang.org/x/sys/unix"

// maxRSSKB reports the process's maximum resident set size via getrusage,
// the same syscall family internal/runtime/asyncio's BSD poller reaches
// into golang.org/x/sys/unix for.
func maxRSSKB() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}

	// Linux reports Maxrss in KB already; Darwin reports bytes. This
	// module targets the Linux deployment the rest of the Orizon runtime
	// ships on, so no further conversion is applied here.
	return int64(ru.Maxrss)
}
