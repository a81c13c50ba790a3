//go:build !unix

package rtstats

// maxRSSKB has no portable implementation outside unix; Windows builds
// report 0 rather than pulling in a separate syscall surface for a single
// observability field.
func maxRSSKB() int64 { return 0 }
