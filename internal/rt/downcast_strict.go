//go:build rt_strict

package rt

import (
	"fmt"

	"github.com/orizon-lang/orizon-rt/internal/rt/rterr"
)

// reportDowncastFailure logs a standardized rterr.Error for every failed
// Ref.As, for builds that opt into the diagnostics rt_strict trades a small
// amount of overhead for.
func reportDowncastFailure(from any) {
	err := rterr.DowncastRejected(fmt.Sprintf("%T", from), "requested type")
	defaultLogger().l.Println(err.Error())
}
