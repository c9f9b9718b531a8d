// Package resource adapts a system memory reading into a debug-only
// pre-flight signal before the shell launches a multi-stage external
// pipeline. Several concurrently spawned children can otherwise push a
// constrained host into swap before any of them produce output.
package resource

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// WarnThresholdPercent is the used-memory percentage above which
// PreflightPipeline returns a warning string instead of an empty one.
const WarnThresholdPercent = 90

// PreflightPipeline reports system memory pressure ahead of launching a
// pipeline with the given number of external stages. It returns an
// empty string when there's nothing worth saying, or when the reading
// itself fails. It is advisory only and never blocks execution.
func PreflightPipeline(externalStages int) string {
	if externalStages < 2 {
		return ""
	}
	v, err := mem.VirtualMemory()
	if err != nil {
		return ""
	}
	if v.UsedPercent < WarnThresholdPercent {
		return ""
	}
	return fmt.Sprintf("memory at %.0f%% used, spawning %d external stages", v.UsedPercent, externalStages)
}
