// Package lifecycle holds shared timing constants for process start and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook (database ping, HTTP shutdown, pool drain).
const DefaultTimeout = 10 * time.Second
