// Package lifecycle holds process-wide timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks (pings, graceful shutdown).
const DefaultTimeout = 10 * time.Second
