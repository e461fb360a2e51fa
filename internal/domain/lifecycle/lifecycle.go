// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook (ping, shutdown) may take.
const DefaultTimeout = 30 * time.Second
