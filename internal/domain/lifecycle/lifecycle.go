// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, publishers and the
// background task group.
const DefaultTimeout = 10 * time.Second
