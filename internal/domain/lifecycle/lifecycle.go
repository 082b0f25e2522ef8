// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a transport server.
const DefaultTimeout = 30 * time.Second
