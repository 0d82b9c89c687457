// Package timeouts defines shared timeout constants used by odds commands.
package timeouts

import "time"

// TelemetryShutdown limits how long a command waits for pending spans to
// flush after its run function returns.
const TelemetryShutdown = 5 * time.Second
