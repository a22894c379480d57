package sysmsg

import "time"

// Timeout is handed to a receive handler when no message arrived in time.
type Timeout struct {
	Duration time.Duration
}
