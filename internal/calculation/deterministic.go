package calculation

import (
	"time"

	"github.com/loanlens/emi-calculator/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// scheduleStart resolves the month cursor origin; a zero start means "now".
func scheduleStart(start time.Time) time.Time {
	if start.IsZero() {
		start = nowFunc()
	}
	return dateutil.StartOfMonth(start)
}
