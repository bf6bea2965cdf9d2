// Package services provides business logic for the application
package services

import "time"

// Clock abstracts the current time so date arithmetic is testable
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

// Now returns the current system time
func (SystemClock) Now() time.Time {
	return time.Now()
}
