package clock

import "time"

// Clocker is the time source injected into usecases and token issuers.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the system clock.
type TimeClocker struct{}

func New() *TimeClocker {
	return &TimeClocker{}
}

func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Tests use it to make expirations deterministic.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
