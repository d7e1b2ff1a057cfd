package session

import "time"

// Clock abstracts time reads to allow testing the elapsed math.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the default clock implementation.
var SystemClock Clock = &realClock{}
