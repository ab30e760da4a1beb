package availability

import "time"

// Clock abstracts the wall clock so tests can pin "now"
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
