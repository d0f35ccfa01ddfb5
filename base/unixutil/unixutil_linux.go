package unixutil

import (
	"time"

	"golang.org/x/sys/unix"
)

func durationFromTimeval(tv unix.Timeval) time.Duration {
	// The field unix.Timeval.Usec is always non-negative.
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}

// CPUTimes returns the user and system CPU time consumed by the calling
// process so far.
func CPUTimes() (user, sys time.Duration, err error) {
	var ru unix.Rusage
	err = unix.Getrusage(unix.RUSAGE_SELF, &ru)
	if err != nil {
		return 0, 0, err
	}
	return durationFromTimeval(ru.Utime), durationFromTimeval(ru.Stime), nil
}
