package port

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay on the shell's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
