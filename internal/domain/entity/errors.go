package entity

import "errors"

var (
	// ErrTabNotFound is returned when an operation names an unknown tab.
	ErrTabNotFound = errors.New("tab not found")
	// ErrTabLimitReached is returned when the registry is at capacity.
	ErrTabLimitReached = errors.New("tab limit reached")
	// ErrLastTab is returned when closing would leave the shell without tabs.
	ErrLastTab = errors.New("cannot close the last tab")
)
