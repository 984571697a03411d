package systems

import "errors"

var (
	// ErrAlreadyLoaded is returned when loading a slingshot that holds a projectile.
	ErrAlreadyLoaded = errors.New("slingshot already loaded")
	// ErrEmptyQueue is returned by Next when no projectile is waiting.
	ErrEmptyQueue = errors.New("projectile queue is empty")
)
