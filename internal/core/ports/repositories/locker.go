package repositories

import (
	"context"
	"errors"
)

// ErrLockNotObtained is returned by a Locker when the key is held elsewhere.
var ErrLockNotObtained = errors.New("lock not obtained")

// Locker obtains short-lived named locks shared across service instances.
type Locker interface {
	// Obtain acquires key and returns a function releasing it.
	Obtain(ctx context.Context, key string) (release func(context.Context) error, err error)
}
