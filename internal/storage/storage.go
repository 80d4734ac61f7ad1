package storage

import "errors"

// ErrNoToken means no operator session is stored; callers treat it as
// "not logged in" rather than a failure.
var ErrNoToken = errors.New("no session token stored")
