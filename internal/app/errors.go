package app

import "errors"

// ErrPlatformInit wraps failures to bring up the window or graphics context.
var ErrPlatformInit = errors.New("platform init failure")
