package script

import "errors"

// ErrHostClosed indicates use of a host after Close.
var ErrHostClosed = errors.New("script: host is closed")
