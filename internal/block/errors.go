package block

import "errors"

// Model errors.
var (
	// ErrNilConnection indicates a connect call on or with a nil
	// connection.
	ErrNilConnection = errors.New("block: nil connection")

	// ErrConnectionMismatch indicates two connections whose kinds
	// cannot attach to each other.
	ErrConnectionMismatch = errors.New("block: incompatible connection kinds")
)
