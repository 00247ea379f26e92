package chainext

import "errors"

// Call-fatal failures. They abort the contract call and nothing is written to
// the output buffer.
var (
	// ErrUnknownOpcode is returned for a func id with no registered handler
	ErrUnknownOpcode = errors.New("unimplemented func_id")
	// ErrMalformedRequest is returned when the input buffer does not match the request shape
	ErrMalformedRequest = errors.New("malformed request")
	// ErrBadAddress is returned when an address cannot be decoded into an account
	ErrBadAddress = errors.New("bad address")
	// ErrOutputWrite is returned when the response cannot be written back to the contract
	ErrOutputWrite = errors.New("output buffer write failed")
)
