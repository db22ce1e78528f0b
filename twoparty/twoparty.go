// Package twoparty implements the interactive two-party protocols:
// Diffie-Hellman key exchange, a committed variant where both sides
// prove knowledge of their shares, and bias-resistant coin flipping.
//
// Each protocol is expressed as plain functions and small state structs
// rather than a transport layer: callers move the returned messages
// between the parties themselves.
package twoparty

import "errors"

// ErrCommitmentOpenFailed is returned when a revealed value does not
// match the commitment it was bound to. The protocol run must be
// aborted, not retried.
var ErrCommitmentOpenFailed = errors.New("commitment does not open to the revealed value")
