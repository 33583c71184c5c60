// Package access holds the single authoritative answer to "can this user see
// this idea's full content right now". Every read path derives the state
// through Derive; nothing stores it.
package access

import "ideagate/internal/domain/accessrequest"

type State string

const (
	// StateNoRequest means the requester never asked. It is a normal query
	// outcome, not an error, and is distinct from Pending.
	StateNoRequest State = "no_request"
	StatePending   State = "pending"
	StateGranted   State = "granted"
	StateDenied    State = "denied"
)

func (s State) String() string {
	return string(s)
}

// Derive computes the access state from the owner's decision and whether any
// payment verification for the request is verified. The two inputs arrive in
// no guaranteed order; Derive is commutative over them, so a late webhook and
// an early approval (or the reverse) converge on the same state.
func Derive(status accessrequest.Status, hasVerified bool) State {
	switch status {
	case accessrequest.StatusDenied:
		return StateDenied
	case accessrequest.StatusApproved:
		if hasVerified {
			return StateGranted
		}
		return StatePending
	default:
		return StatePending
	}
}
