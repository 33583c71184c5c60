//go:build unit

package access_test

import (
	"testing"

	"ideagate/internal/domain/access"
	"ideagate/internal/domain/accessrequest"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name        string
		status      accessrequest.Status
		hasVerified bool
		want        access.State
	}{
		{"pending without payment", accessrequest.StatusPending, false, access.StatePending},
		{"pending with payment", accessrequest.StatusPending, true, access.StatePending},
		{"approved without payment", accessrequest.StatusApproved, false, access.StatePending},
		{"approved with payment", accessrequest.StatusApproved, true, access.StateGranted},
		{"denied without payment", accessrequest.StatusDenied, false, access.StateDenied},
		{"denied with payment", accessrequest.StatusDenied, true, access.StateDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.Derive(tt.status, tt.hasVerified))
		})
	}
}

// The decision and the payment land in either order; the derived state must
// not depend on which arrived first. Both orderings are replayed step by step
// and must agree at the end.
func TestDeriveOrderIndependence(t *testing.T) {
	t.Run("approve then verify equals verify then approve", func(t *testing.T) {
		// approval arrives first, payment second
		afterApproval := access.Derive(accessrequest.StatusApproved, false)
		approveThenVerify := access.Derive(accessrequest.StatusApproved, true)

		// payment arrives first, approval second
		afterPayment := access.Derive(accessrequest.StatusPending, true)
		verifyThenApprove := access.Derive(accessrequest.StatusApproved, true)

		assert.Equal(t, access.StatePending, afterApproval)
		assert.Equal(t, access.StatePending, afterPayment)
		assert.Equal(t, approveThenVerify, verifyThenApprove)
		assert.Equal(t, access.StateGranted, approveThenVerify)
	})

	t.Run("denial wins regardless of payment order", func(t *testing.T) {
		assert.Equal(t, access.StateDenied, access.Derive(accessrequest.StatusDenied, true))
		assert.Equal(t, access.StateDenied, access.Derive(accessrequest.StatusDenied, false))
	})
}
