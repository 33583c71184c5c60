//go:build unit

package webhooksig_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"ideagate/internal/pkg/webhooksig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

func TestVerify(t *testing.T) {
	v := webhooksig.NewVerifier(testSecret, 5*time.Minute)
	now := time.Unix(1700000000, 0)
	payload := []byte(`{"id":"evt_1","type":"checkout.completed"}`)

	t.Run("accepts own signature", func(t *testing.T) {
		header := v.Sign(payload, now)
		require.NoError(t, v.Verify(payload, header, now))
	})

	t.Run("accepts signature within tolerance", func(t *testing.T) {
		header := v.Sign(payload, now)
		assert.NoError(t, v.Verify(payload, header, now.Add(4*time.Minute)))
		assert.NoError(t, v.Verify(payload, header, now.Add(-4*time.Minute)))
	})

	t.Run("rejects signature outside tolerance", func(t *testing.T) {
		header := v.Sign(payload, now)
		err := v.Verify(payload, header, now.Add(6*time.Minute))
		assert.ErrorIs(t, err, webhooksig.ErrTimestampTooOld)
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		header := v.Sign(payload, now)
		tampered := []byte(`{"id":"evt_1","type":"checkout.expired"}`)
		err := v.Verify(tampered, header, now)
		assert.ErrorIs(t, err, webhooksig.ErrNoValidSignature)
	})

	t.Run("rejects signature from another secret", func(t *testing.T) {
		other := webhooksig.NewVerifier("whsec_other", 5*time.Minute)
		header := other.Sign(payload, now)
		err := v.Verify(payload, header, now)
		assert.ErrorIs(t, err, webhooksig.ErrNoValidSignature)
	})

	t.Run("accepts when any v1 candidate matches", func(t *testing.T) {
		// secret rotation sends the old and new signature side by side
		header := v.Sign(payload, now) + ",v1=" + strings.Repeat("ab", 32)
		assert.NoError(t, v.Verify(payload, header, now))
	})

	t.Run("zero tolerance disables timestamp check", func(t *testing.T) {
		lax := webhooksig.NewVerifier(testSecret, 0)
		header := lax.Sign(payload, now)
		assert.NoError(t, lax.Verify(payload, header, now.Add(24*time.Hour)))
	})
}

func TestVerifyMalformedHeaders(t *testing.T) {
	v := webhooksig.NewVerifier(testSecret, 5*time.Minute)
	now := time.Now()
	payload := []byte(`{}`)

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"missing timestamp", "v1=deadbeef"},
		{"missing signature", "t=" + strconv.FormatInt(now.Unix(), 10)},
		{"non numeric timestamp", "t=abc,v1=deadbeef"},
		{"no key value pairs", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Verify(payload, tt.header, now)
			assert.ErrorIs(t, err, webhooksig.ErrMalformedHeader)
		})
	}
}
