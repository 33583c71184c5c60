//go:build unit

package verification_test

import (
	"testing"
	"time"

	"ideagate/internal/domain/verification"
	"ideagate/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManualVerification(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().BuildManual()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, verification.ChannelManualTransfer, actual.Channel())
		assert.Equal(t, verification.StatusPending, actual.Status())
		assert.False(t, actual.IsVerified())
		assert.Nil(t, actual.VerifiedAt())
		require.NotNil(t, actual.TransactionReference())
		assert.Equal(t, "UTR-2024-0001", *actual.TransactionReference())
	})

	t.Run("transaction reference is trimmed", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().
			WithTransactionReference("  UTR-42  ").BuildManual()
		require.NoError(t, err)

		assert.Equal(t, "UTR-42", *actual.TransactionReference())
	})

	t.Run("empty transaction reference", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().
			WithTransactionReference("").BuildManual()
		require.ErrorIs(t, err, verification.ErrEmptyTransactionReference)
		assert.Nil(t, actual)
	})

	t.Run("whitespace only transaction reference", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().
			WithTransactionReference("   ").BuildManual()
		require.ErrorIs(t, err, verification.ErrEmptyTransactionReference)
		assert.Nil(t, actual)
	})

	t.Run("blank payer handle stored as nil", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().
			WithPayerHandle("  ").BuildManual()
		require.NoError(t, err)
		assert.Nil(t, actual.PayerHandle())
	})
}

func TestNewCardVerification(t *testing.T) {
	t.Run("completed session is verified immediately", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().BuildCard(true)
		require.NoError(t, err)

		assert.Equal(t, verification.ChannelCard, actual.Channel())
		assert.Equal(t, verification.StatusVerified, actual.Status())
		assert.True(t, actual.IsVerified())
		require.NotNil(t, actual.VerifiedAt())
		require.NotNil(t, actual.ExternalSessionID())
		assert.Equal(t, "cs_test_123", *actual.ExternalSessionID())
	})

	t.Run("failed session is rejected", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().BuildCard(false)
		require.NoError(t, err)

		assert.Equal(t, verification.StatusRejected, actual.Status())
		assert.Nil(t, actual.VerifiedAt())
	})

	t.Run("empty session id", func(t *testing.T) {
		actual, err := builder.NewVerificationBuilder().WithSessionID(" ").BuildCard(true)
		require.ErrorIs(t, err, verification.ErrEmptySessionID)
		assert.Nil(t, actual)
	})
}

func TestVerificationReview(t *testing.T) {
	now := time.Now()

	t.Run("pending to verified", func(t *testing.T) {
		v := builder.NewVerificationBuilder().Reconstruct()

		err := v.Review(verification.StatusVerified, now)
		require.NoError(t, err)
		assert.True(t, v.IsVerified())
		require.NotNil(t, v.VerifiedAt())
		assert.Equal(t, now, *v.VerifiedAt())
	})

	t.Run("pending to rejected", func(t *testing.T) {
		v := builder.NewVerificationBuilder().Reconstruct()

		err := v.Review(verification.StatusRejected, now)
		require.NoError(t, err)
		assert.Equal(t, verification.StatusRejected, v.Status())
		assert.Nil(t, v.VerifiedAt())
	})

	t.Run("review is single shot", func(t *testing.T) {
		v := builder.NewVerificationBuilder().Reconstruct()
		require.NoError(t, v.Review(verification.StatusRejected, now))

		err := v.Review(verification.StatusVerified, now.Add(time.Minute))
		require.ErrorIs(t, err, verification.ErrAlreadyFinalized)
		assert.Equal(t, verification.StatusRejected, v.Status())
	})

	t.Run("already verified record cannot change", func(t *testing.T) {
		v := builder.NewVerificationBuilder().AsVerified().Reconstruct()

		err := v.Review(verification.StatusRejected, now)
		require.ErrorIs(t, err, verification.ErrAlreadyFinalized)
		assert.True(t, v.IsVerified())
	})

	t.Run("review cannot reset to pending", func(t *testing.T) {
		v := builder.NewVerificationBuilder().Reconstruct()

		err := v.Review(verification.StatusPending, now)
		require.ErrorIs(t, err, verification.ErrInvalidReviewStatus)
	})
}
