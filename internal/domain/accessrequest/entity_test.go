//go:build unit

package accessrequest_test

import (
	"testing"
	"time"

	"ideagate/internal/domain/accessrequest"
	"ideagate/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AccessRequestBuilder)
	errIs  error
}

func TestAccessRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAccessRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, accessrequest.StatusPending, actual.Status())
		assert.False(t, actual.IsDecided())
		assert.Nil(t, actual.ExternalSessionID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid amount",
				mutate: func(b *builder.AccessRequestBuilder) { b.WithAmountPaise(1) },
			},
			{
				name:   "zero amount",
				mutate: func(b *builder.AccessRequestBuilder) { b.WithAmountPaise(0) },
				errIs:  accessrequest.ErrInvalidAmount,
			},
			{
				name:   "negative amount",
				mutate: func(b *builder.AccessRequestBuilder) { b.WithAmountPaise(-49900) },
				errIs:  accessrequest.ErrInvalidAmount,
			},
		})
	})

	t.Run("owner cannot request own idea", func(t *testing.T) {
		owner := uuid.New()
		runCases(t, []testCase{
			{
				name: "requester equals creator",
				mutate: func(b *builder.AccessRequestBuilder) {
					b.WithCreatorID(owner).WithRequesterID(owner)
				},
				errIs: accessrequest.ErrSelfRequest,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewAccessRequestBuilder()
		req1, err1 := b.BuildDomain()
		req2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, req1.ID(), req2.ID())
	})
}

func TestAccessRequestDecide(t *testing.T) {
	now := time.Now()

	t.Run("pending to approved", func(t *testing.T) {
		req := builder.NewAccessRequestBuilder().Reconstruct()

		err := req.Decide(accessrequest.DecisionApproved, now)
		require.NoError(t, err)
		assert.Equal(t, accessrequest.StatusApproved, req.Status())
		assert.True(t, req.IsDecided())
		assert.Equal(t, now, req.UpdatedAt())
	})

	t.Run("pending to denied", func(t *testing.T) {
		req := builder.NewAccessRequestBuilder().Reconstruct()

		err := req.Decide(accessrequest.DecisionDenied, now)
		require.NoError(t, err)
		assert.Equal(t, accessrequest.StatusDenied, req.Status())
	})

	t.Run("decision is single shot", func(t *testing.T) {
		req := builder.NewAccessRequestBuilder().Reconstruct()
		require.NoError(t, req.Decide(accessrequest.DecisionApproved, now))

		err := req.Decide(accessrequest.DecisionDenied, now.Add(time.Minute))
		require.ErrorIs(t, err, accessrequest.ErrAlreadyDecided)
		assert.Equal(t, accessrequest.StatusApproved, req.Status())
	})

	t.Run("denied request stays denied", func(t *testing.T) {
		req := builder.NewAccessRequestBuilder().AsDenied().Reconstruct()

		err := req.Decide(accessrequest.DecisionApproved, now)
		require.ErrorIs(t, err, accessrequest.ErrAlreadyDecided)
		assert.Equal(t, accessrequest.StatusDenied, req.Status())
	})

	t.Run("invalid decision value", func(t *testing.T) {
		req := builder.NewAccessRequestBuilder().Reconstruct()

		err := req.Decide(accessrequest.Decision("maybe"), now)
		require.ErrorIs(t, err, accessrequest.ErrInvalidDecision)
		assert.Equal(t, accessrequest.StatusPending, req.Status())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAccessRequestBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
