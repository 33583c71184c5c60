//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"ideagate/internal/domain/access"
	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/infra"
	"ideagate/internal/infra/readstore"
	"ideagate/internal/infra/repository"
	"ideagate/internal/usecase/queries"
	"ideagate/tests/common/builder"
	"ideagate/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AccessStateReadStoreSuite struct {
	e2e.SharedSuite
	requests      *repository.AccessRequestRepository
	verifications *repository.VerificationRepository
	store         *readstore.AccessStateReadStore
	q             queries.AccessQueries
}

func (s *AccessStateReadStoreSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.requests = repository.NewAccessRequestRepository(s.DB)
	s.verifications = repository.NewVerificationRepository(s.DB)
	s.store = readstore.NewAccessStateReadStore(s.DB)
	s.q = queries.NewAccessQueries(s.store)
}

func TestAccessStateReadStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AccessStateReadStoreSuite))
}

func (s *AccessStateReadStoreSuite) createRequest(ideaID, creatorID, requesterID uuid.UUID) *accessrequest.AccessRequest {
	req, err := builder.NewAccessRequestBuilder().
		WithCreatorID(creatorID).
		WithRequesterID(requesterID).
		With(func(b *builder.AccessRequestBuilder) { b.IdeaID = ideaID }).
		BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.requests.Create(context.Background(), req))
	return req
}

func (s *AccessStateReadStoreSuite) verifyByCard(requestID uuid.UUID, sessionID string) {
	s.Require().NoError(s.requests.SetCheckoutSession(context.Background(), requestID, sessionID, time.Now()))
	v, err := builder.NewVerificationBuilder().
		WithAccessRequestID(requestID).
		WithSessionID(sessionID).
		BuildCard(true)
	s.Require().NoError(err)
	applied, err := s.verifications.UpsertCardBySession(context.Background(), v)
	s.Require().NoError(err)
	s.Require().True(applied)
}

// ================================================================================
// FindStateInputs
// ================================================================================

func (s *AccessStateReadStoreSuite) TestFindStateInputs() {
	s.Run("row carries the decision and the verified flag", func() {
		req := s.createRequest(uuid.New(), uuid.New(), uuid.New())
		s.Require().NoError(s.requests.UpdateDecision(context.Background(), req.ID(), accessrequest.StatusApproved, time.Now()))
		s.verifyByCard(req.ID(), "cs_e2e_20")

		in, err := s.store.FindStateInputs(context.Background(), req.ID())
		s.Require().NoError(err)
		s.Equal(accessrequest.StatusApproved, in.Status)
		s.True(in.HasVerified)
		s.Equal(req.RequesterID(), in.RequesterID)
	})

	s.Run("missing request reports KindNotFound", func() {
		_, err := s.store.FindStateInputs(context.Background(), uuid.New())
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

// ================================================================================
// FindStateInputsBatch
// ================================================================================

func (s *AccessStateReadStoreSuite) TestFindStateInputsBatch() {
	s.Run("stale denied request does not shadow the requester's new one", func() {
		ideaID, creatorID, requesterID := uuid.New(), uuid.New(), uuid.New()

		// First attempt denied; the partial index then admits a second
		// request for the same pair.
		stale := s.createRequest(ideaID, creatorID, requesterID)
		s.Require().NoError(s.requests.UpdateDecision(context.Background(), stale.ID(), accessrequest.StatusDenied, time.Now()))

		active := s.createRequest(ideaID, creatorID, requesterID)
		s.Require().NoError(s.requests.UpdateDecision(context.Background(), active.ID(), accessrequest.StatusApproved, time.Now()))
		s.verifyByCard(active.ID(), "cs_e2e_21")

		rows, err := s.store.FindStateInputsBatch(context.Background(), ideaID, []uuid.UUID{requesterID})
		s.Require().NoError(err)
		s.Require().Len(rows, 1)
		s.Equal(active.ID(), rows[0].RequestID)
		s.Equal(accessrequest.StatusApproved, rows[0].Status)
		s.True(rows[0].HasVerified)

		states, err := s.q.ResolveBatch(context.Background(), ideaID, []uuid.UUID{requesterID})
		s.Require().NoError(err)
		s.Equal(access.StateGranted, states[requesterID])
	})

	s.Run("requester with only a denied request stays denied", func() {
		ideaID, creatorID, requesterID := uuid.New(), uuid.New(), uuid.New()
		req := s.createRequest(ideaID, creatorID, requesterID)
		s.Require().NoError(s.requests.UpdateDecision(context.Background(), req.ID(), accessrequest.StatusDenied, time.Now()))

		states, err := s.q.ResolveBatch(context.Background(), ideaID, []uuid.UUID{requesterID})
		s.Require().NoError(err)
		s.Equal(access.StateDenied, states[requesterID])
	})

	s.Run("requesters without rows are absent from the store result", func() {
		ideaID, creatorID := uuid.New(), uuid.New()
		requesterID := uuid.New()
		absent := uuid.New()
		s.createRequest(ideaID, creatorID, requesterID)

		rows, err := s.store.FindStateInputsBatch(context.Background(), ideaID, []uuid.UUID{requesterID, absent})
		s.Require().NoError(err)
		s.Require().Len(rows, 1)
		s.Equal(requesterID, rows[0].RequesterID)

		states, err := s.q.ResolveBatch(context.Background(), ideaID, []uuid.UUID{requesterID, absent})
		s.Require().NoError(err)
		s.Equal(access.StatePending, states[requesterID])
		s.Equal(access.StateNoRequest, states[absent])
	})
}
