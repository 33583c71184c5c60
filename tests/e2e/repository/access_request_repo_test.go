//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/infra"
	"ideagate/internal/infra/repository"
	"ideagate/tests/common/builder"
	"ideagate/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AccessRequestRepoSuite struct {
	e2e.SharedSuite
	repo *repository.AccessRequestRepository
}

func (s *AccessRequestRepoSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.repo = repository.NewAccessRequestRepository(s.DB)
}

func TestAccessRequestRepoSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AccessRequestRepoSuite))
}

func (s *AccessRequestRepoSuite) mustCreate(b *builder.AccessRequestBuilder) *accessrequest.AccessRequest {
	req, err := b.BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Create(context.Background(), req))
	return req
}

// ================================================================================
// Create - active pair uniqueness
// ================================================================================

func (s *AccessRequestRepoSuite) TestCreate() {
	s.Run("second active request for the same pair is rejected by the index", func() {
		ideaID, creatorID, requesterID := uuid.New(), uuid.New(), uuid.New()
		pair := func() *builder.AccessRequestBuilder {
			return builder.NewAccessRequestBuilder().
				WithCreatorID(creatorID).
				WithRequesterID(requesterID).
				With(func(b *builder.AccessRequestBuilder) { b.IdeaID = ideaID })
		}

		s.mustCreate(pair())

		dup, err := pair().BuildDomain()
		s.Require().NoError(err)
		err = s.repo.Create(context.Background(), dup)
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))
	})

	s.Run("denial frees the pair for a new request", func() {
		ideaID, creatorID, requesterID := uuid.New(), uuid.New(), uuid.New()
		pair := func() *builder.AccessRequestBuilder {
			return builder.NewAccessRequestBuilder().
				WithCreatorID(creatorID).
				WithRequesterID(requesterID).
				With(func(b *builder.AccessRequestBuilder) { b.IdeaID = ideaID })
		}

		first := s.mustCreate(pair())
		s.Require().NoError(s.repo.UpdateDecision(context.Background(), first.ID(), accessrequest.StatusDenied, time.Now()))

		second := s.mustCreate(pair())

		found, err := s.repo.FindByID(context.Background(), second.ID())
		s.Require().NoError(err)
		s.Equal(accessrequest.StatusPending, found.Status())
	})

	s.Run("same requester on a different idea is unaffected", func() {
		requesterID := uuid.New()
		s.mustCreate(builder.NewAccessRequestBuilder().WithRequesterID(requesterID))
		s.mustCreate(builder.NewAccessRequestBuilder().WithRequesterID(requesterID))
	})
}

// ================================================================================
// UpdateDecision - single decision per request
// ================================================================================

func (s *AccessRequestRepoSuite) TestUpdateDecision() {
	s.Run("first decision lands, second hits the pending guard", func() {
		req := s.mustCreate(builder.NewAccessRequestBuilder())

		s.Require().NoError(s.repo.UpdateDecision(context.Background(), req.ID(), accessrequest.StatusApproved, time.Now()))

		err := s.repo.UpdateDecision(context.Background(), req.ID(), accessrequest.StatusDenied, time.Now())
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindConflict))

		found, err := s.repo.FindByID(context.Background(), req.ID())
		s.Require().NoError(err)
		s.Equal(accessrequest.StatusApproved, found.Status())
	})
}

// ================================================================================
// SetCheckoutSession / FindBySessionID
// ================================================================================

func (s *AccessRequestRepoSuite) TestCheckoutSession() {
	s.Run("session id round-trips through lookup", func() {
		req := s.mustCreate(builder.NewAccessRequestBuilder())

		s.Require().NoError(s.repo.SetCheckoutSession(context.Background(), req.ID(), "cs_e2e_1", time.Now()))

		found, err := s.repo.FindBySessionID(context.Background(), "cs_e2e_1")
		s.Require().NoError(err)
		s.Equal(req.ID(), found.ID())
	})

	s.Run("session id cannot attach to two requests", func() {
		first := s.mustCreate(builder.NewAccessRequestBuilder())
		second := s.mustCreate(builder.NewAccessRequestBuilder())

		s.Require().NoError(s.repo.SetCheckoutSession(context.Background(), first.ID(), "cs_e2e_2", time.Now()))

		err := s.repo.SetCheckoutSession(context.Background(), second.ID(), "cs_e2e_2", time.Now())
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))
	})
}
