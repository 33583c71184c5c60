package commands

import (
	"context"
	"log/slog"

	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/infra"
	"ideagate/internal/pkg/clock"
	"ideagate/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=access.go -destination=../../../tests/mock/commands/access_mock.go -package=commandsmock

type CreateRequestParams struct {
	IdeaID      uuid.UUID
	CreatorID   uuid.UUID
	RequesterID uuid.UUID
	AmountPaise int64
}

type AccessCommands interface {
	CreateRequest(ctx context.Context, params CreateRequestParams) (*accessrequest.AccessRequest, error)
	Decide(ctx context.Context, requestID, actorID uuid.UUID, decision accessrequest.Decision) (*accessrequest.AccessRequest, error)
	BeginCheckout(ctx context.Context, requestID, actorID uuid.UUID) (*CheckoutSession, error)
}

type accessUseCaseImpl struct {
	requests      AccessRequestRepository
	verifications VerificationRepository
	checkout      CheckoutProvider
	notifier      Notifier
	clock         clock.Clock
}

func NewAccessUseCase(
	requests AccessRequestRepository,
	verifications VerificationRepository,
	checkout CheckoutProvider,
	notifier Notifier,
	clk clock.Clock,
) AccessCommands {
	return &accessUseCaseImpl{
		requests:      requests,
		verifications: verifications,
		checkout:      checkout,
		notifier:      notifier,
		clock:         clk,
	}
}

func (uc *accessUseCaseImpl) CreateRequest(ctx context.Context, params CreateRequestParams) (*accessrequest.AccessRequest, error) {
	req, err := accessrequest.NewAccessRequest(
		params.IdeaID, params.CreatorID, params.RequesterID,
		params.AmountPaise, uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.requests.Create(ctx, req); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateRequest)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.fireEvent(ctx, NotificationEvent{
		Kind:        EventRequestCreated,
		IdeaID:      req.IdeaID(),
		RequesterID: req.RequesterID(),
		CreatorID:   req.CreatorID(),
	})
	return req, nil
}

// Decide applies the idea owner's decision. The conditional UPDATE makes a
// double-submitted decision from a slow UI surface as AlreadyDecided instead
// of flipping state.
func (uc *accessUseCaseImpl) Decide(ctx context.Context, requestID, actorID uuid.UUID, decision accessrequest.Decision) (*accessrequest.AccessRequest, error) {
	req, err := uc.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.CreatorID() != actorID {
		return nil, errs.ErrNotOwner
	}

	now := uc.clock.Now()
	if err := req.Decide(decision, now); err != nil {
		return nil, errs.Mark(err, errs.ErrAlreadyDecided)
	}

	if err := uc.requests.UpdateDecision(ctx, requestID, req.Status(), now); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrAlreadyDecided)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.fireDecisionEvent(ctx, req)
	return req, nil
}

// BeginCheckout asks the processor for a hosted card session and stores its
// id on the request, where it serves as the webhook idempotency key.
func (uc *accessUseCaseImpl) BeginCheckout(ctx context.Context, requestID, actorID uuid.UUID) (*CheckoutSession, error) {
	req, err := uc.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID() != actorID {
		return nil, errs.ErrNotRequester
	}
	if req.Status() == accessrequest.StatusDenied {
		return nil, errs.ErrAlreadyDecided
	}

	verified, err := uc.verifications.HasVerified(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if verified {
		return nil, errs.ErrDuplicateActiveRequest
	}

	session, err := uc.checkout.CreateSession(ctx, requestID, req.AmountPaise())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCheckoutUnavailable)
	}

	if err := uc.requests.SetCheckoutSession(ctx, requestID, session.SessionID, uc.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return session, nil
}

func (uc *accessUseCaseImpl) findRequest(ctx context.Context, requestID uuid.UUID) (*accessrequest.AccessRequest, error) {
	req, err := uc.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return req, nil
}

func (uc *accessUseCaseImpl) fireDecisionEvent(ctx context.Context, req *accessrequest.AccessRequest) {
	if req.Status() == accessrequest.StatusDenied {
		uc.fireEvent(ctx, NotificationEvent{
			Kind:        EventAccessDenied,
			IdeaID:      req.IdeaID(),
			RequesterID: req.RequesterID(),
			CreatorID:   req.CreatorID(),
		})
		return
	}

	// Approval alone keeps the state Pending; only approved+verified is a
	// visible transition (to Granted).
	verified, err := uc.verifications.HasVerified(ctx, req.ID())
	if err != nil {
		slog.Warn("failed to check verification after decision", "request_id", req.ID(), "error", err)
		return
	}
	if verified {
		uc.fireEvent(ctx, NotificationEvent{
			Kind:        EventAccessGranted,
			IdeaID:      req.IdeaID(),
			RequesterID: req.RequesterID(),
			CreatorID:   req.CreatorID(),
		})
	}
}

func (uc *accessUseCaseImpl) fireEvent(ctx context.Context, ev NotificationEvent) {
	if err := uc.notifier.Notify(ctx, ev); err != nil {
		slog.Warn("notification failed", "kind", string(ev.Kind), "idea_id", ev.IdeaID, "error", err)
	}
}
