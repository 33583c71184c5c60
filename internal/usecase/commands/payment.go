package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/domain/verification"
	"ideagate/internal/infra"
	"ideagate/internal/pkg/clock"
	"ideagate/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

// Card event types as delivered by the processor.
const (
	cardEventCompleted = "checkout.completed"
	cardEventExpired   = "checkout.expired"
	cardEventFailed    = "payment.failed"
)

// WebhookOutcome describes what a delivery did. Everything except a
// signature or parse failure is acked with 200 so the processor stops
// redelivering; the outcome keeps the distinction observable in logs and
// metrics.
type WebhookOutcome string

const (
	OutcomeVerified       WebhookOutcome = "verified"
	OutcomeRejected       WebhookOutcome = "rejected"
	OutcomeReplayed       WebhookOutcome = "replayed"
	OutcomeUnknownSession WebhookOutcome = "unknown_session"
	OutcomeConflict       WebhookOutcome = "conflict"
	OutcomeIgnored        WebhookOutcome = "ignored"
)

type WebhookResult struct {
	Outcome   WebhookOutcome
	EventType string
}

type SignatureVerifier interface {
	Verify(payload []byte, header string, now time.Time) error
}

type PaymentCommands interface {
	HandleCardEvent(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
	SubmitManualProof(ctx context.Context, requestID, actorID uuid.UUID, proof verification.Proof) (*verification.Verification, error)
	ReviewManualProof(ctx context.Context, verificationID, reviewerID uuid.UUID, approve bool) (*verification.Verification, error)
}

type paymentUseCaseImpl struct {
	requests      AccessRequestRepository
	verifications VerificationRepository
	verifier      SignatureVerifier
	notifier      Notifier
	clock         clock.Clock
}

func NewPaymentUseCase(
	requests AccessRequestRepository,
	verifications VerificationRepository,
	verifier SignatureVerifier,
	notifier Notifier,
	clk clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		requests:      requests,
		verifications: verifications,
		verifier:      verifier,
		notifier:      notifier,
		clock:         clk,
	}
}

type cardEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		SessionID   string `json:"session_id"`
		AmountPaise int64  `json:"amount"`
	} `json:"data"`
}

// HandleCardEvent normalizes one signed processor delivery into the ledger.
// Deliveries can arrive concurrently, out of order, and more than once; the
// session-keyed upsert makes every path here safe to repeat.
func (uc *paymentUseCaseImpl) HandleCardEvent(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error) {
	now := uc.clock.Now()
	if err := uc.verifier.Verify(payload, signatureHeader, now); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSignature)
	}

	var ev cardEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedEvent)
	}
	if ev.Data.SessionID == "" {
		return nil, errs.Mark(errs.New("event missing session id"), errs.ErrMalformedEvent)
	}

	var verified bool
	switch ev.Type {
	case cardEventCompleted:
		verified = true
	case cardEventExpired, cardEventFailed:
		verified = false
	default:
		slog.Info("ignoring unhandled card event type", "event_type", ev.Type, "event_id", ev.ID)
		return &WebhookResult{Outcome: OutcomeIgnored, EventType: ev.Type}, nil
	}

	req, err := uc.requests.FindBySessionID(ctx, ev.Data.SessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Acked so the processor does not storm us with retries for a
			// session we will never know.
			slog.Warn("card event for unknown session", "event_id", ev.ID, "session_id", ev.Data.SessionID)
			return &WebhookResult{Outcome: OutcomeUnknownSession, EventType: ev.Type}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	amount := ev.Data.AmountPaise
	if amount <= 0 {
		amount = req.AmountPaise()
	}

	v, err := verification.NewCardVerification(req.ID(), amount, ev.Data.SessionID, verified, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedEvent)
	}

	applied, err := uc.verifications.UpsertCardBySession(ctx, v)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Another rail already verified this request. The paid state is
			// satisfied, so the delivery is acked without a second record.
			slog.Warn("card verification lost to existing verified record",
				"request_id", req.ID(), "session_id", ev.Data.SessionID)
			return &WebhookResult{Outcome: OutcomeConflict, EventType: ev.Type}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !applied {
		// Nothing changed: either a true replay, or a failure event arriving
		// after the session was already verified.
		return &WebhookResult{Outcome: OutcomeReplayed, EventType: ev.Type}, nil
	}

	outcome := OutcomeRejected
	if verified {
		outcome = OutcomeVerified
		uc.fireVerifiedEvent(ctx, req.ID())
	}
	return &WebhookResult{Outcome: outcome, EventType: ev.Type}, nil
}

// SubmitManualProof records a bank/wallet transfer attestation for operator
// review. It never self-verifies; only the card rail carries the processor's
// own authority.
func (uc *paymentUseCaseImpl) SubmitManualProof(ctx context.Context, requestID, actorID uuid.UUID, proof verification.Proof) (*verification.Verification, error) {
	req, err := uc.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if req.RequesterID() != actorID {
		return nil, errs.ErrNotRequester
	}

	alreadyVerified, err := uc.verifications.HasVerified(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if alreadyVerified {
		return nil, errs.ErrDuplicateActiveRequest
	}

	v, err := verification.NewManualVerification(requestID, req.AmountPaise(), proof, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidProof)
	}

	if err := uc.verifications.CreateManual(ctx, v); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.fireEvent(ctx, NotificationEvent{
		Kind:        EventProofSubmitted,
		IdeaID:      req.IdeaID(),
		RequesterID: req.RequesterID(),
		CreatorID:   req.CreatorID(),
	})
	return v, nil
}

// ReviewManualProof applies the operator's single decision to a pending
// manual verification. The conditional update means two operators racing on
// the same proof produce one decision and one AlreadyFinalized.
func (uc *paymentUseCaseImpl) ReviewManualProof(ctx context.Context, verificationID, reviewerID uuid.UUID, approve bool) (*verification.Verification, error) {
	v, err := uc.verifications.FindByID(ctx, verificationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVerificationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	to := verification.StatusRejected
	if approve {
		to = verification.StatusVerified
	}

	now := uc.clock.Now()
	if err := v.Review(to, now); err != nil {
		return nil, errs.Mark(err, errs.ErrAlreadyFinalized)
	}

	if err := uc.verifications.Finalize(ctx, verificationID, to, now); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict) && infra.PgConstraint(err) != "":
			return nil, errs.Mark(err, errs.ErrVerificationConflict)
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, errs.ErrAlreadyFinalized)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	slog.Info("manual proof reviewed",
		"verification_id", verificationID, "reviewer_id", reviewerID, "status", to.String())

	if approve {
		uc.fireVerifiedEvent(ctx, v.AccessRequestID())
	} else {
		uc.fireRejectionEvent(ctx, v.AccessRequestID())
	}
	return v, nil
}

// fireVerifiedEvent emits the externally visible transition a first-time
// verification causes: Granted when the owner already approved, otherwise a
// payment-verified nudge while the state stays Pending.
func (uc *paymentUseCaseImpl) fireVerifiedEvent(ctx context.Context, requestID uuid.UUID) {
	req, err := uc.requests.FindByID(ctx, requestID)
	if err != nil {
		slog.Warn("failed to load request for notification", "request_id", requestID, "error", err)
		return
	}

	kind := EventPaymentVerified
	if req.Status() == accessrequest.StatusApproved {
		kind = EventAccessGranted
	}
	uc.fireEvent(ctx, NotificationEvent{
		Kind:        kind,
		IdeaID:      req.IdeaID(),
		RequesterID: req.RequesterID(),
		CreatorID:   req.CreatorID(),
	})
}

func (uc *paymentUseCaseImpl) fireRejectionEvent(ctx context.Context, requestID uuid.UUID) {
	req, err := uc.requests.FindByID(ctx, requestID)
	if err != nil {
		slog.Warn("failed to load request for notification", "request_id", requestID, "error", err)
		return
	}
	uc.fireEvent(ctx, NotificationEvent{
		Kind:        EventProofRejected,
		IdeaID:      req.IdeaID(),
		RequesterID: req.RequesterID(),
		CreatorID:   req.CreatorID(),
	})
}

func (uc *paymentUseCaseImpl) fireEvent(ctx context.Context, ev NotificationEvent) {
	if err := uc.notifier.Notify(ctx, ev); err != nil {
		slog.Warn("notification failed", "kind", string(ev.Kind), "idea_id", ev.IdeaID, "error", err)
	}
}
