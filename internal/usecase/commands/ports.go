package commands

import (
	"context"
	"time"

	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/domain/verification"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// AccessRequestRepository is the single choke point for access request
// mutation; invariants ride on its conditional writes, not on locks.
type AccessRequestRepository interface {
	Create(ctx context.Context, req *accessrequest.AccessRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*accessrequest.AccessRequest, error)
	FindBySessionID(ctx context.Context, sessionID string) (*accessrequest.AccessRequest, error)
	UpdateDecision(ctx context.Context, id uuid.UUID, status accessrequest.Status, now time.Time) error
	SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string, now time.Time) error
}

type VerificationRepository interface {
	UpsertCardBySession(ctx context.Context, v *verification.Verification) (applied bool, err error)
	CreateManual(ctx context.Context, v *verification.Verification) error
	FindByID(ctx context.Context, id uuid.UUID) (*verification.Verification, error)
	HasVerified(ctx context.Context, accessRequestID uuid.UUID) (bool, error)
	Finalize(ctx context.Context, id uuid.UUID, to verification.Status, now time.Time) error
}

type EventKind string

const (
	EventRequestCreated  EventKind = "access_request.created"
	EventAccessGranted   EventKind = "access.granted"
	EventAccessDenied    EventKind = "access.denied"
	EventPaymentVerified EventKind = "payment.verified"
	EventProofSubmitted  EventKind = "manual_proof.submitted"
	EventProofRejected   EventKind = "manual_proof.rejected"
)

type NotificationEvent struct {
	Kind        EventKind
	IdeaID      uuid.UUID
	RequesterID uuid.UUID
	CreatorID   uuid.UUID
}

// Notifier receives transition events after the ledger write committed.
// Implementations must be safe to call from request handlers; a failed
// notification never rolls back or blocks the write that caused it.
type Notifier interface {
	Notify(ctx context.Context, ev NotificationEvent) error
}

type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

// CheckoutProvider is the card processor's session API.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, requestID uuid.UUID, amountPaise int64) (*CheckoutSession, error)
}
