//go:build unit || e2e

package builder

import (
	"time"

	"ideagate/internal/domain/verification"

	"github.com/google/uuid"
)

type VerificationBuilder struct {
	ID                   uuid.UUID
	AccessRequestID      uuid.UUID
	Channel              verification.Channel
	Status               verification.Status
	AmountPaise          int64
	TransactionReference string
	PayerHandle          string
	SessionID            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewVerificationBuilder() *VerificationBuilder {
	now := time.Now()
	return &VerificationBuilder{
		ID:                   uuid.New(),
		AccessRequestID:      uuid.New(),
		Channel:              verification.ChannelManualTransfer,
		Status:               verification.StatusPending,
		AmountPaise:          49900,
		TransactionReference: "UTR-2024-0001",
		PayerHandle:          "payer@upi",
		SessionID:            "cs_test_123",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func (b *VerificationBuilder) With(mutate func(*VerificationBuilder)) *VerificationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VerificationBuilder) BuildManual() (*verification.Verification, error) {
	return verification.NewManualVerification(b.AccessRequestID, b.AmountPaise, verification.Proof{
		TransactionReference: b.TransactionReference,
		PayerHandle:          b.PayerHandle,
	}, b.CreatedAt)
}

func (b *VerificationBuilder) BuildCard(verified bool) (*verification.Verification, error) {
	return verification.NewCardVerification(b.AccessRequestID, b.AmountPaise, b.SessionID, verified, b.CreatedAt)
}

func (b *VerificationBuilder) Reconstruct() *verification.Verification {
	var ref, handle, session *string
	if b.TransactionReference != "" {
		ref = &b.TransactionReference
	}
	if b.PayerHandle != "" {
		handle = &b.PayerHandle
	}
	if b.SessionID != "" {
		session = &b.SessionID
	}
	var verifiedAt *time.Time
	if b.Status == verification.StatusVerified {
		at := b.UpdatedAt
		verifiedAt = &at
	}
	return verification.ReconstructVerification(
		b.ID, b.AccessRequestID, b.Channel, b.Status, b.AmountPaise,
		ref, handle, session, verifiedAt, b.CreatedAt, b.UpdatedAt,
	)
}

// Fluent builder methods
func (b *VerificationBuilder) WithAccessRequestID(id uuid.UUID) *VerificationBuilder {
	b.AccessRequestID = id
	return b
}

func (b *VerificationBuilder) WithTransactionReference(ref string) *VerificationBuilder {
	b.TransactionReference = ref
	return b
}

func (b *VerificationBuilder) WithPayerHandle(handle string) *VerificationBuilder {
	b.PayerHandle = handle
	return b
}

func (b *VerificationBuilder) WithSessionID(sessionID string) *VerificationBuilder {
	b.SessionID = sessionID
	return b
}

func (b *VerificationBuilder) WithStatus(status verification.Status) *VerificationBuilder {
	b.Status = status
	return b
}

func (b *VerificationBuilder) AsCard() *VerificationBuilder {
	b.Channel = verification.ChannelCard
	return b
}

func (b *VerificationBuilder) AsVerified() *VerificationBuilder {
	b.Status = verification.StatusVerified
	return b
}

func (b *VerificationBuilder) AsRejected() *VerificationBuilder {
	b.Status = verification.StatusRejected
	return b
}
