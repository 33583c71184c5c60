package verification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTransactionReference = errors.New("transaction reference is required")
	ErrEmptySessionID            = errors.New("checkout session id is required")
	ErrAlreadyFinalized          = errors.New("verification already finalized")
	ErrInvalidReviewStatus       = errors.New("review must verify or reject")
)

// Proof is the requester-supplied evidence of a manual bank/wallet transfer.
type Proof struct {
	TransactionReference string
	PayerHandle          string
}

type Verification struct {
	id                   uuid.UUID
	accessRequestID      uuid.UUID
	channel              Channel
	status               Status
	amountPaise          int64
	transactionReference *string
	payerHandle          *string
	externalSessionID    *string
	verifiedAt           *time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

// NewManualVerification records a manual-transfer attempt awaiting operator
// review. Unlike the card rail, it never self-verifies.
func NewManualVerification(accessRequestID uuid.UUID, amountPaise int64, proof Proof, now time.Time) (*Verification, error) {
	ref := strings.TrimSpace(proof.TransactionReference)
	if ref == "" {
		return nil, ErrEmptyTransactionReference
	}
	var handle *string
	if h := strings.TrimSpace(proof.PayerHandle); h != "" {
		handle = &h
	}
	return &Verification{
		id:                   uuid.New(),
		accessRequestID:      accessRequestID,
		channel:              ChannelManualTransfer,
		status:               StatusPending,
		amountPaise:          amountPaise,
		transactionReference: &ref,
		payerHandle:          handle,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// NewCardVerification records the outcome the payment processor reported for
// a checkout session. The session id is the idempotency key: replays of the
// same event map to the same record.
func NewCardVerification(accessRequestID uuid.UUID, amountPaise int64, sessionID string, verified bool, now time.Time) (*Verification, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrEmptySessionID
	}
	v := &Verification{
		id:                uuid.New(),
		accessRequestID:   accessRequestID,
		channel:           ChannelCard,
		status:            StatusRejected,
		amountPaise:       amountPaise,
		externalSessionID: &sessionID,
		createdAt:         now,
		updatedAt:         now,
	}
	if verified {
		v.status = StatusVerified
		at := now
		v.verifiedAt = &at
	}
	return v, nil
}

func ReconstructVerification(
	id, accessRequestID uuid.UUID,
	channel Channel,
	status Status,
	amountPaise int64,
	transactionReference, payerHandle, externalSessionID *string,
	verifiedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Verification {
	return &Verification{
		id:                   id,
		accessRequestID:      accessRequestID,
		channel:              channel,
		status:               status,
		amountPaise:          amountPaise,
		transactionReference: transactionReference,
		payerHandle:          payerHandle,
		externalSessionID:    externalSessionID,
		verifiedAt:           verifiedAt,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Review applies the operator's single decision to a pending manual
// verification.
func (v *Verification) Review(to Status, now time.Time) error {
	if to != StatusVerified && to != StatusRejected {
		return ErrInvalidReviewStatus
	}
	if v.status.IsFinal() {
		return ErrAlreadyFinalized
	}
	v.status = to
	v.updatedAt = now
	if to == StatusVerified {
		at := now
		v.verifiedAt = &at
	}
	return nil
}

func (v *Verification) IsVerified() bool {
	return v.status == StatusVerified
}

func (v *Verification) ID() uuid.UUID                  { return v.id }
func (v *Verification) AccessRequestID() uuid.UUID     { return v.accessRequestID }
func (v *Verification) Channel() Channel               { return v.channel }
func (v *Verification) Status() Status                 { return v.status }
func (v *Verification) AmountPaise() int64             { return v.amountPaise }
func (v *Verification) TransactionReference() *string  { return v.transactionReference }
func (v *Verification) PayerHandle() *string           { return v.payerHandle }
func (v *Verification) ExternalSessionID() *string     { return v.externalSessionID }
func (v *Verification) VerifiedAt() *time.Time         { return v.verifiedAt }
func (v *Verification) CreatedAt() time.Time           { return v.createdAt }
func (v *Verification) UpdatedAt() time.Time           { return v.updatedAt }
