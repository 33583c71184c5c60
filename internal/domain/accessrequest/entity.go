package accessrequest

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrSelfRequest     = errors.New("requester cannot be the idea owner")
	ErrAlreadyDecided  = errors.New("request already decided")
	ErrInvalidDecision = errors.New("invalid decision")
)

// AccessRequest is a requester's ask to unlock an idea's full description.
// The owner's decision (status) and the payment verifications attached to the
// request evolve independently; neither alone grants access.
type AccessRequest struct {
	id                uuid.UUID
	ideaID            uuid.UUID
	creatorID         uuid.UUID
	requesterID       uuid.UUID
	status            Status
	amountPaise       int64
	externalSessionID *string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewAccessRequest(ideaID, creatorID, requesterID uuid.UUID, amountPaise int64, now time.Time) (*AccessRequest, error) {
	if amountPaise <= 0 {
		return nil, ErrInvalidAmount
	}
	if creatorID == requesterID {
		return nil, ErrSelfRequest
	}
	return &AccessRequest{
		id:          uuid.New(),
		ideaID:      ideaID,
		creatorID:   creatorID,
		requesterID: requesterID,
		status:      StatusPending,
		amountPaise: amountPaise,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructAccessRequest(
	id, ideaID, creatorID, requesterID uuid.UUID,
	status Status,
	amountPaise int64,
	externalSessionID *string,
	createdAt, updatedAt time.Time,
) *AccessRequest {
	return &AccessRequest{
		id:                id,
		ideaID:            ideaID,
		creatorID:         creatorID,
		requesterID:       requesterID,
		status:            status,
		amountPaise:       amountPaise,
		externalSessionID: externalSessionID,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Decide applies the owner's decision. Allowed transitions are
// pending -> approved and pending -> denied only.
func (r *AccessRequest) Decide(decision Decision, now time.Time) error {
	if !decision.IsValid() {
		return ErrInvalidDecision
	}
	if r.status.IsTerminal() {
		return ErrAlreadyDecided
	}
	r.status = decision.ToStatus()
	r.updatedAt = now
	return nil
}

func (r *AccessRequest) IsDecided() bool {
	return r.status.IsTerminal()
}

func (r *AccessRequest) ID() uuid.UUID               { return r.id }
func (r *AccessRequest) IdeaID() uuid.UUID           { return r.ideaID }
func (r *AccessRequest) CreatorID() uuid.UUID        { return r.creatorID }
func (r *AccessRequest) RequesterID() uuid.UUID      { return r.requesterID }
func (r *AccessRequest) Status() Status              { return r.status }
func (r *AccessRequest) AmountPaise() int64          { return r.amountPaise }
func (r *AccessRequest) ExternalSessionID() *string  { return r.externalSessionID }
func (r *AccessRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *AccessRequest) UpdatedAt() time.Time        { return r.updatedAt }
