//go:build unit || e2e

package builder

import (
	"time"

	"ideagate/internal/domain/accessrequest"
	reqdto "ideagate/internal/handler/dto/request"
	"ideagate/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccessRequestBuilder struct {
	ID          uuid.UUID
	IdeaID      uuid.UUID
	CreatorID   uuid.UUID
	RequesterID uuid.UUID
	Status      accessrequest.Status
	AmountPaise int64
	SessionID   *string
	HasVerified bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewAccessRequestBuilder() *AccessRequestBuilder {
	now := time.Now()
	return &AccessRequestBuilder{
		ID:          uuid.New(),
		IdeaID:      uuid.New(),
		CreatorID:   uuid.New(),
		RequesterID: uuid.New(),
		Status:      accessrequest.StatusPending,
		AmountPaise: 49900,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *AccessRequestBuilder) With(mutate func(*AccessRequestBuilder)) *AccessRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AccessRequestBuilder) BuildDomain() (*accessrequest.AccessRequest, error) {
	return accessrequest.NewAccessRequest(b.IdeaID, b.CreatorID, b.RequesterID, b.AmountPaise, b.CreatedAt)
}

func (b *AccessRequestBuilder) Reconstruct() *accessrequest.AccessRequest {
	return accessrequest.ReconstructAccessRequest(
		b.ID, b.IdeaID, b.CreatorID, b.RequesterID,
		b.Status, b.AmountPaise, b.SessionID,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *AccessRequestBuilder) BuildCreateRequestDTO() reqdto.CreateAccessRequest {
	return reqdto.CreateAccessRequest{
		IdeaID:      b.IdeaID,
		CreatorID:   b.CreatorID,
		AmountPaise: b.AmountPaise,
	}
}

func (b *AccessRequestBuilder) BuildStateInputs() *queries.StateInputs {
	return &queries.StateInputs{
		RequestID:   b.ID,
		IdeaID:      b.IdeaID,
		CreatorID:   b.CreatorID,
		RequesterID: b.RequesterID,
		Status:      b.Status,
		AmountPaise: b.AmountPaise,
		HasVerified: b.HasVerified,
		UpdatedAt:   b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *AccessRequestBuilder) WithCreatorID(id uuid.UUID) *AccessRequestBuilder {
	b.CreatorID = id
	return b
}

func (b *AccessRequestBuilder) WithRequesterID(id uuid.UUID) *AccessRequestBuilder {
	b.RequesterID = id
	return b
}

func (b *AccessRequestBuilder) WithAmountPaise(amount int64) *AccessRequestBuilder {
	b.AmountPaise = amount
	return b
}

func (b *AccessRequestBuilder) WithStatus(status accessrequest.Status) *AccessRequestBuilder {
	b.Status = status
	return b
}

func (b *AccessRequestBuilder) WithSessionID(sessionID string) *AccessRequestBuilder {
	b.SessionID = &sessionID
	return b
}

func (b *AccessRequestBuilder) WithHasVerified(v bool) *AccessRequestBuilder {
	b.HasVerified = v
	return b
}

func (b *AccessRequestBuilder) AsApproved() *AccessRequestBuilder {
	b.Status = accessrequest.StatusApproved
	return b
}

func (b *AccessRequestBuilder) AsDenied() *AccessRequestBuilder {
	b.Status = accessrequest.StatusDenied
	return b
}
