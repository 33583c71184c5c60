package repository

import (
	"context"
	"time"

	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/infra"

	"github.com/google/uuid"
)

// Constraint names from db/migrations; used to map unique violations onto
// the invariant that fired.
const (
	ConstraintActivePair     = "access_requests_active_pair_idx"
	ConstraintRequestSession = "access_requests_session_idx"
)

type AccessRequestRepository struct {
	db DBTX
}

func NewAccessRequestRepository(db DBTX) *AccessRequestRepository {
	return &AccessRequestRepository{db: db}
}

// Create inserts a new pending request. The partial unique index on
// (idea_id, requester_id) WHERE status <> 'denied' makes "at most one active
// request per pair" a database guarantee rather than a check-then-act race.
func (r *AccessRequestRepository) Create(ctx context.Context, req *accessrequest.AccessRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO access_requests
			(id, idea_id, creator_id, requester_id, status, amount_paise, external_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID(), req.IdeaID(), req.CreatorID(), req.RequesterID(),
		req.Status().String(), req.AmountPaise(), req.ExternalSessionID(),
		req.CreatedAt(), req.UpdatedAt(),
	)
	if err != nil {
		if infra.PgConstraint(err) == ConstraintActivePair {
			return infra.WrapRepoErr("active request already exists for pair", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create access request", err)
	}
	return nil
}

func (r *AccessRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*accessrequest.AccessRequest, error) {
	return r.scanOne(ctx, `
		SELECT id, idea_id, creator_id, requester_id, status, amount_paise, external_session_id, created_at, updated_at
		FROM access_requests
		WHERE id = $1`, id)
}

// FindBySessionID resolves the request a webhook event refers to. Used by
// the card rail only; session ids are unique across requests.
func (r *AccessRequestRepository) FindBySessionID(ctx context.Context, sessionID string) (*accessrequest.AccessRequest, error) {
	return r.scanOne(ctx, `
		SELECT id, idea_id, creator_id, requester_id, status, amount_paise, external_session_id, created_at, updated_at
		FROM access_requests
		WHERE external_session_id = $1`, sessionID)
}

// UpdateDecision is the conditional write behind Decide: it only succeeds
// while the request is still pending, which makes a double-submitted decision
// a no-op observable as KindConflict.
func (r *AccessRequestRepository) UpdateDecision(ctx context.Context, id uuid.UUID, status accessrequest.Status, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE access_requests
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'pending'`,
		id, status.String(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update decision", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not pending", nil, infra.KindConflict)
	}
	return nil
}

// SetCheckoutSession stores the processor's session id as the webhook
// idempotency key for the request.
func (r *AccessRequestRepository) SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE access_requests
		SET external_session_id = $2, updated_at = $3
		WHERE id = $1`,
		id, sessionID, now,
	)
	if err != nil {
		if infra.PgConstraint(err) == ConstraintRequestSession {
			return infra.WrapRepoErr("session id already attached elsewhere", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to set checkout session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("access request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AccessRequestRepository) scanOne(ctx context.Context, sql string, arg any) (*accessrequest.AccessRequest, error) {
	var (
		id, ideaID, creatorID, requesterID uuid.UUID
		status                             string
		amountPaise                        int64
		externalSessionID                  *string
		createdAt, updatedAt               time.Time
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&id, &ideaID, &creatorID, &requesterID, &status, &amountPaise, &externalSessionID, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("access request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find access request", err)
	}
	return accessrequest.ReconstructAccessRequest(
		id, ideaID, creatorID, requesterID,
		accessrequest.Status(status), amountPaise, externalSessionID,
		createdAt, updatedAt,
	), nil
}
