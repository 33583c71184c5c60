package readstore

import (
	"context"
	"time"

	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/infra"
	"ideagate/internal/infra/repository"
	"ideagate/internal/usecase/queries"

	"github.com/google/uuid"
)

// AccessStateReadStore backs the decision engine's query surface. It never
// writes; the derivation itself lives in the domain layer.
type AccessStateReadStore struct {
	db repository.DBTX
}

func NewAccessStateReadStore(db repository.DBTX) *AccessStateReadStore {
	return &AccessStateReadStore{db: db}
}

func (s *AccessStateReadStore) FindStateInputs(ctx context.Context, requestID uuid.UUID) (*queries.StateInputs, error) {
	row := s.db.QueryRow(ctx, `
		SELECT r.id, r.idea_id, r.creator_id, r.requester_id, r.status, r.amount_paise, r.updated_at,
		       EXISTS (
		           SELECT 1 FROM payment_verifications v
		           WHERE v.access_request_id = r.id AND v.status = 'verified'
		       ) AS has_verified
		FROM access_requests r
		WHERE r.id = $1`, requestID)

	var in queries.StateInputs
	var status string
	var updatedAt time.Time
	err := row.Scan(&in.RequestID, &in.IdeaID, &in.CreatorID, &in.RequesterID, &status, &in.AmountPaise, &updatedAt, &in.HasVerified)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("access request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read access state inputs", err)
	}
	in.Status = accessrequest.Status(status)
	in.UpdatedAt = updatedAt
	return &in, nil
}

// FindStateInputsBatch returns one row per requester in requesterIDs who has
// a request for the idea. A requester can carry a stale denied request next
// to a newer active one; DISTINCT ON picks the active one, falling back to
// the most recent denial. Requesters with no row at all are absent from the
// result; the query layer fills those in as NoRequest.
func (s *AccessStateReadStore) FindStateInputsBatch(ctx context.Context, ideaID uuid.UUID, requesterIDs []uuid.UUID) ([]queries.StateInputs, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT ON (r.requester_id)
		       r.id, r.idea_id, r.creator_id, r.requester_id, r.status, r.amount_paise, r.updated_at,
		       EXISTS (
		           SELECT 1 FROM payment_verifications v
		           WHERE v.access_request_id = r.id AND v.status = 'verified'
		       ) AS has_verified
		FROM access_requests r
		WHERE r.idea_id = $1 AND r.requester_id = ANY($2)
		ORDER BY r.requester_id, (r.status = 'denied'), r.created_at DESC`,
		ideaID, requesterIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read access state batch", err)
	}
	defer rows.Close()

	var result []queries.StateInputs
	for rows.Next() {
		var in queries.StateInputs
		var status string
		if err := rows.Scan(&in.RequestID, &in.IdeaID, &in.CreatorID, &in.RequesterID, &status, &in.AmountPaise, &in.UpdatedAt, &in.HasVerified); err != nil {
			return nil, infra.WrapRepoErr("failed to scan access state row", err)
		}
		in.Status = accessrequest.Status(status)
		result = append(result, in)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate access state rows", err)
	}
	return result, nil
}
