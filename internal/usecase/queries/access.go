package queries

import (
	"context"
	"time"

	"ideagate/internal/domain/access"
	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/infra"
	"ideagate/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=access.go -destination=../../../tests/mock/queries/access_mock.go -package=queriesmock

// StateInputs are the two independent facts the derivation needs: the
// owner's decision and whether any verification is verified.
type StateInputs struct {
	RequestID   uuid.UUID
	IdeaID      uuid.UUID
	CreatorID   uuid.UUID
	RequesterID uuid.UUID
	Status      accessrequest.Status
	AmountPaise int64
	HasVerified bool
	UpdatedAt   time.Time
}

type AccessStateView struct {
	RequestID   *uuid.UUID   `json:"request_id,omitempty"`
	RequesterID uuid.UUID    `json:"requester_id"`
	State       access.State `json:"state"`
}

type AccessStateReadStore interface {
	FindStateInputs(ctx context.Context, requestID uuid.UUID) (*StateInputs, error)
	FindStateInputsBatch(ctx context.Context, ideaID uuid.UUID, requesterIDs []uuid.UUID) ([]StateInputs, error)
}

type AccessQueries interface {
	Resolve(ctx context.Context, requestID uuid.UUID) (*AccessStateView, error)
	ResolveBatch(ctx context.Context, ideaID uuid.UUID, requesterIDs []uuid.UUID) (map[uuid.UUID]access.State, error)
}

type accessQueriesImpl struct {
	store AccessStateReadStore
}

func NewAccessQueries(store AccessStateReadStore) AccessQueries {
	return &accessQueriesImpl{store: store}
}

// Resolve recomputes the access state from current inputs on every call.
// The value is never cached beyond the request scope because the decision
// and the payment land independently and in either order. A missing request
// resolves to the NoRequest sentinel, not an error.
func (q *accessQueriesImpl) Resolve(ctx context.Context, requestID uuid.UUID) (*AccessStateView, error) {
	in, err := q.store.FindStateInputs(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &AccessStateView{State: access.StateNoRequest}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	id := in.RequestID
	return &AccessStateView{
		RequestID:   &id,
		RequesterID: in.RequesterID,
		State:       access.Derive(in.Status, in.HasVerified),
	}, nil
}

// ResolveBatch answers for every requester id given, including those who
// never asked, in a single round trip. Dashboards depend on the complete
// map.
func (q *accessQueriesImpl) ResolveBatch(ctx context.Context, ideaID uuid.UUID, requesterIDs []uuid.UUID) (map[uuid.UUID]access.State, error) {
	result := make(map[uuid.UUID]access.State, len(requesterIDs))
	for _, id := range requesterIDs {
		result[id] = access.StateNoRequest
	}
	if len(requesterIDs) == 0 {
		return result, nil
	}

	rows, err := q.store.FindStateInputsBatch(ctx, ideaID, requesterIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, in := range rows {
		st := access.Derive(in.Status, in.HasVerified)
		// A denied request can coexist with a requester's newer active one.
		// The store prefers the active row, but if a stale denial slips
		// through it must not shadow a state already resolved from a row.
		if cur, ok := result[in.RequesterID]; ok && cur != access.StateNoRequest && st == access.StateDenied {
			continue
		}
		result[in.RequesterID] = st
	}
	return result, nil
}
