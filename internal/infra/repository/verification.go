package repository

import (
	"context"
	"time"

	"ideagate/internal/domain/verification"
	"ideagate/internal/infra"

	"github.com/google/uuid"
)

const (
	ConstraintVerificationSession = "payment_verifications_session_idx"
	ConstraintOneVerified         = "payment_verifications_one_verified_idx"
)

type VerificationRepository struct {
	db DBTX
}

func NewVerificationRepository(db DBTX) *VerificationRepository {
	return &VerificationRepository{db: db}
}

const upsertCardSQL = `
	INSERT INTO payment_verifications
		(id, access_request_id, channel, status, amount_paise,
		 transaction_reference, payer_handle, external_session_id,
		 verified_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (external_session_id) WHERE external_session_id IS NOT NULL`

const (
	cardConflictKeep = ` DO NOTHING`

	// A confirmation may arrive after a failure for the same session; it must
	// win. A verified row is never overwritten, so replays stop here too.
	cardConflictUpgrade = ` DO UPDATE
		SET status = EXCLUDED.status,
		    amount_paise = EXCLUDED.amount_paise,
		    verified_at = EXCLUDED.verified_at,
		    updated_at = EXCLUDED.updated_at
		WHERE payment_verifications.status = 'rejected'`
)

// UpsertCardBySession records a card outcome keyed by the checkout session
// id. Rejections never touch an existing row for the session; a verified
// outcome additionally upgrades a prior rejection, so late confirmations
// survive an earlier failed event. applied=false means the delivery changed
// nothing (a replay), so callers can skip side effects. A verified write
// racing an already-verified sibling (e.g. a reviewed manual transfer)
// violates the one-verified-per-request index and surfaces as KindConflict;
// the original verified record is untouched.
func (r *VerificationRepository) UpsertCardBySession(ctx context.Context, v *verification.Verification) (bool, error) {
	query := upsertCardSQL + cardConflictKeep
	if v.Status() == verification.StatusVerified {
		query = upsertCardSQL + cardConflictUpgrade
	}
	tag, err := r.db.Exec(ctx, query,
		v.ID(), v.AccessRequestID(), v.Channel().String(), v.Status().String(), v.AmountPaise(),
		v.TransactionReference(), v.PayerHandle(), v.ExternalSessionID(),
		v.VerifiedAt(), v.CreatedAt(), v.UpdatedAt(),
	)
	if err != nil {
		if infra.PgConstraint(err) == ConstraintOneVerified {
			return false, infra.WrapRepoErr("another verification is already verified", err, infra.KindConflict)
		}
		return false, infra.WrapRepoErr("failed to upsert card verification", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateManual appends a pending manual-transfer attempt. Resubmission after
// rejection is a new row, never a mutation of the finalized one.
func (r *VerificationRepository) CreateManual(ctx context.Context, v *verification.Verification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payment_verifications
			(id, access_request_id, channel, status, amount_paise,
			 transaction_reference, payer_handle, external_session_id,
			 verified_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		v.ID(), v.AccessRequestID(), v.Channel().String(), v.Status().String(), v.AmountPaise(),
		v.TransactionReference(), v.PayerHandle(), v.ExternalSessionID(),
		v.VerifiedAt(), v.CreatedAt(), v.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create manual verification", err)
	}
	return nil
}

func (r *VerificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*verification.Verification, error) {
	var (
		vID, requestID                                 uuid.UUID
		channel, status                                string
		amountPaise                                    int64
		transactionReference, payerHandle, sessionID   *string
		verifiedAt                                     *time.Time
		createdAt, updatedAt                           time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, access_request_id, channel, status, amount_paise,
		       transaction_reference, payer_handle, external_session_id,
		       verified_at, created_at, updated_at
		FROM payment_verifications
		WHERE id = $1`, id,
	).Scan(&vID, &requestID, &channel, &status, &amountPaise,
		&transactionReference, &payerHandle, &sessionID,
		&verifiedAt, &createdAt, &updatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find verification", err)
	}
	return verification.ReconstructVerification(
		vID, requestID,
		verification.Channel(channel), verification.Status(status), amountPaise,
		transactionReference, payerHandle, sessionID,
		verifiedAt, createdAt, updatedAt,
	), nil
}

func (r *VerificationRepository) HasVerified(ctx context.Context, accessRequestID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM payment_verifications
			WHERE access_request_id = $1 AND status = 'verified'
		)`, accessRequestID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check verified verification", err)
	}
	return exists, nil
}

// Finalize applies the operator's decision to a pending verification. The
// WHERE status = 'pending' clause enforces the single-decision rule; zero
// rows means someone else finalized first (KindConflict). Verifying can also
// lose to a concurrently verified card payment through the
// one-verified-per-request index.
func (r *VerificationRepository) Finalize(ctx context.Context, id uuid.UUID, to verification.Status, now time.Time) error {
	var verifiedAt *time.Time
	if to == verification.StatusVerified {
		verifiedAt = &now
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE payment_verifications
		SET status = $2, verified_at = $3, updated_at = $4
		WHERE id = $1 AND status = 'pending'`,
		id, to.String(), verifiedAt, now,
	)
	if err != nil {
		if infra.PgConstraint(err) == ConstraintOneVerified {
			return infra.WrapRepoErr("another verification is already verified", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to finalize verification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("verification not pending", nil, infra.KindConflict)
	}
	return nil
}
