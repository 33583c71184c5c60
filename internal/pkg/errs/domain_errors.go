package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Access request errors
	ErrRequestNotFound  = errors.New("access request not found")
	ErrDuplicateRequest = errors.New("duplicate access request")
	ErrAlreadyDecided   = errors.New("access request already decided")
	ErrNotOwner         = errors.New("actor is not the idea owner")
	ErrNotRequester     = errors.New("actor is not the requester")

	// Payment verification errors
	ErrInvalidProof           = errors.New("invalid payment proof")
	ErrInvalidSignature       = errors.New("invalid webhook signature")
	ErrMalformedEvent         = errors.New("malformed webhook event")
	ErrUnknownSession         = errors.New("unknown checkout session")
	ErrVerificationConflict   = errors.New("verification conflict")
	ErrAlreadyFinalized       = errors.New("verification already finalized")
	ErrDuplicateActiveRequest = errors.New("request already has a verified payment")
	ErrVerificationNotFound   = errors.New("verification not found")
	ErrCheckoutUnavailable    = errors.New("checkout session unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
