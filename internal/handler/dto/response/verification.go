package response

import (
	"ideagate/internal/domain/verification"
)

type VerificationResponse struct {
	ID                   string  `json:"id"`
	AccessRequestID      string  `json:"access_request_id"`
	Channel              string  `json:"channel"`
	Status               string  `json:"status"`
	AmountPaise          int64   `json:"amount_paise"`
	TransactionReference *string `json:"transaction_reference,omitempty"`
	PayerHandle          *string `json:"payer_handle,omitempty"`
	VerifiedAt           *int64  `json:"verified_at,omitempty"`
	CreatedAt            int64   `json:"created_at"`
	UpdatedAt            int64   `json:"updated_at"`
}

func FromVerification(v *verification.Verification) *VerificationResponse {
	resp := &VerificationResponse{
		ID:                   v.ID().String(),
		AccessRequestID:      v.AccessRequestID().String(),
		Channel:              v.Channel().String(),
		Status:               v.Status().String(),
		AmountPaise:          v.AmountPaise(),
		TransactionReference: v.TransactionReference(),
		PayerHandle:          v.PayerHandle(),
		CreatedAt:            v.CreatedAt().Unix(),
		UpdatedAt:            v.UpdatedAt().Unix(),
	}
	if at := v.VerifiedAt(); at != nil {
		unix := at.Unix()
		resp.VerifiedAt = &unix
	}
	return resp
}
