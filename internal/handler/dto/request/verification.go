package request

type SubmitManualProofRequest struct {
	TransactionReference string `json:"transaction_reference" binding:"required,max=128"`
	PayerHandle          string `json:"payer_handle" binding:"omitempty,max=128"`
}

type ReviewManualProofRequest struct {
	Decision string `json:"decision" binding:"required,oneof=verified rejected"`
}
