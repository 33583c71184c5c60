package request

import (
	"github.com/google/uuid"
)

type CreateAccessRequest struct {
	IdeaID      uuid.UUID `json:"idea_id" binding:"required"`
	CreatorID   uuid.UUID `json:"creator_id" binding:"required"`
	AmountPaise int64     `json:"amount_paise" binding:"required,gt=0"`
}

type DecideAccessRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved denied"`
}
