package api

import (
	"errors"
	"net/http"

	"ideagate/internal/domain/verification"
	reqdto "ideagate/internal/handler/dto/request"
	resdto "ideagate/internal/handler/dto/response"
	"ideagate/internal/handler/httperr"
	"ideagate/internal/handler/middleware"
	"ideagate/internal/pkg/errs"
	"ideagate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VerificationHandler struct {
	cmds commands.PaymentCommands
}

func NewVerificationHandler(cmds commands.PaymentCommands) *VerificationHandler {
	return &VerificationHandler{cmds: cmds}
}

// @Summary Submit manual transfer proof
// @Description Attach a bank/wallet transfer reference for operator review
// @Tags verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Access request ID"
// @Param request body reqdto.SubmitManualProofRequest true "Proof"
// @Success 201 {object} resdto.VerificationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /access-requests/{id}/manual-proof [post]
func (h *VerificationHandler) SubmitProof(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitManualProofRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	created, err := h.cmds.SubmitManualProof(c.Request.Context(), requestID, actorID, verification.Proof{
		TransactionReference: req.TransactionReference,
		PayerHandle:          req.PayerHandle,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Access request not found", nil)
		case errors.Is(err, errs.ErrNotRequester):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the requester may submit proof", nil)
		case errors.Is(err, errs.ErrInvalidProof):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Transaction reference is required", nil)
		case errors.Is(err, errs.ErrDuplicateActiveRequest):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment already verified for this request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVerification(created))
}

// @Summary Review manual transfer proof
// @Description Verify or reject a pending manual verification (operator only)
// @Tags verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Verification ID"
// @Param request body reqdto.ReviewManualProofRequest true "Review decision"
// @Success 200 {object} resdto.VerificationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /verifications/{id}/review [post]
func (h *VerificationHandler) Review(c *gin.Context) {
	verificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid verification ID format", nil)
		return
	}
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ReviewManualProofRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	reviewed, err := h.cmds.ReviewManualProof(c.Request.Context(), verificationID, reviewerID, req.Decision == "verified")
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVerificationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Verification not found", nil)
		case errors.Is(err, errs.ErrAlreadyFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Verification already finalized", nil)
		case errors.Is(err, errs.ErrVerificationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Another verification is already verified for this request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerification(reviewed))
}
