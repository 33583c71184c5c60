//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ideagate/internal/domain/verification"
	"ideagate/internal/handler/api"
	resdto "ideagate/internal/handler/dto/response"
	"ideagate/internal/handler/middleware"
	"ideagate/internal/pkg/errs"
	"ideagate/tests/common/builder"
	"ideagate/tests/common/httptest"
	"ideagate/tests/common/testutil"
	commandsmock "ideagate/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VerificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	actorID      uuid.UUID
}

func (s *VerificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	handler := api.NewVerificationHandler(s.mockCommands)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", middleware.RoleOperator)
		c.Next()
	}

	s.router.POST("/access-requests/:id/manual-proof", authMiddleware, handler.SubmitProof)
	s.router.POST("/verifications/:id/review", authMiddleware, handler.Review)
}

func (s *VerificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerificationHandlerTestSuite))
}

// ================================================================================
// TestSubmitProof
// ================================================================================

func (s *VerificationHandlerTestSuite) TestSubmitProof() {
	requestID := uuid.New()
	url := "/access-requests/" + requestID.String() + "/manual-proof"
	body := map[string]any{"transaction_reference": "UTR-9000", "payer_handle": "payer@upi"}

	s.Run("success: returns 201 with the pending verification", func() {
		vb := builder.NewVerificationBuilder().WithAccessRequestID(requestID)
		s.mockCommands.EXPECT().
			SubmitManualProof(gomock.Any(), requestID, s.actorID, verification.Proof{
				TransactionReference: "UTR-9000",
				PayerHandle:          "payer@upi",
			}).
			Return(vb.Reconstruct(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("pending", resp.Status)
		s.Equal("manual_transfer", resp.Channel)
	})

	s.Run("missing transaction reference returns 400", func() {
		payload := testutil.DtoMap(s.T(), body, testutil.Field("transaction_reference", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("non-requester returns 403", func() {
		s.mockCommands.EXPECT().
			SubmitManualProof(gomock.Any(), requestID, s.actorID, gomock.Any()).
			Return(nil, errs.ErrNotRequester)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "requester")
	})

	s.Run("already verified returns 409", func() {
		s.mockCommands.EXPECT().
			SubmitManualProof(gomock.Any(), requestID, s.actorID, gomock.Any()).
			Return(nil, errs.ErrDuplicateActiveRequest)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown request returns 404", func() {
		s.mockCommands.EXPECT().
			SubmitManualProof(gomock.Any(), requestID, s.actorID, gomock.Any()).
			Return(nil, errs.ErrRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestReview
// ================================================================================

func (s *VerificationHandlerTestSuite) TestReview() {
	verificationID := uuid.New()
	url := "/verifications/" + verificationID.String() + "/review"

	s.Run("verify decision returns 200 with the verified record", func() {
		vb := builder.NewVerificationBuilder().AsVerified()
		vb.ID = verificationID
		s.mockCommands.EXPECT().
			ReviewManualProof(gomock.Any(), verificationID, s.actorID, true).
			Return(vb.Reconstruct(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "verified"}, "bearer-token")

		var resp resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("verified", resp.Status)
		s.NotNil(resp.VerifiedAt)
	})

	s.Run("reject decision passes approve=false", func() {
		vb := builder.NewVerificationBuilder().AsRejected()
		vb.ID = verificationID
		s.mockCommands.EXPECT().
			ReviewManualProof(gomock.Any(), verificationID, s.actorID, false).
			Return(vb.Reconstruct(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "rejected"}, "bearer-token")

		var resp resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("rejected", resp.Status)
	})

	s.Run("invalid decision value returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "undo"}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("already finalized returns 409", func() {
		s.mockCommands.EXPECT().
			ReviewManualProof(gomock.Any(), verificationID, s.actorID, true).
			Return(nil, errs.ErrAlreadyFinalized)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "verified"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "finalized")
	})

	s.Run("conflicting verified record returns 409", func() {
		s.mockCommands.EXPECT().
			ReviewManualProof(gomock.Any(), verificationID, s.actorID, true).
			Return(nil, errs.ErrVerificationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "verified"}, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown verification returns 404", func() {
		s.mockCommands.EXPECT().
			ReviewManualProof(gomock.Any(), verificationID, s.actorID, true).
			Return(nil, errs.ErrVerificationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"decision": "verified"}, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
