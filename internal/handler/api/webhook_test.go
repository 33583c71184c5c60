//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"ideagate/internal/handler/api"
	"ideagate/internal/pkg/errs"
	"ideagate/internal/usecase/commands"
	"ideagate/tests/common/httptest"
	commandsmock "ideagate/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	handler := api.NewWebhookHandler(s.mockCommands)

	s.router.POST("/webhooks/payments", handler.HandleCardEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(body []byte, signature string) map[string]string {
	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", body,
		map[string]string{api.SignatureHeader: signature, "Content-Type": "application/json"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *WebhookHandlerTestSuite) TestHandleCardEvent() {
	payload := []byte(`{"id":"evt_1","type":"checkout.completed","data":{"session_id":"cs_1"}}`)

	s.Run("verified delivery is acked with its outcome", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), payload, "t=1,v1=sig").
			Return(&commands.WebhookResult{Outcome: commands.OutcomeVerified, EventType: "checkout.completed"}, nil)

		resp := s.post(payload, "t=1,v1=sig")
		s.Equal("verified", resp["outcome"])
		s.Equal("true", resp["received"])
	})

	s.Run("replayed delivery is still a 200", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), payload, gomock.Any()).
			Return(&commands.WebhookResult{Outcome: commands.OutcomeReplayed, EventType: "checkout.completed"}, nil)

		resp := s.post(payload, "t=1,v1=sig")
		s.Equal("replayed", resp["outcome"])
	})

	s.Run("unknown session is still a 200", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), payload, gomock.Any()).
			Return(&commands.WebhookResult{Outcome: commands.OutcomeUnknownSession, EventType: "checkout.completed"}, nil)

		resp := s.post(payload, "t=1,v1=sig")
		s.Equal("unknown_session", resp["outcome"])
	})

	s.Run("invalid signature returns 400 for processor retry", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), payload, gomock.Any()).
			Return(nil, errs.ErrInvalidSignature)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", payload,
			map[string]string{api.SignatureHeader: "t=1,v1=bad"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed event returns 400", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrMalformedEvent)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments",
			[]byte(`{"id":`), map[string]string{api.SignatureHeader: "t=1,v1=sig"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("storage failure returns 500 so the processor redelivers", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), payload, gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", payload,
			map[string]string{api.SignatureHeader: "t=1,v1=sig"})
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
