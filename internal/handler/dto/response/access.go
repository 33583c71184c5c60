package response

import (
	"ideagate/internal/domain/access"
	"ideagate/internal/domain/accessrequest"
	"ideagate/internal/usecase/commands"
	"ideagate/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccessRequestResponse struct {
	ID          string `json:"id"`
	IdeaID      string `json:"idea_id"`
	CreatorID   string `json:"creator_id"`
	RequesterID string `json:"requester_id"`
	Status      string `json:"status"`
	AmountPaise int64  `json:"amount_paise"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromAccessRequest(r *accessrequest.AccessRequest) *AccessRequestResponse {
	return &AccessRequestResponse{
		ID:          r.ID().String(),
		IdeaID:      r.IdeaID().String(),
		CreatorID:   r.CreatorID().String(),
		RequesterID: r.RequesterID().String(),
		Status:      r.Status().String(),
		AmountPaise: r.AmountPaise(),
		CreatedAt:   r.CreatedAt().Unix(),
		UpdatedAt:   r.UpdatedAt().Unix(),
	}
}

type AccessStateResponse struct {
	RequestID *string `json:"request_id,omitempty"`
	State     string  `json:"state"`
}

func FromAccessStateView(v *queries.AccessStateView) *AccessStateResponse {
	resp := &AccessStateResponse{State: v.State.String()}
	if v.RequestID != nil {
		id := v.RequestID.String()
		resp.RequestID = &id
	}
	return resp
}

type AccessStateBatchResponse struct {
	IdeaID string            `json:"idea_id"`
	States map[string]string `json:"states"`
}

func FromAccessStateBatch(ideaID uuid.UUID, states map[uuid.UUID]access.State) *AccessStateBatchResponse {
	out := make(map[string]string, len(states))
	for id, st := range states {
		out[id.String()] = st.String()
	}
	return &AccessStateBatchResponse{
		IdeaID: ideaID.String(),
		States: out,
	}
}

type CheckoutSessionResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

func FromCheckoutSession(s *commands.CheckoutSession) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		SessionID:   s.SessionID,
		CheckoutURL: s.CheckoutURL,
	}
}
