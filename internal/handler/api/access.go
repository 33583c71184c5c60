package api

import (
	"errors"
	"net/http"

	"ideagate/internal/domain/accessrequest"
	reqdto "ideagate/internal/handler/dto/request"
	resdto "ideagate/internal/handler/dto/response"
	"ideagate/internal/handler/httperr"
	"ideagate/internal/handler/middleware"
	"ideagate/internal/pkg/errs"
	"ideagate/internal/usecase/commands"
	"ideagate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccessHandler struct {
	cmds commands.AccessCommands
	q    queries.AccessQueries
}

func NewAccessHandler(cmds commands.AccessCommands, q queries.AccessQueries) *AccessHandler {
	return &AccessHandler{cmds: cmds, q: q}
}

// @Summary Create access request
// @Description Ask to unlock an idea's full description
// @Tags access-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAccessRequest true "Access request"
// @Success 201 {object} resdto.AccessRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /access-requests [post]
func (h *AccessHandler) Create(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.CreateRequest(c.Request.Context(), commands.CreateRequestParams{
		IdeaID:      req.IdeaID,
		CreatorID:   req.CreatorID,
		RequesterID: requesterID,
		AmountPaise: req.AmountPaise,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateRequest):
			httperr.AbortWithError(c, http.StatusConflict, err, "An active request already exists for this idea", nil)
		case errors.Is(err, accessrequest.ErrSelfRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot request access to your own idea", nil)
		case errors.Is(err, accessrequest.ErrInvalidAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Amount must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAccessRequest(created))
}

// @Summary Decide access request
// @Description Approve or deny a request (idea owner only)
// @Tags access-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Access request ID"
// @Param request body reqdto.DecideAccessRequest true "Decision"
// @Success 200 {object} resdto.AccessRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /access-requests/{id}/decision [post]
func (h *AccessHandler) Decide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.DecideAccessRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	decided, err := h.cmds.Decide(c.Request.Context(), id, actorID, accessrequest.Decision(req.Decision))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Access request not found", nil)
		case errors.Is(err, errs.ErrNotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the idea owner may decide", nil)
		case errors.Is(err, errs.ErrAlreadyDecided):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request already decided", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccessRequest(decided))
}

// @Summary Resolve access state
// @Description Derived state for a single access request
// @Tags access-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Access request ID"
// @Success 200 {object} resdto.AccessStateResponse
// @Failure 400 {object} map[string]string
// @Router /access-requests/{id}/state [get]
func (h *AccessHandler) GetState(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	view, err := h.q.Resolve(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccessStateView(view))
}

// @Summary Resolve access states for an idea
// @Description Derived state per requester, including requesters with no request
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Param requester_ids query []string true "Requester IDs" collectionFormat(multi)
// @Success 200 {object} resdto.AccessStateBatchResponse
// @Failure 400 {object} map[string]string
// @Router /ideas/{id}/access-states [get]
func (h *AccessHandler) GetStateBatch(c *gin.Context) {
	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idea ID format", nil)
		return
	}

	rawIDs := c.QueryArray("requester_ids")
	requesterIDs := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid requester ID format", nil)
			return
		}
		requesterIDs = append(requesterIDs, id)
	}

	states, err := h.q.ResolveBatch(c.Request.Context(), ideaID, requesterIDs)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccessStateBatch(ideaID, states))
}

// @Summary Begin card checkout
// @Description Create a hosted checkout session for the request (requester only)
// @Tags access-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Access request ID"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /access-requests/{id}/checkout [post]
func (h *AccessHandler) BeginCheckout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	session, err := h.cmds.BeginCheckout(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Access request not found", nil)
		case errors.Is(err, errs.ErrNotRequester):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the requester may start checkout", nil)
		case errors.Is(err, errs.ErrAlreadyDecided):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request was denied", nil)
		case errors.Is(err, errs.ErrDuplicateActiveRequest):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment already verified for this request", nil)
		case errors.Is(err, errs.ErrCheckoutUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment processor unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutSession(session))
}
