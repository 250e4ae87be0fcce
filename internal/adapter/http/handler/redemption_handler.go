package handler

import (
	"net/http"

	"dashqard-redemption/internal/adapter/http/dto"
	"dashqard-redemption/internal/adapter/http/middleware"
	"dashqard-redemption/internal/core/domain"
	"dashqard-redemption/internal/core/ports"
	"dashqard-redemption/pkg/apperror"
	"dashqard-redemption/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RedemptionHandler exposes redemption sessions. Each endpoint maps to one
// user action in the redemption flow.
type RedemptionHandler struct {
	svc ports.RedemptionService
}

// NewRedemptionHandler creates a new RedemptionHandler.
func NewRedemptionHandler(svc ports.RedemptionService) *RedemptionHandler {
	return &RedemptionHandler{svc: svc}
}

// Start handles POST /api/v1/redemptions/sessions.
func (h *RedemptionHandler) Start(c *gin.Context) {
	sess, err := h.svc.Start(c.Request.Context(), c.GetString(middleware.CtxUserPhone))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewSessionResponse(sess))
}

// Get handles GET /api/v1/redemptions/sessions/:id.
func (h *RedemptionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSessionResponse(sess))
}

// Discard handles DELETE /api/v1/redemptions/sessions/:id.
func (h *RedemptionHandler) Discard(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.svc.Discard(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Events handles GET /api/v1/redemptions/sessions/:id/events.
func (h *RedemptionHandler) Events(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	events, err := h.svc.Events(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if events == nil {
		events = []domain.RedemptionEvent{}
	}
	response.OK(c, dto.EventListResponse{Events: events, Total: len(events)})
}

// SelectMethod handles POST /:id/method.
func (h *RedemptionHandler) SelectMethod(c *gin.Context) {
	var req dto.SelectMethodRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.SelectMethod{Method: domain.RedemptionMethod(req.Method)}, false)
}

// BackToMethod handles POST /:id/back.
func (h *RedemptionHandler) BackToMethod(c *gin.Context) {
	h.apply(c, domain.BackToMethod{}, false)
}

// EnterVendorPhone handles PUT /:id/vendor-phone. Validation of the wallet
// runs after the debounce window, so the response is 202.
func (h *RedemptionHandler) EnterVendorPhone(c *gin.Context) {
	var req dto.PhoneRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.EnterVendorPhone{Phone: req.Phone}, true)
}

// EnterVendorSearch handles PUT /:id/vendor-search.
func (h *RedemptionHandler) EnterVendorSearch(c *gin.Context) {
	var req dto.VendorSearchRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.EnterVendorSearch{Query: req.Query}, true)
}

// SelectVendor handles POST /:id/vendor.
func (h *RedemptionHandler) SelectVendor(c *gin.Context) {
	var req dto.SelectVendorRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.SelectVendor{VendorID: req.VendorID}, false)
}

// SelectBranch handles POST /:id/branch.
func (h *RedemptionHandler) SelectBranch(c *gin.Context) {
	var req dto.SelectBranchRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.SelectBranch{BranchID: req.BranchID}, false)
}

// SelectCardType handles POST /:id/card-type.
func (h *RedemptionHandler) SelectCardType(c *gin.Context) {
	var req dto.SelectCardTypeRequest
	if !bind(c, &req) {
		return
	}
	ct, _ := domain.ParseCardType(req.CardType)
	h.apply(c, domain.SelectCardType{CardType: ct}, false)
}

// SelectCard handles POST /:id/card.
func (h *RedemptionHandler) SelectCard(c *gin.Context) {
	var req dto.SelectCardRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.SelectCard{CardID: req.CardID}, false)
}

// EnterAmount handles PUT /:id/amount.
func (h *RedemptionHandler) EnterAmount(c *gin.Context) {
	var req dto.AmountRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.EnterAmount{Amount: req.Amount}, false)
}

// EnterGuestPhone handles PUT /:id/guest-phone.
func (h *RedemptionHandler) EnterGuestPhone(c *gin.Context) {
	var req dto.PhoneRequest
	if !bind(c, &req) {
		return
	}
	h.apply(c, domain.EnterGuestPhone{Phone: req.Phone}, false)
}

// RefreshBalance handles POST /:id/balance/refresh.
func (h *RedemptionHandler) RefreshBalance(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.svc.RefreshBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSessionResponse(sess))
}

// Submit handles POST /:id/submit.
func (h *RedemptionHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.svc.Submit(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSessionResponse(sess))
}

// StartRating handles POST /:id/rating/start.
func (h *RedemptionHandler) StartRating(c *gin.Context) {
	h.apply(c, domain.StartRating{}, false)
}

// SubmitRating handles POST /:id/rating.
func (h *RedemptionHandler) SubmitRating(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.RatingRequest
	if !bind(c, &req) {
		return
	}
	sess, err := h.svc.SubmitRating(c.Request.Context(), id, req.Rating, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSessionResponse(sess))
}

// SkipRating handles POST /:id/rating/skip.
func (h *RedemptionHandler) SkipRating(c *gin.Context) {
	h.apply(c, domain.SkipRating{}, false)
}

// Reset handles POST /:id/reset.
func (h *RedemptionHandler) Reset(c *gin.Context) {
	h.apply(c, domain.Reset{}, false)
}

func (h *RedemptionHandler) apply(c *gin.Context, action domain.Action, async bool) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.svc.Apply(c.Request.Context(), id, action)
	if err != nil {
		response.Error(c, err)
		return
	}
	if async {
		response.Accepted(c, dto.NewSessionResponse(sess))
		return
	}
	response.OK(c, dto.NewSessionResponse(sess))
}

// sessionID parses the :id path parameter. A malformed ID cannot name a
// session, so it is reported as not found.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrSessionNotFound())
		return uuid.Nil, false
	}
	return id, true
}

func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}
