package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/server/http/dto"
)

// WithdrawalHandler manages withdrawal request endpoints.
type WithdrawalHandler struct {
	facade WithdrawalFacade
}

// NewWithdrawalHandler constructs WithdrawalHandler.
func NewWithdrawalHandler(facade WithdrawalFacade) *WithdrawalHandler {
	return &WithdrawalHandler{facade: facade}
}

// Request handles POST /api/withdrawals.
func (h *WithdrawalHandler) Request(c *gin.Context) {
	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	withdrawal, err := h.facade.RequestWithdrawal(
		c.Request.Context(),
		CurrentUserID(c),
		req.GoalID,
		decimal.NewFromFloat(req.Amount),
		model.Method(req.Method),
		req.AccountNumber,
		req.Notes,
	)
	if err != nil {
		writeWithdrawalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toWithdrawalResponse(withdrawal))
}

// List handles GET /api/withdrawals with an optional status query.
func (h *WithdrawalHandler) List(c *gin.Context) {
	status := model.WithdrawalStatus(c.Query("status"))

	withdrawals, summary, err := h.facade.Withdrawals(c.Request.Context(), CurrentUserID(c), status)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.WithdrawalListResponse{
		Withdrawals: make([]dto.WithdrawalResponse, 0, len(withdrawals)),
		Summary: dto.WithdrawalSummaryResponse{
			Total:    summary.Total,
			Pending:  summary.Pending,
			Approved: summary.Approved,
			Rejected: summary.Rejected,
		},
	}
	for i := range withdrawals {
		response.Withdrawals = append(response.Withdrawals, toWithdrawalResponse(&withdrawals[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Approve handles POST /api/withdrawals/:id/approve.
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	h.decide(c, h.facade.ApproveWithdrawal)
}

// Reject handles POST /api/withdrawals/:id/reject.
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	h.decide(c, h.facade.RejectWithdrawal)
}

func (h *WithdrawalHandler) decide(c *gin.Context, decision func(ctx context.Context, id int64, notes string) (*model.Withdrawal, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.WithdrawalDecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	withdrawal, err := decision(c.Request.Context(), id, req.Notes)
	if err != nil {
		writeWithdrawalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWithdrawalResponse(withdrawal))
}

func writeWithdrawalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrInvalidMethod):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrMethodNotAllowed), errors.Is(err, domainErrors.ErrAlreadyProcessed):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInsufficientBalance), errors.Is(err, domainErrors.ErrInsufficientGoalFunds):
		c.Status(http.StatusPaymentRequired)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toWithdrawalResponse(w *model.Withdrawal) dto.WithdrawalResponse {
	return dto.WithdrawalResponse{
		ID:            w.ID,
		GoalID:        w.GoalID,
		Source:        string(w.Source),
		Amount:        w.Amount.InexactFloat64(),
		Method:        string(w.Method),
		AccountNumber: w.AccountNumber,
		Status:        string(w.Status),
		Notes:         w.Notes,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
