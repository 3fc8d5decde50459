package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/server/http/dto"
)

// TransactionHandler manages deposit, ledger and allocation endpoints.
type TransactionHandler struct {
	facade TransactionFacade
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(facade TransactionFacade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

// Deposit handles POST /api/transactions.
func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	txn, result, err := h.facade.Deposit(
		c.Request.Context(),
		CurrentUserID(c),
		req.GoalID,
		decimal.NewFromFloat(req.Amount),
		model.Method(req.Method),
		req.Description,
	)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrInvalidMethod):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrGoalCompleted), errors.Is(err, domainErrors.ErrMethodNotAllowed):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.DepositResponse{
		Transaction:     toTransactionResponse(txn),
		GoalCompleted:   result.Completed,
		DepositedAmount: result.Deposited.InexactFloat64(),
		OverflowAmount:  result.Overflow.InexactFloat64(),
	})
}

// List handles GET /api/transactions with an optional goal_id query.
func (h *TransactionHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)

	var (
		transactions []model.Transaction
		err          error
	)
	if rawGoalID := c.Query("goal_id"); rawGoalID != "" {
		goalID, parseErr := strconv.ParseInt(rawGoalID, 10, 64)
		if parseErr != nil || goalID <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		transactions, err = h.facade.GoalTransactions(c.Request.Context(), goalID, userID)
	} else {
		transactions, err = h.facade.Transactions(c.Request.Context(), userID)
	}
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		response = append(response, toTransactionResponse(&transactions[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/transactions/:id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if _, err := h.facade.DeleteTransaction(c.Request.Context(), id, CurrentUserID(c)); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrTransactionLocked):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Allocate handles POST /api/transactions/allocate.
func (h *TransactionHandler) Allocate(c *gin.Context) {
	var req dto.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entries := make([]model.AllocationEntry, 0, len(req.Allocations))
	for _, entry := range req.Allocations {
		entries = append(entries, model.AllocationEntry{
			GoalID: entry.GoalID,
			Amount: decimal.NewFromFloat(entry.Amount),
		})
	}

	results, balance, err := h.facade.Allocate(
		c.Request.Context(),
		CurrentUserID(c),
		entries,
		decimal.NewFromFloat(req.SaveToBalanceAmount),
	)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrEmptyAllocation), errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAllocationExceedsTarget), errors.Is(err, domainErrors.ErrMethodNotAllowed):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AllocationResponse{
		Results:          make([]dto.AllocationResultResponse, 0, len(results)),
		AvailableBalance: balance.InexactFloat64(),
	}
	for _, result := range results {
		response.Results = append(response.Results, dto.AllocationResultResponse{
			GoalID:    result.GoalID,
			GoalName:  result.GoalName,
			Amount:    result.Amount.InexactFloat64(),
			Completed: result.Completed,
			Skipped:   result.Skipped,
		})
	}

	c.JSON(http.StatusOK, response)
}

func toTransactionResponse(txn *model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              txn.ID,
		GoalID:          txn.GoalID,
		Amount:          txn.Amount.InexactFloat64(),
		Method:          string(txn.Method),
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
	}
}
