package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/celengan/internal/server/http/dto"
)

// BalanceHandler exposes the money position endpoint.
type BalanceHandler struct {
	facade BalanceFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade BalanceFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Get handles GET /api/balance.
func (h *BalanceHandler) Get(c *gin.Context) {
	summary, err := h.facade.Balance(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AvailableBalance: summary.AvailableBalance.InexactFloat64(),
		TotalSaved:       summary.TotalSaved.InexactFloat64(),
		TotalTarget:      summary.TotalTarget.InexactFloat64(),
	})
}
