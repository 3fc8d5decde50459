package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/server/http/dto"
)

// GoalHandler manages savings goal endpoints.
type GoalHandler struct {
	facade GoalFacade
}

// NewGoalHandler constructs GoalHandler.
func NewGoalHandler(facade GoalFacade) *GoalHandler {
	return &GoalHandler{facade: facade}
}

// Create handles POST /api/goals.
func (h *GoalHandler) Create(c *gin.Context) {
	goal, ok := h.bindGoal(c)
	if !ok {
		return
	}
	goal.UserID = CurrentUserID(c)

	created, err := h.facade.CreateGoal(c.Request.Context(), goal)
	if err != nil {
		writeGoalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGoalResponse(created))
}

// Get handles GET /api/goals/:id.
func (h *GoalHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	goal, err := h.facade.Goal(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		writeGoalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

// List handles GET /api/goals.
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.facade.Goals(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		response = append(response, toGoalResponse(&goals[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/goals/:id.
func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	goal, ok := h.bindGoal(c)
	if !ok {
		return
	}
	goal.ID = id
	goal.UserID = CurrentUserID(c)

	updated, err := h.facade.UpdateGoal(c.Request.Context(), goal)
	if err != nil {
		writeGoalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(updated))
}

// Delete handles DELETE /api/goals/:id.
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteGoal(c.Request.Context(), id, CurrentUserID(c)); err != nil {
		writeGoalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) bindGoal(c *gin.Context) (*model.Goal, bool) {
	var req dto.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return nil, false
	}

	goal := &model.Goal{
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		Description:  req.Description,
		Type:         model.GoalType(req.Type),
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := time.Parse(dto.DeadlineLayout, *req.Deadline)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return nil, false
		}
		goal.Deadline = &deadline
	}
	return goal, true
}

func writeGoalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrInvalidGoal), errors.Is(err, domainErrors.ErrInvalidAmount):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toGoalResponse(goal *model.Goal) dto.GoalResponse {
	resp := dto.GoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.InexactFloat64(),
		CurrentAmount: goal.CurrentAmount.InexactFloat64(),
		Description:   goal.Description,
		Type:          string(goal.Type),
		Progress:      goal.ProgressPercentage().InexactFloat64(),
		Completed:     goal.Completed(),
		CreatedAt:     goal.CreatedAt,
	}
	if goal.Deadline != nil {
		deadline := goal.Deadline.Format(dto.DeadlineLayout)
		resp.Deadline = &deadline
	}
	return resp
}
