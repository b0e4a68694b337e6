package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcvaillant/checklist-api-go/pkg/access"
	"github.com/marcvaillant/checklist-api-go/pkg/models"
	"github.com/marcvaillant/checklist-api-go/pkg/schedule"
	"github.com/marcvaillant/checklist-api-go/pkg/tasklist"
)

// ResolveWindow handles the display-window resolution request
func (h *Handler) ResolveWindow(c *gin.Context) {
	var input models.ResolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Periodicity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "periodicity is required"})
		return
	}

	w := schedule.ResolveWindow(input.Config, input.Periodicity, input.HNOGroup)

	h.RecordUsage(c, 1, 0)
	c.JSON(http.StatusOK, w)
}

// ShiftSpan handles the shift-span preview request for a shift group
func (h *Handler) ShiftSpan(c *gin.Context) {
	var input models.ShiftSpanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := models.ShiftSpanResponse{EndDate: input.StartDate}
	if input.Group != nil {
		startLabel, endLabel := schedule.BoundaryLabels(input.Group)
		resp.StartLabel = startLabel
		resp.EndLabel = endLabel
		resp.CrossesMidnight = schedule.CrossesMidnight(input.Group.StartTime, input.Group.EndTime)
	} else {
		resp.StartLabel = models.NoWindow
		resp.EndLabel = models.NoWindow
	}

	if start, err := schedule.ParseDay(input.StartDate); err == nil {
		resp.EndDate = schedule.ShiftEndDate(start, input.Group).Format(schedule.DayFormat)
	}
	if input.Task != nil {
		resp.TaskEndDate = schedule.TaskEndDate(input.Task, input.Group)
	}

	h.RecordUsage(c, 1, 0)
	c.JSON(http.StatusOK, resp)
}

// CanAct answers whether an actor may act on a task occurrence at a date
func (h *Handler) CanAct(c *gin.Context) {
	var input models.CanActInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Task == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task is required"})
		return
	}

	// A missing actor is denied, not rejected: fail closed is the contract.
	allowed, via := access.CanActOn(input.Actor, input.Task, input.Delegations, input.Date)

	h.RecordUsage(c, 1, 1)
	c.JSON(http.StatusOK, models.CanActResponse{Allowed: allowed, Via: via})
}

// FilterTasks applies the task list filter and sort reducer
func (h *Handler) FilterTasks(c *gin.Context) {
	var input models.FilterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f := tasklist.Filter{
		Search:      input.Search,
		Periodicity: input.Periodicity,
		Group:       input.Group,
		User:        input.User,
		SortBy:      input.SortBy,
	}
	out := tasklist.Apply(input.Tasks, input.Users, f)

	h.RecordUsage(c, len(input.Tasks), len(input.Users))
	c.JSON(http.StatusOK, gin.H{
		"tasks": out,
		"count": len(out),
	})
}
