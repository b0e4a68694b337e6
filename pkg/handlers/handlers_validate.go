package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcvaillant/checklist-api-go/pkg/access"
	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

// ValidateInput handles structural validation of caller-supplied records.
// Errors are fatal problems a caller should fix before resolving anything;
// warnings cover tolerated inconsistencies such as stale legacy assignment
// fields, which resolution handles by precedence.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ValidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	var errs []string
	var warnings []string

	groupIDs := make(map[int]bool)
	for _, g := range input.Groups {
		if groupIDs[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate shift group id: %d", g.ID))
		}
		groupIDs[g.ID] = true
		if len(g.Days) == 0 {
			errs = append(errs, fmt.Sprintf("shift group %d has no days selected", g.ID))
		}
	}

	taskIDs := make(map[int]bool)
	for _, t := range input.Tasks {
		if taskIDs[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate task id: %d", t.ID))
		}
		taskIDs[t.ID] = true

		if t.Periodicity == models.PeriodHNO {
			if t.HNOGroupID == nil {
				errs = append(errs, fmt.Sprintf("task %d is hno but has no hno_group_id", t.ID))
			} else if len(input.Groups) > 0 && !groupIDs[*t.HNOGroupID] {
				warnings = append(warnings, fmt.Sprintf("task %d references unknown shift group %d", t.ID, *t.HNOGroupID))
			}
		}

		descriptors := 0
		if len(t.AssignedGroups) > 0 {
			descriptors++
		}
		if t.AssignedGroup != "" {
			descriptors++
		}
		if len(t.AssignedUserIDs) > 0 {
			descriptors++
		}
		if descriptors > 1 {
			warnings = append(warnings, fmt.Sprintf("task %d has %d assignment descriptors populated; precedence applies", t.ID, descriptors))
		}
	}

	for _, d := range input.Delegations {
		if !taskIDs[d.TaskID] && len(input.Tasks) > 0 {
			warnings = append(warnings, fmt.Sprintf("delegation %d references unknown task %d", d.ID, d.TaskID))
		}
		if err := access.ValidateDelegation(d); err != nil {
			errs = append(errs, fmt.Sprintf("delegation %d: %v", d.ID, err))
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid":    false,
			"errors":   errs,
			"warnings": warnings,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"warnings": warnings,
		"stats": gin.H{
			"task_count":       len(input.Tasks),
			"group_count":      len(input.Groups),
			"delegation_count": len(input.Delegations),
		},
	})
}
