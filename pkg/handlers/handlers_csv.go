package handlers

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcvaillant/checklist-api-go/pkg/models"
	"github.com/marcvaillant/checklist-api-go/pkg/schedule"
)

// TasksCSV resolves windows and end dates for a CSV of tasks. Expects a
// tasks_file upload, an optional groups_file upload for hno tasks, and an
// optional config form field carrying the schedule config as JSON.
func (h *Handler) TasksCSV(c *gin.Context) {
	tasksFile, _ := c.FormFile("tasks_file")
	groupsFile, _ := c.FormFile("groups_file")

	if tasksFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tasks_file is required"})
		return
	}

	var cfg *models.ScheduleConfig
	if raw := c.PostForm("config"); raw != "" {
		cfg = &models.ScheduleConfig{}
		if err := json.Unmarshal([]byte(raw), cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "config field is not valid JSON"})
			return
		}
	}

	// Parse shift groups
	groups := make(map[int]*models.ShiftGroup)
	if groupsFile != nil {
		gFile, err := groupsFile.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open groups file"})
			return
		}
		defer gFile.Close()
		gReader := csv.NewReader(gFile)
		gHeader, err := gReader.Read()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read groups header"})
			return
		}
		gCols := make(map[string]int)
		for i, name := range gHeader {
			gCols[name] = i
		}

		for {
			record, err := gReader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				continue
			}
			id, _ := strconv.Atoi(record[gCols["id"]])
			var days []string
			if raw := record[gCols["days"]]; raw != "" {
				days = strings.Split(raw, "|")
			}
			groups[id] = &models.ShiftGroup{
				ID:        id,
				Name:      record[gCols["name"]],
				Days:      days,
				StartTime: record[gCols["start_time"]],
				EndTime:   record[gCols["end_time"]],
			}
		}
	}

	// Parse tasks
	tFile, err := tasksFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open tasks file"})
		return
	}
	defer tFile.Close()
	tReader := csv.NewReader(tFile)
	tHeader, err := tReader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read tasks header"})
		return
	}
	tCols := make(map[string]int)
	for i, name := range tHeader {
		tCols[name] = i
	}

	var tasks []models.Task
	for {
		record, err := tReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		id, _ := strconv.Atoi(record[tCols["id"]])
		task := models.Task{
			ID:          id,
			Description: record[tCols["description"]],
			Periodicity: record[tCols["periodicity"]],
			StartDate:   record[tCols["start_date"]],
		}
		if col, ok := tCols["active_until"]; ok {
			task.ActiveUntil = record[col]
		}
		if col, ok := tCols["hno_group_id"]; ok && record[col] != "" {
			gid, err := strconv.Atoi(record[col])
			if err == nil {
				task.HNOGroupID = &gid
			}
		}
		tasks = append(tasks, task)
	}

	h.RecordUsage(c, len(tasks), 0)

	// Export CSV
	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{"task_id", "description", "periodicity", "window_start", "window_end", "end_date"})

	for _, t := range tasks {
		var hnoGroup *models.ShiftGroup
		if t.HNOGroupID != nil {
			hnoGroup = groups[*t.HNOGroupID]
		}
		w := schedule.ResolveWindow(cfg, t.Periodicity, hnoGroup)

		endDate := t.StartDate
		if t.Periodicity == models.PeriodHNO {
			endDate = schedule.TaskEndDate(&t, hnoGroup)
		} else if t.ActiveUntil != "" {
			endDate = t.ActiveUntil
		}

		writer.Write([]string{
			strconv.Itoa(t.ID),
			t.Description,
			t.Periodicity,
			w.Start,
			w.End,
			endDate,
		})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": outCSV.String()})
}
