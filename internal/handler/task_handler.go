package handler

import (
	"net/http"
	"strings"

	"multikanban/internal/middleware"
	"multikanban/internal/model"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc BoardService
}

func NewTaskHandler(svc BoardService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// TaskRequest is the form working copy. State and activities are derived
// server-side and cannot be set by the client.
type TaskRequest struct {
	Title          string         `json:"title"`
	Molecule       string         `json:"molecule"`
	Analyst        string         `json:"analyst"`
	AccountManager string         `json:"accountManager"`
	Description    string         `json:"description"`
	LaunchDate     string         `json:"launchDate"`
	Comments       []model.Entry  `json:"comments"`
	Notes          []model.Entry  `json:"notes"`

	// Attributes collects every other top-level key of the body. Fixed task
	// fields the form does not edit, such as state or activities, are dropped.
	Attributes map[string]any `json:"-"`
}

type taskRequestFields TaskRequest

func (r TaskRequest) MarshalJSON() ([]byte, error) {
	return model.MarshalFlat(taskRequestFields(r), r.Attributes)
}

func (r *TaskRequest) UnmarshalJSON(data []byte) error {
	var fixed taskRequestFields
	attrs, err := model.UnmarshalFlat(data, &fixed)
	if err != nil {
		return err
	}
	for k := range attrs {
		if model.IsTaskField(k) {
			delete(attrs, k)
		}
	}
	if len(attrs) == 0 {
		attrs = nil
	}
	*r = TaskRequest(fixed)
	r.Attributes = attrs
	return nil
}

func (r TaskRequest) draft(id string) model.Task {
	return model.Task{
		ID:             id,
		Title:          r.Title,
		Molecule:       r.Molecule,
		Analyst:        r.Analyst,
		AccountManager: r.AccountManager,
		Description:    r.Description,
		LaunchDate:     r.LaunchDate,
		Attributes:     r.Attributes,
		Comments:       r.Comments,
		Notes:          r.Notes,
	}
}

// Create files a new task into the intake column of the board.
func (h *TaskHandler) Create(c *gin.Context) {
	boardName := c.Param("board")
	if !boardExists(h.svc, boardName) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	draft := req.draft("")
	if !hasTitle(draft) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	task, ok := h.svc.CreateTask(c.Request.Context(), middleware.Actor(c), boardName, draft)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Update replaces a task of the intake column with the submitted working copy.
func (h *TaskHandler) Update(c *gin.Context) {
	boardName := c.Param("board")
	if !boardExists(h.svc, boardName) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	draft := req.draft(c.Param("id"))
	if !hasTitle(draft) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	task, ok := h.svc.UpdateTask(c.Request.Context(), middleware.Actor(c), boardName, draft)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes a task from a column. Unknown task ids are ignored.
func (h *TaskHandler) Delete(c *gin.Context) {
	boardName := c.Param("board")
	if !boardExists(h.svc, boardName) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	h.svc.DeleteTask(c.Request.Context(), boardName, c.Param("column"), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func hasTitle(t model.Task) bool {
	return strings.TrimSpace(t.Title) != ""
}
