package handler

import (
	"net/http"

	"multikanban/internal/middleware"
	"multikanban/internal/model"

	"github.com/gin-gonic/gin"
)

// DraftHandler appends comments and notes to a task working copy. Nothing
// is stored until the copy is submitted through TaskHandler.Update.
type DraftHandler struct {
	svc BoardService
}

func NewDraftHandler(svc BoardService) *DraftHandler {
	return &DraftHandler{svc: svc}
}

type DraftEntryRequest struct {
	Task model.Task `json:"task"`
	Text string     `json:"text"`
}

type DraftErrorResponse struct {
	Error string     `json:"error"`
	Task  model.Task `json:"task"`
}

func (h *DraftHandler) AddComment(c *gin.Context) {
	h.add(c, h.svc.AddComment)
}

func (h *DraftHandler) AddNote(c *gin.Context) {
	h.add(c, h.svc.AddNote)
}

func (h *DraftHandler) add(c *gin.Context, add func(user string, draft model.Task, text string) (model.Task, bool)) {
	var req DraftEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, ok := add(middleware.Actor(c), req.Task, req.Text)
	if !ok {
		// черновик возвращается без изменений
		c.JSON(http.StatusBadRequest, DraftErrorResponse{Error: "Text is required", Task: req.Task})
		return
	}

	c.JSON(http.StatusOK, task)
}
