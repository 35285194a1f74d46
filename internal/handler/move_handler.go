package handler

import (
	"net/http"
	"strings"

	"multikanban/internal/board"
	"multikanban/internal/middleware"

	"github.com/gin-gonic/gin"
)

type MoveHandler struct {
	svc BoardService
}

func NewMoveHandler(svc BoardService) *MoveHandler {
	return &MoveHandler{svc: svc}
}

// DragLocation is one end of a drag as reported by the board UI.
// DroppableID encodes "<board>|<column>".
type DragLocation struct {
	DroppableID string `json:"droppableId" binding:"required"`
	Index       int    `json:"index" binding:"min=0"`
}

// DragResult is posted when a drag ends. Destination is null when the task
// was dropped outside any column.
type DragResult struct {
	Source      DragLocation  `json:"source"`
	Destination *DragLocation `json:"destination"`
}

type MoveResponse struct {
	Moved bool `json:"moved"`
}

// splitContainerKey decodes a droppable id into board and column.
func splitContainerKey(key string) (boardName, columnID string, ok bool) {
	boardName, columnID, ok = strings.Cut(key, "|")
	return boardName, columnID, ok && boardName != "" && columnID != ""
}

func (l DragLocation) location() (board.Location, bool) {
	boardName, columnID, ok := splitContainerKey(l.DroppableID)
	if !ok {
		return board.Location{}, false
	}
	return board.Location{Board: boardName, Column: columnID, Index: l.Index}, true
}

// Drop applies a completed drag. Illegal or aborted drops are reported as
// not moved rather than as errors.
func (h *MoveHandler) Drop(c *gin.Context) {
	var req DragResult
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Destination == nil {
		c.JSON(http.StatusOK, MoveResponse{Moved: false})
		return
	}

	from, okFrom := req.Source.location()
	to, okTo := req.Destination.location()
	if !okFrom || !okTo {
		c.JSON(http.StatusOK, MoveResponse{Moved: false})
		return
	}

	moved := h.svc.Move(c.Request.Context(), middleware.Actor(c), board.Move{From: from, To: to})
	c.JSON(http.StatusOK, MoveResponse{Moved: moved})
}
