package handler

import (
	"net/http"

	"multikanban/internal/board"
	"multikanban/internal/model"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	svc BoardService
}

func NewBoardHandler(svc BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

type BoardResponse struct {
	Name        string          `json:"name"`
	Summary     board.Summary   `json:"summary"`
	SummaryText string          `json:"summary_text"`
	Columns     []*model.Column `json:"columns"`
}

type SummaryResponse struct {
	Name        string        `json:"name"`
	Summary     board.Summary `json:"summary"`
	SummaryText string        `json:"summary_text"`
}

func newBoardResponse(b *model.Board) BoardResponse {
	s := board.Summarize(b)
	return BoardResponse{Name: b.Name, Summary: s, SummaryText: s.String(), Columns: b.Columns}
}

// Layout returns the board order, stage template and roster.
func (h *BoardHandler) Layout(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Layout())
}

// GetAll returns every board filtered by the query string.
func (h *BoardHandler) GetAll(c *gin.Context) {
	var filters board.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters"})
		return
	}

	boards := h.svc.View(filters)
	response := make([]BoardResponse, len(boards))
	for i, b := range boards {
		response[i] = newBoardResponse(b)
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) GetByName(c *gin.Context) {
	b, ok := h.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newBoardResponse(b))
}

// Summary returns the per-column counts shown on a collapsed board.
func (h *BoardHandler) Summary(c *gin.Context) {
	b, ok := h.view(c)
	if !ok {
		return
	}
	s := board.Summarize(b)
	c.JSON(http.StatusOK, SummaryResponse{Name: b.Name, Summary: s, SummaryText: s.String()})
}

func (h *BoardHandler) view(c *gin.Context) (*model.Board, bool) {
	var filters board.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters"})
		return nil, false
	}

	b, ok := h.svc.ViewBoard(c.Param("board"), filters)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return nil, false
	}
	return b, true
}
