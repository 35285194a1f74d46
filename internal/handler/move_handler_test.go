package handler_test

import (
	"net/http"
	"testing"

	"multikanban/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drop(from string, fromIndex int, to string, toIndex int) handler.DragResult {
	return handler.DragResult{
		Source:      handler.DragLocation{DroppableID: from, Index: fromIndex},
		Destination: &handler.DragLocation{DroppableID: to, Index: toIndex},
	}
}

func TestDrop_CrossBoardGraduation(t *testing.T) {
	// Arrange
	router, _ := setupTest(t)
	createTask(t, router, "DISCO", handler.TaskRequest{Title: "Widget A"})
	resp := doJSON(router, http.MethodPost, "/moves", drop("DISCO|pending", 0, "DISCO|closed", 0))
	require.True(t, decode[handler.MoveResponse](t, resp).Moved)

	// Act
	resp = doJSON(router, http.MethodPost, "/moves", drop("DISCO|closed", 0, "SUPPLIER SHORTAGE|pending", 0))

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, decode[handler.MoveResponse](t, resp).Moved)

	b := decode[handler.BoardResponse](t, doJSON(router, http.MethodGet, "/boards/SUPPLIER%20SHORTAGE", nil))
	require.Len(t, b.Columns[0].Tasks, 1)
	task := b.Columns[0].Tasks[0]
	assert.Equal(t, "Pending", task.State)
	require.Len(t, task.Activities, 3)
	assert.Equal(t, "Moved from DISCO - Closed to SUPPLIER SHORTAGE - Pending", task.Activities[2].Action)
}

func TestDrop_Rejected(t *testing.T) {
	router, _ := setupTest(t)
	createTask(t, router, "DISCO", handler.TaskRequest{Title: "Widget A"})

	tests := []struct {
		name string
		body handler.DragResult
	}{
		{"skip a board", drop("DISCO|pending", 0, "HUNTING|pending", 0)},
		{"adjacent but not intake", drop("DISCO|pending", 0, "SUPPLIER SHORTAGE|on_hold", 0)},
		{"malformed key", drop("DISCO", 0, "DISCO|closed", 0)},
		{"empty column", drop("DISCO|", 0, "DISCO|closed", 0)},
		{"no task at index", drop("DISCO|pending", 3, "DISCO|closed", 0)},
		{"dropped outside", handler.DragResult{Source: handler.DragLocation{DroppableID: "DISCO|pending"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(router, http.MethodPost, "/moves", tt.body)

			assert.Equal(t, http.StatusOK, resp.Code)
			assert.False(t, decode[handler.MoveResponse](t, resp).Moved)
		})
	}

	b := decode[handler.BoardResponse](t, doJSON(router, http.MethodGet, "/boards/DISCO", nil))
	require.Len(t, b.Columns[0].Tasks, 1)
	assert.Len(t, b.Columns[0].Tasks[0].Activities, 1)
}

func TestDrop_InvalidBody(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(router, http.MethodPost, "/moves", map[string]any{
		"source": map[string]any{"droppableId": "DISCO|pending", "index": -1},
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, http.MethodPost, "/moves", map[string]any{"source": map[string]any{"index": 0}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
