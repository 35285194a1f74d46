package handler_test

import (
	"net/http"
	"testing"

	"multikanban/internal/handler"
	"multikanban/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftComment_ThenCommit(t *testing.T) {
	// Arrange
	router, _ := setupTest(t)
	created := createTask(t, router, "DISCO", handler.TaskRequest{Title: "Widget A"})

	// Act
	resp := doJSON(router, http.MethodPost, "/drafts/comments", handler.DraftEntryRequest{Task: created, Text: "needs pricing"})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	draft := decode[model.Task](t, resp)
	require.Len(t, draft.Comments, 1)
	assert.Equal(t, "needs pricing", draft.Comments[0].Text)
	assert.Equal(t, "Current User", draft.Comments[0].User)

	// до сохранения доска не меняется
	b := decode[handler.BoardResponse](t, doJSON(router, http.MethodGet, "/boards/DISCO", nil))
	assert.Empty(t, b.Columns[0].Tasks[0].Comments)

	resp = doJSON(router, http.MethodPost, "/drafts/notes", handler.DraftEntryRequest{Task: draft, Text: "call back Monday"})
	require.Equal(t, http.StatusOK, resp.Code)
	draft = decode[model.Task](t, resp)

	resp = doJSON(router, http.MethodPut, "/boards/DISCO/tasks/"+draft.ID, handler.TaskRequest{
		Title:    draft.Title,
		Comments: draft.Comments,
		Notes:    draft.Notes,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	b = decode[handler.BoardResponse](t, doJSON(router, http.MethodGet, "/boards/DISCO", nil))
	stored := b.Columns[0].Tasks[0]
	assert.Len(t, stored.Comments, 1)
	assert.Len(t, stored.Notes, 1)
	assert.Equal(t, "call back Monday", stored.Notes[0].Text)
}

func TestDraftNote_BlankText(t *testing.T) {
	router, _ := setupTest(t)
	draft := model.Task{ID: "t1", Title: "A"}

	resp := doJSON(router, http.MethodPost, "/drafts/notes", handler.DraftEntryRequest{Task: draft, Text: "  "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decode[handler.DraftErrorResponse](t, resp)
	assert.Equal(t, "Text is required", body.Error)
	assert.Equal(t, "t1", body.Task.ID)
	assert.Empty(t, body.Task.Notes)
}
