package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"multikanban/internal/board"
	"multikanban/internal/handler"
	"multikanban/internal/middleware"
	"multikanban/internal/model"
	"multikanban/internal/repository"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (*gin.Engine, *board.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, _ := logtest.NewNullLogger()
	n := 0
	svc := board.NewService(context.Background(), repository.NewMemoryStore(), model.DefaultLayout(),
		board.WithLogger(log),
		board.WithClock(func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }),
		board.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)

	r := gin.New()
	r.Use(middleware.ActorMiddleware("", "Current User"))

	boardHandler := handler.NewBoardHandler(svc)
	taskHandler := handler.NewTaskHandler(svc)
	moveHandler := handler.NewMoveHandler(svc)
	draftHandler := handler.NewDraftHandler(svc)

	r.GET("/layout", boardHandler.Layout)
	r.GET("/boards", boardHandler.GetAll)
	r.GET("/boards/:board", boardHandler.GetByName)
	r.GET("/boards/:board/summary", boardHandler.Summary)
	r.POST("/boards/:board/tasks", taskHandler.Create)
	r.PUT("/boards/:board/tasks/:id", taskHandler.Update)
	r.DELETE("/boards/:board/columns/:column/tasks/:id", taskHandler.Delete)
	r.POST("/moves", moveHandler.Drop)
	r.POST("/drafts/comments", draftHandler.AddComment)
	r.POST("/drafts/notes", draftHandler.AddNote)

	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v))
	return v
}

func createTask(t *testing.T, r *gin.Engine, boardName string, req handler.TaskRequest) model.Task {
	t.Helper()
	resp := doJSON(r, http.MethodPost, "/boards/"+boardName+"/tasks", req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	return decode[model.Task](t, resp)
}
