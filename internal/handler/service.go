package handler

import (
	"context"

	"multikanban/internal/board"
	"multikanban/internal/model"
)

// BoardService is the part of board.Service the handlers drive.
type BoardService interface {
	Layout() model.Layout
	View(f board.Filters) []*model.Board
	ViewBoard(name string, f board.Filters) (*model.Board, bool)
	CreateTask(ctx context.Context, user, boardName string, draft model.Task) (*model.Task, bool)
	UpdateTask(ctx context.Context, user, boardName string, draft model.Task) (*model.Task, bool)
	DeleteTask(ctx context.Context, boardName, columnID, taskID string) bool
	Move(ctx context.Context, user string, m board.Move) bool
	AddComment(user string, draft model.Task, text string) (model.Task, bool)
	AddNote(user string, draft model.Task, text string) (model.Task, bool)
}

var _ BoardService = (*board.Service)(nil)

func boardExists(svc BoardService, name string) bool {
	return svc.Layout().BoardIndex(name) >= 0
}
