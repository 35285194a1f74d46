package board_test

import (
	"fmt"
	"testing"
	"time"

	"multikanban/internal/board"
	"multikanban/internal/model"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

const (
	disco    = "DISCO"
	shortage = "SUPPLIER SHORTAGE"
	hunting  = "HUNTING"
)

func testActor() board.Actor {
	n := 0
	return board.Actor{
		User:  "Current User",
		Clock: func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

// seed creates one pending task per title on boardName.
func seed(t *testing.T, a board.Actor, r *board.Registry, boardName string, titles ...string) *board.Registry {
	t.Helper()
	for _, title := range titles {
		var task *model.Task
		r, task = a.UpsertTask(r, boardName, model.Task{Title: title}, false)
		require.NotNil(t, task, "seed %q", title)
	}
	return r
}

func column(t *testing.T, r *board.Registry, boardName, columnID string) *model.Column {
	t.Helper()
	c, ok := r.Column(boardName, columnID)
	require.True(t, ok, "%s/%s", boardName, columnID)
	return c
}

func titles(c *model.Column) []string {
	out := make([]string, 0, len(c.Tasks))
	for _, task := range c.Tasks {
		out = append(out, task.Title)
	}
	return out
}

// requireStateMatchesColumn checks that every task's state is its column title.
func requireStateMatchesColumn(t *testing.T, r *board.Registry) {
	t.Helper()
	for _, b := range r.Boards() {
		for _, c := range b.Columns {
			for _, task := range c.Tasks {
				require.Equal(t, c.Title, task.State, "task %s on %s/%s", task.ID, b.Name, c.ID)
			}
		}
	}
}
