package board

import (
	"fmt"
	"slices"
)

// Location addresses a slot in a column of a board.
type Location struct {
	Board  string `json:"board"`
	Column string `json:"column"`
	Index  int    `json:"index"`
}

type Move struct {
	From Location `json:"from"`
	To   Location `json:"to"`
}

// Allowed reports whether a task may travel between the two columns.
// Within a board any column is reachable. Across boards the target must be
// the intake column of a board directly before or after the source board.
func (r *Registry) Allowed(from, to Location) bool {
	if _, ok := r.Column(from.Board, from.Column); !ok {
		return false
	}
	if _, ok := r.Column(to.Board, to.Column); !ok {
		return false
	}
	if from.Board == to.Board {
		return true
	}
	d := r.layout.BoardIndex(to.Board) - r.layout.BoardIndex(from.Board)
	return (d == 1 || d == -1) && to.Column == r.layout.Intake
}

// Move relocates the task at m.From to m.To. The task takes the title of its
// new column as state and gains the activity
// "Moved from <from board> - <old state> to <to board> - <new state>".
// Illegal moves and source indexes that hold no task leave the registry
// untouched. A target index past the end of the column appends.
func (a Actor) Move(r *Registry, m Move) (*Registry, bool) {
	if !r.Allowed(m.From, m.To) {
		return r, false
	}
	src, _ := r.Column(m.From.Board, m.From.Column)
	if m.From.Index < 0 || m.From.Index >= len(src.Tasks) || m.To.Index < 0 {
		return r, false
	}

	next := r.edit()
	from := next.detach(m.From.Board, m.From.Column)
	to := from
	if m.To.Board != m.From.Board || m.To.Column != m.From.Column {
		to = next.detach(m.To.Board, m.To.Column)
	}

	task := from.Tasks[m.From.Index].Clone()
	from.Tasks = slices.Delete(from.Tasks, m.From.Index, m.From.Index+1)

	oldState := task.State
	task.State = to.Title
	task.Activities = append(task.Activities, a.activity(
		fmt.Sprintf("Moved from %s - %s to %s - %s", m.From.Board, oldState, m.To.Board, task.State),
	))

	to.Tasks = slices.Insert(to.Tasks, min(m.To.Index, len(to.Tasks)), task)
	return next, true
}
