package board

import (
	"strings"
	"time"

	"multikanban/internal/model"

	"github.com/google/uuid"
)

const (
	ActionCreated = "Task created"
	ActionUpdated = "Task updated"
)

// Actor stamps log entries with a user, a clock and fresh ids.
type Actor struct {
	User  string
	Clock func() time.Time
	NewID func() string
}

func (a Actor) now() time.Time {
	if a.Clock == nil {
		return time.Now().UTC()
	}
	return a.Clock()
}

func (a Actor) newID() string {
	if a.NewID == nil {
		return uuid.NewString()
	}
	return a.NewID()
}

func (a Actor) activity(action string) model.Activity {
	return model.Activity{Timestamp: a.now(), Action: action, User: a.User}
}

// UpsertTask files draft into the intake column of boardName. A new task is
// appended with a fresh id; an edit replaces the task with the same id in
// place. Blank titles, unknown boards and edits of tasks outside the intake
// column are no-ops and return a nil task.
//
// The stored state and the existing logs always win over the draft: state
// only changes through Move, and comments and notes can only be appended.
func (a Actor) UpsertTask(r *Registry, boardName string, draft model.Task, isEdit bool) (*Registry, *model.Task) {
	if strings.TrimSpace(draft.Title) == "" {
		return r, nil
	}
	intake, ok := r.Column(boardName, r.layout.Intake)
	if !ok {
		return r, nil
	}

	if isEdit {
		i := intake.IndexOf(draft.ID)
		if i < 0 {
			return r, nil
		}
		prev := intake.Tasks[i]
		updated := draft.Clone()
		updated.ID = prev.ID
		updated.State = prev.State
		updated.Activities = append(prev.Clone().Activities, a.activity(ActionUpdated))
		updated.Comments = appendNew(prev.Comments, draft.Comments)
		updated.Notes = appendNew(prev.Notes, draft.Notes)

		next := r.edit()
		next.detach(boardName, r.layout.Intake).Tasks[i] = updated
		return next, updated
	}

	created := draft.Clone()
	created.ID = a.newID()
	created.State = intake.Title
	created.Activities = []model.Activity{a.activity(ActionCreated)}

	next := r.edit()
	col := next.detach(boardName, r.layout.Intake)
	col.Tasks = append(col.Tasks, created)
	return next, created
}

// appendNew returns existing followed by the entries of draft whose id it
// does not already hold.
func appendNew(existing, draft []model.Entry) []model.Entry {
	out := make([]model.Entry, len(existing), len(existing)+len(draft))
	copy(out, existing)
	known := make(map[string]bool, len(existing))
	for _, e := range existing {
		known[e.ID] = true
	}
	for _, e := range draft {
		if !known[e.ID] {
			known[e.ID] = true
			out = append(out, e)
		}
	}
	return out
}

// DeleteTask removes a task from a column. Unknown boards, columns or ids
// are no-ops.
func DeleteTask(r *Registry, boardName, columnID, taskID string) (*Registry, bool) {
	col, ok := r.Column(boardName, columnID)
	if !ok {
		return r, false
	}
	i := col.IndexOf(taskID)
	if i < 0 {
		return r, false
	}

	next := r.edit()
	c := next.detach(boardName, columnID)
	c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
	return next, true
}

// AddComment appends a comment to a working copy of a task. The registry is
// untouched until the copy is committed with UpsertTask.
func (a Actor) AddComment(draft model.Task, text string) (model.Task, bool) {
	return a.addEntry(draft, text, func(t *model.Task, e model.Entry) { t.Comments = append(t.Comments, e) })
}

// AddNote is AddComment for the notes log.
func (a Actor) AddNote(draft model.Task, text string) (model.Task, bool) {
	return a.addEntry(draft, text, func(t *model.Task, e model.Entry) { t.Notes = append(t.Notes, e) })
}

func (a Actor) addEntry(draft model.Task, text string, add func(*model.Task, model.Entry)) (model.Task, bool) {
	if strings.TrimSpace(text) == "" {
		return draft, false
	}
	t := draft.Clone()
	add(t, model.Entry{ID: a.newID(), Text: text, User: a.User, Timestamp: a.now()})
	return *t, true
}
