package board

import (
	"fmt"
	"strings"

	"multikanban/internal/model"
)

// Filters narrows a projection. Empty fields impose no constraint; the date
// range only applies when both ends are set.
type Filters struct {
	Keyword        string `form:"keyword"`
	Analyst        string `form:"analyst"`
	AccountManager string `form:"account_manager"`
	DateFrom       string `form:"date_from"`
	DateTo         string `form:"date_to"`
}

// Match reports whether t passes every filter. Keywords match title or
// molecule case-insensitively; dates are compared as ISO strings.
func (f Filters) Match(t *model.Task) bool {
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(t.Title), kw) && !strings.Contains(strings.ToLower(t.Molecule), kw) {
			return false
		}
	}
	if f.Analyst != "" && t.Analyst != f.Analyst {
		return false
	}
	if f.AccountManager != "" && t.AccountManager != f.AccountManager {
		return false
	}
	if f.DateFrom != "" && f.DateTo != "" && (t.LaunchDate < f.DateFrom || t.LaunchDate > f.DateTo) {
		return false
	}
	return true
}

// Project returns the boards in layout order with every column reduced to
// the tasks that match f. Boards and columns are fresh wrappers; tasks are
// shared with r and must be treated as read-only.
func Project(r *Registry, f Filters) []*model.Board {
	boards := r.Boards()
	out := make([]*model.Board, 0, len(boards))
	for _, b := range boards {
		out = append(out, projectBoard(b, f))
	}
	return out
}

// ProjectBoard is Project for a single board.
func ProjectBoard(r *Registry, name string, f Filters) (*model.Board, bool) {
	b, ok := r.Board(name)
	if !ok {
		return nil, false
	}
	return projectBoard(b, f), true
}

func projectBoard(b *model.Board, f Filters) *model.Board {
	pb := &model.Board{Name: b.Name, Columns: make([]*model.Column, 0, len(b.Columns))}
	for _, c := range b.Columns {
		pc := &model.Column{ID: c.ID, Title: c.Title, Tasks: make([]*model.Task, 0, len(c.Tasks))}
		for _, t := range c.Tasks {
			if f.Match(t) {
				pc.Tasks = append(pc.Tasks, t)
			}
		}
		pb.Columns = append(pb.Columns, pc)
	}
	return pb
}

type StageCount struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Summary is the per-column task count shown for a collapsed board.
type Summary []StageCount

func Summarize(b *model.Board) Summary {
	s := make(Summary, 0, len(b.Columns))
	for _, c := range b.Columns {
		s = append(s, StageCount{ID: c.ID, Title: c.Title, Count: len(c.Tasks)})
	}
	return s
}

// Count returns the number of tasks in the column with the given id.
func (s Summary) Count(columnID string) int {
	for _, sc := range s {
		if sc.ID == columnID {
			return sc.Count
		}
	}
	return 0
}

func (s Summary) String() string {
	parts := make([]string, 0, len(s))
	for _, sc := range s {
		parts = append(parts, fmt.Sprintf("%s: %d", sc.Title, sc.Count))
	}
	return strings.Join(parts, ", ")
}
