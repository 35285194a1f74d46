// Package board holds the board registry and the operations that move tasks
// through it. Operations never mutate the registry they are given: they
// return a new snapshot that shares every untouched board, column and task
// with the old one.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"multikanban/internal/model"

	"github.com/sirupsen/logrus"
)

// Store is the key/value capability boards are persisted through.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// StorageKey derives the persistence key of a board.
func StorageKey(boardName string) string {
	return "kanbanColumns_" + strings.ToLower(boardName)
}

// Registry maps board names to boards. The board set and order come from
// the layout and never change.
type Registry struct {
	layout model.Layout
	boards map[string]*model.Board
}

// NewRegistry builds a registry where every board is the empty stage template.
func NewRegistry(layout model.Layout) *Registry {
	r := &Registry{layout: layout, boards: make(map[string]*model.Board, len(layout.Boards))}
	for _, name := range layout.Boards {
		r.boards[name] = templateBoard(layout, name)
	}
	return r
}

func templateBoard(layout model.Layout, name string) *model.Board {
	b := &model.Board{Name: name, Columns: make([]*model.Column, 0, len(layout.Stages))}
	for _, s := range layout.Stages {
		b.Columns = append(b.Columns, &model.Column{ID: s.ID, Title: s.Title, Tasks: []*model.Task{}})
	}
	return b
}

func (r *Registry) Layout() model.Layout {
	return r.layout
}

// Boards returns the boards in layout order.
func (r *Registry) Boards() []*model.Board {
	out := make([]*model.Board, 0, len(r.layout.Boards))
	for _, name := range r.layout.Boards {
		out = append(out, r.boards[name])
	}
	return out
}

func (r *Registry) Board(name string) (*model.Board, bool) {
	b, ok := r.boards[name]
	return b, ok
}

// Column resolves a board/column pair.
func (r *Registry) Column(boardName, columnID string) (*model.Column, bool) {
	b, ok := r.boards[boardName]
	if !ok {
		return nil, false
	}
	return b.Column(columnID)
}

// edit starts a new snapshot that shares all boards with r.
func (r *Registry) edit() *Registry {
	return &Registry{layout: r.layout, boards: maps.Clone(r.boards)}
}

// detach replaces the named column, and the board holding it, with private
// copies so its task list can be changed without affecting other snapshots.
// Must only be called on a registry returned by edit.
func (r *Registry) detach(boardName, columnID string) *model.Column {
	b, ok := r.boards[boardName]
	if !ok {
		return nil
	}
	i := b.ColumnIndex(columnID)
	if i < 0 {
		return nil
	}
	nb := &model.Board{Name: b.Name, Columns: slices.Clone(b.Columns)}
	c := b.Columns[i]
	nc := &model.Column{ID: c.ID, Title: c.Title, Tasks: slices.Clone(c.Tasks)}
	nb.Columns[i] = nc
	r.boards[boardName] = nb
	return nc
}

// Load hydrates every board of the layout from the store. Boards that are
// absent, unreadable or unparseable start from the stage template.
func Load(ctx context.Context, store Store, layout model.Layout, log logrus.FieldLogger) *Registry {
	r := NewRegistry(layout)
	seen := make(map[string]bool)
	for _, name := range layout.Boards {
		entry := log.WithField("board", name)

		raw, found, err := store.Get(ctx, StorageKey(name))
		if err != nil {
			entry.WithError(err).Warn("⚠️  board state unreadable, starting empty")
			continue
		}
		if !found {
			continue
		}

		var stored []*model.Column
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			entry.WithError(err).Warn("⚠️  board state corrupt, starting empty")
			continue
		}
		r.boards[name] = hydrate(layout, name, stored, seen, entry)
	}
	return r
}

// hydrate fits stored columns onto the stage template. Columns whose id is
// no longer in the template are discarded, and every task's state is
// re-derived from the column it sits in. A task id already in seen, from an
// earlier column or board, is discarded too.
func hydrate(layout model.Layout, name string, stored []*model.Column, seen map[string]bool, log logrus.FieldLogger) *model.Board {
	b := templateBoard(layout, name)
	for _, sc := range stored {
		if sc == nil {
			continue
		}
		c, ok := b.Column(sc.ID)
		if !ok {
			log.WithFields(logrus.Fields{"column": sc.ID, "tasks": len(sc.Tasks)}).
				Warn("⚠️  dropping column missing from stage template")
			continue
		}
		for _, t := range sc.Tasks {
			if t == nil {
				continue
			}
			if seen[t.ID] {
				log.WithFields(logrus.Fields{"column": sc.ID, "task": t.ID}).
					Warn("⚠️  dropping duplicate task id")
				continue
			}
			seen[t.ID] = true
			t = t.Clone()
			t.State = c.Title
			c.Tasks = append(c.Tasks, t)
		}
	}
	return b
}

// Save writes every board under its own key. Each write is independent: a
// failure is reported but does not stop or undo the others.
func Save(ctx context.Context, store Store, r *Registry) error {
	var errs []error
	for _, b := range r.Boards() {
		data, err := json.Marshal(b.Columns)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode board %q: %w", b.Name, err))
			continue
		}
		if err := store.Set(ctx, StorageKey(b.Name), string(data)); err != nil {
			errs = append(errs, fmt.Errorf("write board %q: %w", b.Name, err))
		}
	}
	return errors.Join(errs...)
}
