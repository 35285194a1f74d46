package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is wrapped by every Layout.Validate failure.
var ErrInvalidLayout = errors.New("invalid layout")

// DefaultIntake is the stage id new tasks land in and the only stage a task
// may enter from a neighbouring board.
const DefaultIntake = "pending"

// Layout fixes the boards, their order and the stage template at startup.
type Layout struct {
	Boards []string `json:"boards" yaml:"boards"`
	Stages []Stage  `json:"stages" yaml:"stages"`
	Intake string   `json:"intake" yaml:"intake"`
	Roster []string `json:"roster" yaml:"roster"`
}

func DefaultLayout() Layout {
	return Layout{
		Boards: []string{"DISCO", "SUPPLIER SHORTAGE", "HUNTING"},
		Stages: []Stage{
			{ID: "pending", Title: "Pending"},
			{ID: "on_hold", Title: "On Hold"},
			{ID: "closed", Title: "Closed"},
		},
		Intake: DefaultIntake,
		Roster: []string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Williams", "Charlie Brown"},
	}
}

// Validate checks that board names and stage ids are unique and that the
// intake stage is part of the template. Board names are compared
// case-insensitively because storage keys are lower-cased.
func (l Layout) Validate() error {
	if len(l.Boards) == 0 {
		return fmt.Errorf("%w: no boards", ErrInvalidLayout)
	}
	seen := make(map[string]bool, len(l.Boards))
	for _, name := range l.Boards {
		if strings.TrimSpace(name) == "" || strings.Contains(name, "|") {
			return fmt.Errorf("%w: bad board name %q", ErrInvalidLayout, name)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate board %q", ErrInvalidLayout, name)
		}
		seen[key] = true
	}

	if len(l.Stages) == 0 {
		return fmt.Errorf("%w: no stages", ErrInvalidLayout)
	}
	stages := make(map[string]bool, len(l.Stages))
	for _, s := range l.Stages {
		if s.ID == "" || strings.Contains(s.ID, "|") {
			return fmt.Errorf("%w: bad stage id %q", ErrInvalidLayout, s.ID)
		}
		if stages[s.ID] {
			return fmt.Errorf("%w: duplicate stage %q", ErrInvalidLayout, s.ID)
		}
		stages[s.ID] = true
	}
	if !stages[l.Intake] {
		return fmt.Errorf("%w: intake stage %q not in template", ErrInvalidLayout, l.Intake)
	}
	return nil
}

// BoardIndex returns the position of name in the board order, or -1.
func (l Layout) BoardIndex(name string) int {
	for i, b := range l.Boards {
		if b == name {
			return i
		}
	}
	return -1
}

// Stage returns the template entry for a stage id.
func (l Layout) Stage(id string) (Stage, bool) {
	for _, s := range l.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}
