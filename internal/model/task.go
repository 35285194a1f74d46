package model

import (
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Activity is one entry of a task's append-only activity log.
type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
}

// Entry is a user-authored comment or note attached to a task.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

type Task struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	State          string `json:"state"`
	Molecule       string `json:"molecule"`
	Analyst        string `json:"analyst"`
	AccountManager string `json:"accountManager"`
	Description    string `json:"description"`
	LaunchDate     string `json:"launchDate"`

	// Attributes holds the domain-specific fields (bid values, agencies,
	// partners, ...) that the board never inspects. They are encoded as
	// top-level keys next to the fixed fields.
	Attributes map[string]any `json:"-"`

	Activities []Activity `json:"activities"`
	Comments   []Entry    `json:"comments"`
	Notes      []Entry    `json:"notes"`
}

type taskFields Task

var taskFieldNames = fieldNames(reflect.TypeFor[taskFields]())

// IsTaskField reports whether key names one of the fixed task fields.
func IsTaskField(key string) bool {
	return taskFieldNames[strings.ToLower(key)]
}

func (t Task) MarshalJSON() ([]byte, error) {
	return MarshalFlat(taskFields(t), t.Attributes)
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var fixed taskFields
	attrs, err := UnmarshalFlat(data, &fixed)
	if err != nil {
		return err
	}
	*t = Task(fixed)
	t.Attributes = attrs
	return nil
}

// Clone returns a copy of t whose logs and attributes can be appended to
// without touching t.
func (t *Task) Clone() *Task {
	c := *t
	c.Attributes = maps.Clone(t.Attributes)
	c.Activities = slices.Clone(t.Activities)
	c.Comments = slices.Clone(t.Comments)
	c.Notes = slices.Clone(t.Notes)
	c.normalize()
	return &c
}

// normalize replaces nil logs with empty ones so they encode as [].
func (t *Task) normalize() {
	if t.Activities == nil {
		t.Activities = []Activity{}
	}
	if t.Comments == nil {
		t.Comments = []Entry{}
	}
	if t.Notes == nil {
		t.Notes = []Entry{}
	}
}
