package model_test

import (
	"testing"

	"multikanban/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayout_IsValid(t *testing.T) {
	layout := model.DefaultLayout()

	assert.NoError(t, layout.Validate())
	assert.Equal(t, 1, layout.BoardIndex("SUPPLIER SHORTAGE"))
	assert.Equal(t, -1, layout.BoardIndex("supplier shortage"))

	stage, ok := layout.Stage("on_hold")
	assert.True(t, ok)
	assert.Equal(t, "On Hold", stage.Title)
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *model.Layout)
	}{
		{"no boards", func(l *model.Layout) { l.Boards = nil }},
		{"blank board", func(l *model.Layout) { l.Boards = append(l.Boards, "  ") }},
		{"duplicate board ignoring case", func(l *model.Layout) { l.Boards = append(l.Boards, "disco") }},
		{"no stages", func(l *model.Layout) { l.Stages = nil }},
		{"duplicate stage", func(l *model.Layout) { l.Stages = append(l.Stages, model.Stage{ID: "closed", Title: "Done"}) }},
		{"separator in stage id", func(l *model.Layout) { l.Stages[1].ID = "on|hold" }},
		{"intake outside template", func(l *model.Layout) { l.Intake = "backlog" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := model.DefaultLayout()
			tt.mutate(&layout)

			assert.ErrorIs(t, layout.Validate(), model.ErrInvalidLayout)
		})
	}
}
