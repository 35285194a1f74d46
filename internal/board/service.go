package board

import (
	"context"
	"sync"
	"time"

	"multikanban/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service owns the current registry snapshot. Intents run one at a time;
// an applied intent is written through to the store before the next one is
// accepted, a rejected intent changes nothing.
type Service struct {
	mu    sync.Mutex
	store Store
	reg   *Registry
	log   logrus.FieldLogger
	clock func() time.Time
	newID func() string
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

// NewService loads the registry for layout from store.
func NewService(ctx context.Context, store Store, layout model.Layout, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   logrus.StandardLogger(),
		clock: func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reg = Load(ctx, store, layout, s.log)
	return s
}

func (s *Service) actor(user string) Actor {
	return Actor{User: user, Clock: s.clock, NewID: s.newID}
}

// Snapshot returns the current registry. Callers must not modify it.
func (s *Service) Snapshot() *Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg
}

func (s *Service) Layout() model.Layout {
	return s.Snapshot().Layout()
}

func (s *Service) View(f Filters) []*model.Board {
	return Project(s.Snapshot(), f)
}

func (s *Service) ViewBoard(name string, f Filters) (*model.Board, bool) {
	return ProjectBoard(s.Snapshot(), name, f)
}

// commit swaps in next and persists it. A failed write is logged; the new
// snapshot stays current since sibling boards may already be written.
func (s *Service) commit(ctx context.Context, next *Registry) {
	s.reg = next
	if err := Save(ctx, s.store, next); err != nil {
		s.log.WithError(err).Warn("⚠️  board state not fully persisted")
	}
}

func (s *Service) CreateTask(ctx context.Context, user, boardName string, draft model.Task) (*model.Task, bool) {
	return s.upsert(ctx, user, boardName, draft, false)
}

func (s *Service) UpdateTask(ctx context.Context, user, boardName string, draft model.Task) (*model.Task, bool) {
	return s.upsert(ctx, user, boardName, draft, true)
}

func (s *Service) upsert(ctx context.Context, user, boardName string, draft model.Task, isEdit bool) (*model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, task := s.actor(user).UpsertTask(s.reg, boardName, draft, isEdit)
	if task == nil {
		return nil, false
	}
	s.commit(ctx, next)
	s.log.WithFields(logrus.Fields{"board": boardName, "task": task.ID, "edit": isEdit, "user": user}).Info("task saved")
	return task, true
}

func (s *Service) DeleteTask(ctx context.Context, boardName, columnID, taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := DeleteTask(s.reg, boardName, columnID, taskID)
	if !ok {
		return false
	}
	s.commit(ctx, next)
	s.log.WithFields(logrus.Fields{"board": boardName, "column": columnID, "task": taskID}).Info("task deleted")
	return true
}

func (s *Service) Move(ctx context.Context, user string, m Move) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.actor(user).Move(s.reg, m)
	if !ok {
		s.log.WithFields(logrus.Fields{"from": m.From, "to": m.To}).Debug("move rejected")
		return false
	}
	s.commit(ctx, next)
	s.log.WithFields(logrus.Fields{"from": m.From, "to": m.To, "user": user}).Info("task moved")
	return true
}

// AddComment and AddNote work on a draft only; nothing is persisted.
func (s *Service) AddComment(user string, draft model.Task, text string) (model.Task, bool) {
	return s.actor(user).AddComment(draft, text)
}

func (s *Service) AddNote(user string, draft model.Task, text string) (model.Task, bool) {
	return s.actor(user).AddNote(draft, text)
}
