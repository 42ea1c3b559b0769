package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/jot/internal/converters"
	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/models"
)

// StorageKey is the key/value slot holding the JSON array of tasks
const StorageKey = "tasks"

// DefaultUndoWindow is how long a deletion can be undone
const DefaultUndoWindow = 4 * time.Second

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Text          string
	Category      models.Category
	CategoryColor string // Optional: empty means the category preset
	FontColor     string // Optional: empty means models.DefaultFontColor
	DueDate       string // Optional: empty means today, unless NoDueDate
	NoDueDate     bool
	Photo         *models.Photo // Optional, already read from disk
}

// UpdateTaskRequest encapsulates all data needed to update a task.
// Every field except Photo replaces the stored value.
type UpdateTaskRequest struct {
	ID            models.TaskID
	Text          string
	Category      models.Category
	CategoryColor string
	FontColor     string
	DueDate       string        // empty clears the due date
	Photo         *models.Photo // nil keeps the current photo
	RemovePhoto   bool
}

// Validate checks the fields that do not depend on the photo, so callers can
// reject a request before starting a file read.
func (r CreateTaskRequest) Validate() error {
	_, err := validateFields(r.Text, r.Category, r.DueDate, nil)
	return err
}

// Validate is CreateTaskRequest.Validate for updates
func (r UpdateTaskRequest) Validate() error {
	_, err := validateFields(r.Text, r.Category, r.DueDate, nil)
	return err
}

// Store owns the canonical ordered task list and keeps it in sync with the
// key/value slot. Every mutation builds the next list, persists it and only
// then swaps it in, so a failed write leaves memory and disk unchanged.
type Store struct {
	mu   sync.RWMutex
	repo database.KeyValueStore

	tasks []models.Task

	// undo slot: the most recent deletion and when it happened
	lastDeleted *models.Task
	deletedAt   time.Time

	now         func() time.Time
	undoWindow  time.Duration
	presetColor func(models.Category) string
	logger      *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now, used for due date defaults and undo expiry
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithUndoWindow sets how long a deletion stays undoable
func WithUndoWindow(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.undoWindow = d
		}
	}
}

// WithCategoryColors sets the preset color lookup used when a task has no
// category color of its own
func WithCategoryColors(preset func(models.Category) string) Option {
	return func(s *Store) {
		if preset != nil {
			s.presetColor = preset
		}
	}
}

// WithLogger sets the logger used for load repairs
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an empty store backed by repo. Call Load to read the saved list.
func NewStore(repo database.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		repo:        repo,
		tasks:       []models.Task{},
		now:         time.Now,
		undoWindow:  DefaultUndoWindow,
		presetColor: models.Category.DefaultColor,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UndoWindow returns the configured undo window
func (s *Store) UndoWindow() time.Duration {
	return s.undoWindow
}

// ============================================================================
// PERSISTENCE
// ============================================================================

// Load reads the saved list. On unreadable or malformed storage it returns an
// empty list together with an error wrapping ErrStorageRead; the in-memory
// list is emptied either way so the store never holds stale data.
func (s *Store) Load(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = []models.Task{}

	raw, found, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		return []models.Task{}, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []models.Task{}, nil
	}

	var recs []converters.StoredTask
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return []models.Task{}, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}

	tasks, notes := converters.TasksToModels(recs)
	for i, n := range notes {
		s.logger.Warn("repaired stored task", "index", i, "notes", n)
	}

	s.tasks = tasks
	return cloneTasks(tasks), nil
}

// Save validates and persists the full ordered list, replacing whatever was
// stored. On failure nothing changes.
func (s *Store) Save(ctx context.Context, tasks []models.Task) error {
	next := cloneTasks(tasks)
	for i := range next {
		if err := validateStored(&next[i]); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

// persist writes list to the slot. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, list []models.Task) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	if err := s.repo.Put(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	return nil
}

// ============================================================================
// READS
// ============================================================================

// Tasks returns a copy of the current ordered list
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

// Get returns a copy of the task with id
func (s *Store) Get(id models.TaskID) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Len returns the number of tasks
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// ============================================================================
// WRITES
// ============================================================================

// Create validates req, appends a new task and persists the list
func (s *Store) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	text, err := validateFields(req.Text, req.Category, req.DueDate, req.Photo)
	if err != nil {
		return nil, err
	}

	now := s.now()
	task := models.Task{
		ID:            models.NewTaskID(),
		Text:          text,
		Category:      req.Category,
		CategoryColor: converters.NormalizeColor(req.CategoryColor, s.presetColor(req.Category)),
		FontColor:     converters.NormalizeColor(req.FontColor, models.DefaultFontColor),
		DueDate:       strings.TrimSpace(req.DueDate),
		Priority:      models.PriorityNormal,
		Photo:         req.Photo,
		CreatedAt:     now.UTC(),
	}
	if task.DueDate == "" && !req.NoDueDate {
		task.DueDate = models.Today(now)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(cloneTasks(s.tasks), task.Clone())
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.tasks = next

	return &task, nil
}

// Update validates req and replaces the matching task in place. Priority and
// creation time are preserved.
func (s *Store) Update(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.ID == "" {
		return nil, ErrInvalidTaskID
	}
	text, err := validateFields(req.Text, req.Category, req.DueDate, req.Photo)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(req.ID)
	if i < 0 {
		return nil, ErrTaskNotFound
	}

	next := cloneTasks(s.tasks)
	prev := next[i]
	task := prev
	task.Text = text
	task.Category = req.Category
	task.CategoryColor = s.categoryColorFor(prev, req)
	task.FontColor = converters.NormalizeColor(req.FontColor, models.DefaultFontColor)
	task.DueDate = strings.TrimSpace(req.DueDate)
	switch {
	case req.Photo != nil:
		task.Photo = req.Photo
	case req.RemovePhoto:
		task.Photo = nil
	}
	next[i] = task.Clone()

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.tasks = next

	out := task.Clone()
	return &out, nil
}

// categoryColorFor picks the category color for an update. A color left at
// the old category's preset follows the category to its new preset; any
// other color is kept as a per-task override.
func (s *Store) categoryColorFor(prev models.Task, req UpdateTaskRequest) string {
	color := converters.NormalizeColor(req.CategoryColor, s.presetColor(req.Category))
	if req.Category != prev.Category && color == s.presetColor(prev.Category) {
		return s.presetColor(req.Category)
	}
	return color
}

// Delete removes the task, persists the remainder and keeps the removed task
// in the undo slot, replacing any earlier one.
func (s *Store) Delete(ctx context.Context, id models.TaskID) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrTaskNotFound
	}

	removed := s.tasks[i].Clone()
	next := make([]models.Task, 0, len(s.tasks)-1)
	next = append(next, cloneTasks(s.tasks[:i])...)
	next = append(next, cloneTasks(s.tasks[i+1:])...)

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.tasks = next
	s.lastDeleted = &removed
	s.deletedAt = s.now()

	out := removed.Clone()
	return &out, nil
}

// UndoAvailable reports whether a deletion can still be undone
func (s *Store) UndoAvailable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.undoLive()
}

func (s *Store) undoLive() bool {
	return s.lastDeleted != nil && s.now().Sub(s.deletedAt) <= s.undoWindow
}

// UndoDelete re-appends the last deleted task to the end of the list. It
// returns (nil, nil) when there is nothing to undo or the window has passed.
// On a failed write the slot is kept so the user can retry within the window.
func (s *Store) UndoDelete(ctx context.Context) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.undoLive() {
		s.lastDeleted = nil
		return nil, nil
	}

	restored := s.lastDeleted.Clone()
	next := append(cloneTasks(s.tasks), restored)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.tasks = next
	s.lastDeleted = nil

	out := restored.Clone()
	return &out, nil
}

// TogglePriority advances the task's priority Normal -> High -> Low -> Normal
func (s *Store) TogglePriority(ctx context.Context, id models.TaskID) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrTaskNotFound
	}

	next := cloneTasks(s.tasks)
	next[i].Priority = next[i].Priority.Next()
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.tasks = next

	out := next[i].Clone()
	return &out, nil
}

// ============================================================================
// HELPERS
// ============================================================================

// indexOf returns the position of id, or -1. Callers hold s.mu.
func (s *Store) indexOf(id models.TaskID) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// validateFields checks the user editable fields shared by create and update
// and returns the trimmed text
func validateFields(text string, category models.Category, dueDate string, photo *models.Photo) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if !category.Valid() {
		return "", ErrInvalidCategory
	}
	if d := strings.TrimSpace(dueDate); d != "" && !models.ValidDate(d) {
		return "", ErrInvalidDueDate
	}
	if err := ValidatePhoto(photo); err != nil {
		return "", err
	}
	return text, nil
}

// validateStored checks a fully built task before it is saved
func validateStored(t *models.Task) error {
	if t.ID == "" {
		return ErrInvalidTaskID
	}
	text, err := validateFields(t.Text, t.Category, t.DueDate, t.Photo)
	if err != nil {
		return err
	}
	t.Text = text
	if !t.Priority.Valid() {
		t.Priority = models.PriorityNormal
	}
	return nil
}

// ValidatePhoto enforces the size cap and image type. A nil photo is valid.
func ValidatePhoto(p *models.Photo) error {
	if p == nil {
		return nil
	}
	if p.Size() > models.MaxPhotoBytes {
		return ErrPhotoTooLarge
	}
	if !p.IsImage() {
		return ErrPhotoNotImage
	}
	return nil
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out
}
