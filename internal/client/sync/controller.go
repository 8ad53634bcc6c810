// Package sync implements the create/read/update/delete pattern shared by
// every resource screen. The three resource kinds behave identically, so the
// controller is generic over the entity type and parameterized by base path
// and default draft; the list and the editor are two independent state axes.
package sync

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"

	"github.com/avanags/fitpulse/internal/client/api"
	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/logging"
)

type ListState int

const (
	ListLoading ListState = iota
	ListReady
	ListFailed
)

type EditorState int

const (
	EditorClosed EditorState = iota
	EditorOpen
	EditorSaving
)

var (
	// ErrEditorOpen rejects opening a second editor; the first must close.
	ErrEditorOpen = errors.New("editor already open")

	// ErrEditorClosed rejects draft operations while no editor is open.
	ErrEditorClosed = errors.New("editor not open")

	// ErrBusy rejects a second submit or remove while one is in flight.
	// The call is rejected outright, not queued.
	ErrBusy = errors.New("operation already in flight")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("controller disposed")
)

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a user-facing success or failure signal. The controller never
// decides presentation; it hands notices to the callback it was given.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Config names a resource kind and tells the controller where its collection
// lives and what a fresh draft looks like.
type Config[T models.Entity] struct {
	BasePath string
	Singular string
	Plural   string
	NewDraft func() T
}

// Controller drives one resource screen. The in-memory list is the only place
// entities live client-side: it is always a direct reflection of the last
// successful fetch, never an optimistically patched copy.
type Controller[T models.Entity] struct {
	api    *api.Client
	cfg    Config[T]
	notify func(Notice)
	log    logging.Logger

	mu        stdsync.Mutex
	listState ListState
	items     []T
	listErr   string

	editorState EditorState
	draft       T
	isNew       bool

	inFlight bool
	disposed bool
}

// New builds a controller. notify may be nil when the caller does not render
// notifications (tests often don't).
func New[T models.Entity](client *api.Client, cfg Config[T], notify func(Notice), log logging.Logger) *Controller[T] {
	return &Controller[T]{
		api:    client,
		cfg:    cfg,
		notify: notify,
		log:    log.With("resource", cfg.Singular),
	}
}

func (c *Controller[T]) emit(kind NoticeKind, msg string) {
	if c.notify != nil {
		c.notify(Notice{Kind: kind, Message: msg})
	}
}

// ListState returns the list axis state.
func (c *Controller[T]) ListState() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listState
}

// ListError returns the user-facing message of the last failed refresh.
func (c *Controller[T]) ListError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listErr
}

// Items returns a snapshot of the list. A previous good list stays visible
// through later failed refreshes.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// EditorState returns the editor axis state.
func (c *Controller[T]) EditorState() EditorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editorState
}

// Draft returns a copy of the open draft and whether an editor is open.
func (c *Controller[T]) Draft() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	open := c.editorState != EditorClosed
	return c.draft, open
}

// IsNew reports whether the open draft has never been persisted.
func (c *Controller[T]) IsNew() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isNew
}

// Refresh fetches the full list. The replacement is all-or-nothing: on
// failure the list keeps its previous contents and only the state and the
// message change.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.listState != ListReady {
		c.listState = ListLoading
	}
	c.mu.Unlock()

	var fetched []T
	err := c.api.Get(ctx, c.cfg.BasePath, &fetched)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		// The screen is gone; absorb the late completion.
		return nil
	}

	if err != nil {
		c.listState = ListFailed
		c.listErr = fmt.Sprintf("Failed to load %s.", c.cfg.Plural)
		c.log.Warn(ctx, "refresh failed", "error", err)
		c.emit(NoticeError, c.listErr)
		return err
	}

	if fetched == nil {
		fetched = []T{}
	}
	c.items = fetched
	c.listState = ListReady
	c.listErr = ""
	return nil
}

// OpenEditor opens the single editor: with a copy of entity for editing, or
// with the default draft when entity is nil. Only legal while closed.
func (c *Controller[T]) OpenEditor(entity *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrClosed
	}
	if c.editorState != EditorClosed {
		return ErrEditorOpen
	}

	if entity == nil {
		c.draft = c.cfg.NewDraft()
		c.isNew = true
	} else {
		c.draft = *entity
		c.isNew = (*entity).GetID() == ""
	}
	c.editorState = EditorOpen
	return nil
}

// UpdateDraft mutates the open draft in place. Legal only while the editor is
// open and not saving.
func (c *Controller[T]) UpdateDraft(mutate func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrClosed
	}
	if c.editorState != EditorOpen {
		return ErrEditorClosed
	}
	mutate(&c.draft)
	return nil
}

// CloseEditor discards the draft without saving.
func (c *Controller[T]) CloseEditor() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrClosed
	}
	if c.editorState == EditorSaving {
		return ErrBusy
	}
	var zero T
	c.draft = zero
	c.isNew = false
	c.editorState = EditorClosed
	return nil
}

// Submit saves the open draft: a create for a draft without an identifier, an
// update to the identifier's path otherwise. On success the editor closes and
// the list is re-derived from the server; on failure the editor returns to
// open with the draft intact and no retry is attempted.
func (c *Controller[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.editorState != EditorOpen {
		c.mu.Unlock()
		return ErrEditorClosed
	}

	draft := c.draft
	isNew := c.isNew
	if err := draft.Validate(); err != nil {
		c.mu.Unlock()
		return err
	}

	c.editorState = EditorSaving
	c.inFlight = true
	c.mu.Unlock()

	var err error
	if isNew {
		err = c.api.Post(ctx, c.cfg.BasePath, draft, nil)
	} else {
		err = c.api.Put(ctx, c.cfg.BasePath+"/"+draft.GetID(), draft, nil)
	}

	c.mu.Lock()
	c.inFlight = false
	if c.disposed {
		c.mu.Unlock()
		return nil
	}

	if err != nil {
		// Draft preserved, nothing lost.
		c.editorState = EditorOpen
		c.mu.Unlock()
		c.log.Warn(ctx, "save failed", "error", err)
		c.emit(NoticeError, fmt.Sprintf("Failed to save %s.", c.cfg.Singular))
		return err
	}

	var zero T
	c.draft = zero
	c.isNew = false
	c.editorState = EditorClosed
	c.mu.Unlock()

	if isNew {
		c.emit(NoticeSuccess, fmt.Sprintf("%s added!", title(c.cfg.Singular)))
	} else {
		c.emit(NoticeSuccess, fmt.Sprintf("%s updated!", title(c.cfg.Singular)))
	}

	// The list is never patched locally; re-derive it from the server.
	_ = c.Refresh(ctx)
	return nil
}

// Remove deletes a persisted entity after the confirm gate approves. On
// success the list is re-derived; on failure it is left untouched until the
// next refresh.
func (c *Controller[T]) Remove(ctx context.Context, entity T, confirm func() bool) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	id := entity.GetID()
	if id == "" {
		c.mu.Unlock()
		return fmt.Errorf("cannot delete an unsaved %s", c.cfg.Singular)
	}
	if confirm != nil && !confirm() {
		c.mu.Unlock()
		return nil
	}
	c.inFlight = true
	c.mu.Unlock()

	err := c.api.Delete(ctx, c.cfg.BasePath+"/"+id)

	c.mu.Lock()
	c.inFlight = false
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Warn(ctx, "delete failed", "error", err)
		c.emit(NoticeError, fmt.Sprintf("Failed to delete %s.", c.cfg.Singular))
		return err
	}

	c.emit(NoticeSuccess, fmt.Sprintf("%s deleted!", title(c.cfg.Singular)))
	_ = c.Refresh(ctx)
	return nil
}

// Close disposes the controller. Outstanding completions are absorbed without
// mutating state, and later operations return ErrClosed.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
}

func title(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
