package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

var (
	// ErrSaveInProgress is returned by Save while a previous save is running.
	ErrSaveInProgress = errors.New("ui: save already in progress")
	// ErrFormNotReady is returned when the form is edited or saved before
	// its options are loaded.
	ErrFormNotReady = errors.New("ui: form not ready")
)

// FormState is the lifecycle of an UpdateForm.
type FormState int

const (
	FormIdle FormState = iota
	FormLoadingOptions
	FormReady
	FormSaving
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormLoadingOptions:
		return "loading-options"
	case FormReady:
		return "ready"
	case FormSaving:
		return "saving"
	}
	return "unknown"
}

// ownerOptionsSize is how many users are offered as owners.
const ownerOptionsSize = 100

// FormSnapshot is an immutable view of an UpdateForm.
type FormSnapshot struct {
	State    FormState
	Item     domain.ToDoItem
	Users    []domain.User
	Statuses []domain.ItemStatus
	IsSaving bool
	Err      error
}

// IsNew reports whether saving creates a new item.
func (s FormSnapshot) IsNew() bool {
	return s.Item.IsNew()
}

// UpdateForm edits one to-do item. Save issues Update when the item has an
// id and Create otherwise.
type UpdateForm struct {
	emitter

	svc ItemService
	log *slog.Logger

	mu       sync.Mutex
	state    FormState
	item     domain.ToDoItem
	users    []domain.User
	isSaving bool
	err      error
}

// NewUpdateForm creates an idle form.
func NewUpdateForm(svc ItemService, logger *slog.Logger) *UpdateForm {
	log := logger.With("ui", "update-form")
	return &UpdateForm{
		emitter: newEmitter(log),
		svc:     svc,
		log:     log,
	}
}

// Load fills the form with item and fetches the owner options. The item's
// current owner is always among the options. A failed fetch leaves the form
// Ready with only that owner to choose from.
func (f *UpdateForm) Load(ctx context.Context, item domain.ToDoItem) error {
	f.mu.Lock()
	if f.state == FormSaving {
		f.mu.Unlock()
		return ErrSaveInProgress
	}
	f.state = FormLoadingOptions
	f.item = item
	f.users = client.AddToCollectionIfMissing([]domain.User(nil), item.User)
	f.err = nil
	f.mu.Unlock()

	page, err := f.svc.QueryUsers(ctx, 0, ownerOptionsSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = FormReady
	if err != nil {
		f.err = fmt.Errorf("load owner options: %w", err)
		f.log.Warn("load owner options failed", slog.String("error", err.Error()))
		return f.err
	}
	f.users = client.AddToCollectionIfMissing(page.Content, f.item.User)
	return nil
}

// SetDescription replaces the description. Nil clears it.
func (f *UpdateForm) SetDescription(desc *string) error {
	return f.edit(func(item *domain.ToDoItem) error {
		item.Description = desc
		return nil
	})
}

// SetStatus replaces the status.
func (f *UpdateForm) SetStatus(status domain.ItemStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("invalid status %q", status))
	}
	return f.edit(func(item *domain.ToDoItem) error {
		item.Status = status
		return nil
	})
}

// SetOwner selects one of the offered users, or clears the owner when u is nil.
func (f *UpdateForm) SetOwner(u *domain.User) error {
	return f.edit(func(item *domain.ToDoItem) error {
		if u == nil {
			item.User, item.UserID = nil, nil
			return nil
		}
		owner := *u
		id := owner.ID
		item.User, item.UserID = &owner, &id
		return nil
	})
}

func (f *UpdateForm) edit(fn func(item *domain.ToDoItem) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case FormSaving:
		return ErrSaveInProgress
	case FormReady:
	default:
		return ErrFormNotReady
	}
	return fn(&f.item)
}

// Save sends the edited item. On success the form returns to Idle and a
// NavigateBack event is emitted. On failure the form stays Ready, the error
// is kept in the snapshot and a SaveFailed event is emitted. IsSaving is
// cleared either way.
func (f *UpdateForm) Save(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case FormSaving:
		f.mu.Unlock()
		return ErrSaveInProgress
	case FormReady:
	default:
		f.mu.Unlock()
		return ErrFormNotReady
	}
	f.state = FormSaving
	f.isSaving = true
	f.err = nil
	item := f.item
	f.mu.Unlock()

	var (
		saved *domain.ToDoItem
		err   error
	)
	if item.IsNew() {
		saved, err = f.svc.Create(ctx, item)
	} else {
		saved, err = f.svc.Update(ctx, item)
	}

	f.mu.Lock()
	f.isSaving = false
	if err != nil {
		f.state = FormReady
		f.err = err
		f.mu.Unlock()

		f.log.Info("save failed", slog.Int64("item_id", item.ID), slog.String("error", err.Error()))
		f.emit(Event{Kind: SaveFailed, Item: &item, Err: err})
		return err
	}
	f.state = FormIdle
	f.item = *saved
	f.mu.Unlock()

	f.emit(Event{Kind: NavigateBack, Item: saved})
	return nil
}

// Cancel leaves the form without saving.
func (f *UpdateForm) Cancel() {
	f.mu.Lock()
	if f.state != FormSaving {
		f.state = FormIdle
	}
	f.mu.Unlock()
	f.emit(Event{Kind: NavigateBack})
}

// Snapshot returns the current form state.
func (f *UpdateForm) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormSnapshot{
		State:    f.state,
		Item:     f.item,
		Users:    slices.Clone(f.users),
		Statuses: slices.Clone(domain.ItemStatuses),
		IsSaving: f.isSaving,
		Err:      f.err,
	}
}
