// Package ui holds the client-side state behind the to-do item screens.
// Every holder is safe for concurrent use: callers read immutable
// snapshots and react to events instead of binding to fields.
package ui

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// ItemService is the subset of the client service the screens use.
// Implemented by *client.Client.
type ItemService interface {
	Create(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error)
	Update(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error)
	Find(ctx context.Context, id int64) (*domain.ToDoItem, error)
	Query(ctx context.Context, opts client.QueryOptions) (domain.Page[domain.ToDoItem], error)
	Delete(ctx context.Context, id int64) error
	QueryUsers(ctx context.Context, page, size int) (domain.Page[domain.User], error)
}

// EventKind identifies what happened on a screen.
type EventKind int

const (
	// NavigateBack asks the host to leave the current screen.
	NavigateBack EventKind = iota + 1
	// SaveFailed reports a rejected save; Err carries the cause.
	SaveFailed
	// Deleted reports a confirmed deletion; Item is the removed item.
	Deleted
)

func (k EventKind) String() string {
	switch k {
	case NavigateBack:
		return "navigate-back"
	case SaveFailed:
		return "save-failed"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

// Event is delivered on a holder's Events channel.
type Event struct {
	Kind EventKind
	Item *domain.ToDoItem
	Err  error
}

const eventBuffer = 16

// emitter owns an event channel. Sends never block: with no reader the
// event is dropped and logged.
type emitter struct {
	ch  chan Event
	log *slog.Logger
}

func newEmitter(log *slog.Logger) emitter {
	return emitter{ch: make(chan Event, eventBuffer), log: log}
}

func (e emitter) emit(ev Event) {
	select {
	case e.ch <- ev:
	default:
		e.log.Warn("event dropped", slog.String("kind", ev.Kind.String()))
	}
}

// Events returns the receive side of the event channel.
func (e emitter) Events() <-chan Event {
	return e.ch
}
