package todoitem

import (
	"context"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"sync"
)

var _ sessionFactory = &sessionFactoryMock{}

type sessionFactoryMock struct {
	BeginFunc func(ctx context.Context) (postgres.Session, error)

	calls struct {
		Begin []struct {
			Ctx context.Context
		}
	}
	lockBegin sync.RWMutex
}

func (mock *sessionFactoryMock) Begin(ctx context.Context) (postgres.Session, error) {
	if mock.BeginFunc == nil {
		panic("sessionFactoryMock.BeginFunc: method is nil but sessionFactory.Begin was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockBegin.Lock()
	mock.calls.Begin = append(mock.calls.Begin, callInfo)
	mock.lockBegin.Unlock()
	return mock.BeginFunc(ctx)
}

func (mock *sessionFactoryMock) BeginCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockBegin.RLock()
	calls = mock.calls.Begin
	mock.lockBegin.RUnlock()
	return calls
}
