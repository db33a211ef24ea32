package rest

import (
	"context"
	"github.com/heartmarshall/todo-backend/internal/domain"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	CurrentFunc func(ctx context.Context) (*domain.User, error)
	ListFunc    func(ctx context.Context, p domain.Pageable) (domain.Page[domain.User], error)

	calls struct {
		Current []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx context.Context
			P   domain.Pageable
		}
	}
	lockCurrent sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *userServiceMock) Current(ctx context.Context) (*domain.User, error) {
	if mock.CurrentFunc == nil {
		panic("userServiceMock.CurrentFunc: method is nil but userService.Current was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx)
}

func (mock *userServiceMock) CurrentCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCurrent.RLock()
	calls = mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

func (mock *userServiceMock) List(ctx context.Context, p domain.Pageable) (domain.Page[domain.User], error) {
	if mock.ListFunc == nil {
		panic("userServiceMock.ListFunc: method is nil but userService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Pageable
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, p)
}

func (mock *userServiceMock) ListCalls() []struct {
	Ctx context.Context
	P   domain.Pageable
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Pageable
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
