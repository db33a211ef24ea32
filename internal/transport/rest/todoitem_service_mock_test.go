package rest

import (
	"context"
	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todoitem"
	"sync"
)

var _ toDoItemService = &toDoItemServiceMock{}

type toDoItemServiceMock struct {
	CreateFunc        func(ctx context.Context, input todoitem.SaveInput) (*domain.ToDoItem, error)
	DeleteFunc        func(ctx context.Context, id int64) error
	GetFunc           func(ctx context.Context, id int64) (*domain.ToDoItem, error)
	ListFunc          func(ctx context.Context, filter domain.ToDoItemFilter, p domain.Pageable) (domain.Page[domain.ToDoItem], error)
	PartialUpdateFunc func(ctx context.Context, id int64, input todoitem.PatchInput) (*domain.ToDoItem, error)
	UpdateFunc        func(ctx context.Context, id int64, input todoitem.SaveInput) (*domain.ToDoItem, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input todoitem.SaveInput
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ToDoItemFilter
			P      domain.Pageable
		}
		PartialUpdate []struct {
			Ctx   context.Context
			Id    int64
			Input todoitem.PatchInput
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Input todoitem.SaveInput
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockPartialUpdate sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *toDoItemServiceMock) Create(ctx context.Context, input todoitem.SaveInput) (*domain.ToDoItem, error) {
	if mock.CreateFunc == nil {
		panic("toDoItemServiceMock.CreateFunc: method is nil but toDoItemService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todoitem.SaveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *toDoItemServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input todoitem.SaveInput
} {
	var calls []struct {
		Ctx   context.Context
		Input todoitem.SaveInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *toDoItemServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("toDoItemServiceMock.DeleteFunc: method is nil but toDoItemService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *toDoItemServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *toDoItemServiceMock) Get(ctx context.Context, id int64) (*domain.ToDoItem, error) {
	if mock.GetFunc == nil {
		panic("toDoItemServiceMock.GetFunc: method is nil but toDoItemService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *toDoItemServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *toDoItemServiceMock) List(ctx context.Context, filter domain.ToDoItemFilter, p domain.Pageable) (domain.Page[domain.ToDoItem], error) {
	if mock.ListFunc == nil {
		panic("toDoItemServiceMock.ListFunc: method is nil but toDoItemService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ToDoItemFilter
		P      domain.Pageable
	}{
		Ctx:    ctx,
		Filter: filter,
		P:      p,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter, p)
}

func (mock *toDoItemServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ToDoItemFilter
	P      domain.Pageable
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.ToDoItemFilter
		P      domain.Pageable
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *toDoItemServiceMock) PartialUpdate(ctx context.Context, id int64, input todoitem.PatchInput) (*domain.ToDoItem, error) {
	if mock.PartialUpdateFunc == nil {
		panic("toDoItemServiceMock.PartialUpdateFunc: method is nil but toDoItemService.PartialUpdate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input todoitem.PatchInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockPartialUpdate.Lock()
	mock.calls.PartialUpdate = append(mock.calls.PartialUpdate, callInfo)
	mock.lockPartialUpdate.Unlock()
	return mock.PartialUpdateFunc(ctx, id, input)
}

func (mock *toDoItemServiceMock) PartialUpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input todoitem.PatchInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Input todoitem.PatchInput
	}
	mock.lockPartialUpdate.RLock()
	calls = mock.calls.PartialUpdate
	mock.lockPartialUpdate.RUnlock()
	return calls
}

func (mock *toDoItemServiceMock) Update(ctx context.Context, id int64, input todoitem.SaveInput) (*domain.ToDoItem, error) {
	if mock.UpdateFunc == nil {
		panic("toDoItemServiceMock.UpdateFunc: method is nil but toDoItemService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input todoitem.SaveInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *toDoItemServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input todoitem.SaveInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Input todoitem.SaveInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
