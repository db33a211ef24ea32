package ui

import (
	"context"
	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/domain"
	"sync"
)

var _ ItemService = &ItemServiceMock{}

type ItemServiceMock struct {
	CreateFunc     func(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error)
	UpdateFunc     func(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error)
	FindFunc       func(ctx context.Context, id int64) (*domain.ToDoItem, error)
	QueryFunc      func(ctx context.Context, opts client.QueryOptions) (domain.Page[domain.ToDoItem], error)
	DeleteFunc     func(ctx context.Context, id int64) error
	QueryUsersFunc func(ctx context.Context, page int, size int) (domain.Page[domain.User], error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item domain.ToDoItem
		}
		Update []struct {
			Ctx  context.Context
			Item domain.ToDoItem
		}
		Find []struct {
			Ctx context.Context
			Id  int64
		}
		Query []struct {
			Ctx  context.Context
			Opts client.QueryOptions
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		QueryUsers []struct {
			Ctx  context.Context
			Page int
			Size int
		}
	}
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockFind       sync.RWMutex
	lockQuery      sync.RWMutex
	lockDelete     sync.RWMutex
	lockQueryUsers sync.RWMutex
}

func (mock *ItemServiceMock) Create(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error) {
	if mock.CreateFunc == nil {
		panic("ItemServiceMock.CreateFunc: method is nil but ItemService.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.ToDoItem
	}{
		Ctx:  ctx,
		Item: item,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *ItemServiceMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.ToDoItem
} {
	var calls []struct {
		Ctx  context.Context
		Item domain.ToDoItem
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ItemServiceMock) Update(ctx context.Context, item domain.ToDoItem) (*domain.ToDoItem, error) {
	if mock.UpdateFunc == nil {
		panic("ItemServiceMock.UpdateFunc: method is nil but ItemService.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.ToDoItem
	}{
		Ctx:  ctx,
		Item: item,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *ItemServiceMock) UpdateCalls() []struct {
	Ctx  context.Context
	Item domain.ToDoItem
} {
	var calls []struct {
		Ctx  context.Context
		Item domain.ToDoItem
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *ItemServiceMock) Find(ctx context.Context, id int64) (*domain.ToDoItem, error) {
	if mock.FindFunc == nil {
		panic("ItemServiceMock.FindFunc: method is nil but ItemService.Find was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, id)
}

func (mock *ItemServiceMock) FindCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockFind.RLock()
	calls = mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *ItemServiceMock) Query(ctx context.Context, opts client.QueryOptions) (domain.Page[domain.ToDoItem], error) {
	if mock.QueryFunc == nil {
		panic("ItemServiceMock.QueryFunc: method is nil but ItemService.Query was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Opts client.QueryOptions
	}{
		Ctx:  ctx,
		Opts: opts,
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, opts)
}

func (mock *ItemServiceMock) QueryCalls() []struct {
	Ctx  context.Context
	Opts client.QueryOptions
} {
	var calls []struct {
		Ctx  context.Context
		Opts client.QueryOptions
	}
	mock.lockQuery.RLock()
	calls = mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *ItemServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("ItemServiceMock.DeleteFunc: method is nil but ItemService.Delete was just called")
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

func (mock *ItemServiceMock) DeleteCalls() []struct {
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

func (mock *ItemServiceMock) QueryUsers(ctx context.Context, page int, size int) (domain.Page[domain.User], error) {
	if mock.QueryUsersFunc == nil {
		panic("ItemServiceMock.QueryUsersFunc: method is nil but ItemService.QueryUsers was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page int
		Size int
	}{
		Ctx:  ctx,
		Page: page,
		Size: size,
	}
	mock.lockQueryUsers.Lock()
	mock.calls.QueryUsers = append(mock.calls.QueryUsers, callInfo)
	mock.lockQueryUsers.Unlock()
	return mock.QueryUsersFunc(ctx, page, size)
}

func (mock *ItemServiceMock) QueryUsersCalls() []struct {
	Ctx  context.Context
	Page int
	Size int
} {
	var calls []struct {
		Ctx  context.Context
		Page int
		Size int
	}
	mock.lockQueryUsers.RLock()
	calls = mock.calls.QueryUsers
	mock.lockQueryUsers.RUnlock()
	return calls
}
