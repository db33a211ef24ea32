package todoitem

import (
	"context"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
	"sync"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateOrUpdateFunc func(ctx context.Context, q postgres.Querier, item domain.ToDoItem) (*domain.ToDoItem, error)
	DeleteByIDFunc     func(ctx context.Context, q postgres.Querier, id int64) error
	ExistsByIDFunc     func(ctx context.Context, q postgres.Querier, id int64) (bool, error)
	GetByIDFunc        func(ctx context.Context, q postgres.Querier, id int64) (*domain.ToDoItem, error)
	GetPageFunc        func(ctx context.Context, q postgres.Querier, f domain.ToDoItemFilter, p domain.Pageable) (domain.Page[domain.ToDoItem], error)

	calls struct {
		CreateOrUpdate []struct {
			Ctx  context.Context
			Q    postgres.Querier
			Item domain.ToDoItem
		}
		DeleteByID []struct {
			Ctx context.Context
			Q   postgres.Querier
			Id  int64
		}
		ExistsByID []struct {
			Ctx context.Context
			Q   postgres.Querier
			Id  int64
		}
		GetByID []struct {
			Ctx context.Context
			Q   postgres.Querier
			Id  int64
		}
		GetPage []struct {
			Ctx context.Context
			Q   postgres.Querier
			F   domain.ToDoItemFilter
			P   domain.Pageable
		}
	}
	lockCreateOrUpdate sync.RWMutex
	lockDeleteByID     sync.RWMutex
	lockExistsByID     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetPage        sync.RWMutex
}

func (mock *itemRepoMock) CreateOrUpdate(ctx context.Context, q postgres.Querier, item domain.ToDoItem) (*domain.ToDoItem, error) {
	if mock.CreateOrUpdateFunc == nil {
		panic("itemRepoMock.CreateOrUpdateFunc: method is nil but itemRepo.CreateOrUpdate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Q    postgres.Querier
		Item domain.ToDoItem
	}{
		Ctx:  ctx,
		Q:    q,
		Item: item,
	}
	mock.lockCreateOrUpdate.Lock()
	mock.calls.CreateOrUpdate = append(mock.calls.CreateOrUpdate, callInfo)
	mock.lockCreateOrUpdate.Unlock()
	return mock.CreateOrUpdateFunc(ctx, q, item)
}

func (mock *itemRepoMock) CreateOrUpdateCalls() []struct {
	Ctx  context.Context
	Q    postgres.Querier
	Item domain.ToDoItem
} {
	var calls []struct {
		Ctx  context.Context
		Q    postgres.Querier
		Item domain.ToDoItem
	}
	mock.lockCreateOrUpdate.RLock()
	calls = mock.calls.CreateOrUpdate
	mock.lockCreateOrUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) DeleteByID(ctx context.Context, q postgres.Querier, id int64) error {
	if mock.DeleteByIDFunc == nil {
		panic("itemRepoMock.DeleteByIDFunc: method is nil but itemRepo.DeleteByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  int64
	}{
		Ctx: ctx,
		Q:   q,
		Id:  id,
	}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, q, id)
}

func (mock *itemRepoMock) DeleteByIDCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  int64
	}
	mock.lockDeleteByID.RLock()
	calls = mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) ExistsByID(ctx context.Context, q postgres.Querier, id int64) (bool, error) {
	if mock.ExistsByIDFunc == nil {
		panic("itemRepoMock.ExistsByIDFunc: method is nil but itemRepo.ExistsByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  int64
	}{
		Ctx: ctx,
		Q:   q,
		Id:  id,
	}
	mock.lockExistsByID.Lock()
	mock.calls.ExistsByID = append(mock.calls.ExistsByID, callInfo)
	mock.lockExistsByID.Unlock()
	return mock.ExistsByIDFunc(ctx, q, id)
}

func (mock *itemRepoMock) ExistsByIDCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  int64
	}
	mock.lockExistsByID.RLock()
	calls = mock.calls.ExistsByID
	mock.lockExistsByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByID(ctx context.Context, q postgres.Querier, id int64) (*domain.ToDoItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  int64
	}{
		Ctx: ctx,
		Q:   q,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, q, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetPage(ctx context.Context, q postgres.Querier, f domain.ToDoItemFilter, p domain.Pageable) (domain.Page[domain.ToDoItem], error) {
	if mock.GetPageFunc == nil {
		panic("itemRepoMock.GetPageFunc: method is nil but itemRepo.GetPage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   postgres.Querier
		F   domain.ToDoItemFilter
		P   domain.Pageable
	}{
		Ctx: ctx,
		Q:   q,
		F:   f,
		P:   p,
	}
	mock.lockGetPage.Lock()
	mock.calls.GetPage = append(mock.calls.GetPage, callInfo)
	mock.lockGetPage.Unlock()
	return mock.GetPageFunc(ctx, q, f, p)
}

func (mock *itemRepoMock) GetPageCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	F   domain.ToDoItemFilter
	P   domain.Pageable
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		F   domain.ToDoItemFilter
		P   domain.Pageable
	}
	mock.lockGetPage.RLock()
	calls = mock.calls.GetPage
	mock.lockGetPage.RUnlock()
	return calls
}
