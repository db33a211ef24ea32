package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc  func(ctx context.Context, q postgres.Querier, id uuid.UUID) (*domain.User, error)
	GetByIDsFunc func(ctx context.Context, q postgres.Querier, ids []uuid.UUID) ([]domain.User, error)
	GetPageFunc  func(ctx context.Context, q postgres.Querier, p domain.Pageable) (domain.Page[domain.User], error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Q   postgres.Querier
			Id  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			Q   postgres.Querier
			Ids []uuid.UUID
		}
		GetPage []struct {
			Ctx context.Context
			Q   postgres.Querier
			P   domain.Pageable
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
	lockGetPage  sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, q postgres.Querier, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  uuid.UUID
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, q postgres.Querier, ids []uuid.UUID) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but userRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   postgres.Querier
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Q:   q,
		Ids: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, q, ids)
}

func (mock *userRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		Ids []uuid.UUID
	}
	mock.lockGetByIDs.RLock()
	calls = mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *userRepoMock) GetPage(ctx context.Context, q postgres.Querier, p domain.Pageable) (domain.Page[domain.User], error) {
	if mock.GetPageFunc == nil {
		panic("userRepoMock.GetPageFunc: method is nil but userRepo.GetPage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   postgres.Querier
		P   domain.Pageable
	}{
		Ctx: ctx,
		Q:   q,
		P:   p,
	}
	mock.lockGetPage.Lock()
	mock.calls.GetPage = append(mock.calls.GetPage, callInfo)
	mock.lockGetPage.Unlock()
	return mock.GetPageFunc(ctx, q, p)
}

func (mock *userRepoMock) GetPageCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	P   domain.Pageable
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		P   domain.Pageable
	}
	mock.lockGetPage.RLock()
	calls = mock.calls.GetPage
	mock.lockGetPage.RUnlock()
	return calls
}
