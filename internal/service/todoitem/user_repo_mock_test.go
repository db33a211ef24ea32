package todoitem

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ExistsByIDFunc func(ctx context.Context, q postgres.Querier, id uuid.UUID) (bool, error)

	calls struct {
		ExistsByID []struct {
			Ctx context.Context
			Q   postgres.Querier
			Id  uuid.UUID
		}
	}
	lockExistsByID sync.RWMutex
}

func (mock *userRepoMock) ExistsByID(ctx context.Context, q postgres.Querier, id uuid.UUID) (bool, error) {
	if mock.ExistsByIDFunc == nil {
		panic("userRepoMock.ExistsByIDFunc: method is nil but userRepo.ExistsByID was just called")
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
	mock.lockExistsByID.Lock()
	mock.calls.ExistsByID = append(mock.calls.ExistsByID, callInfo)
	mock.lockExistsByID.Unlock()
	return mock.ExistsByIDFunc(ctx, q, id)
}

func (mock *userRepoMock) ExistsByIDCalls() []struct {
	Ctx context.Context
	Q   postgres.Querier
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Q   postgres.Querier
		Id  uuid.UUID
	}
	mock.lockExistsByID.RLock()
	calls = mock.calls.ExistsByID
	mock.lockExistsByID.RUnlock()
	return calls
}
