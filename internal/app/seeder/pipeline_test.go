package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// mockStore records calls to verify pipeline behavior.
type mockStore struct {
	mu sync.Mutex

	users   map[string]domain.User
	items   []domain.ToDoItem
	batches int

	lookupErr     error
	createUserErr map[string]error
	saveItemsErr  error

	callLog []string
}

func newMockStore() *mockStore {
	return &mockStore{
		users:         make(map[string]domain.User),
		createUserErr: make(map[string]error),
	}
}

func (m *mockStore) logCall(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = append(m.callLog, name)
}

func (m *mockStore) UserByLogin(_ context.Context, login string) (*domain.User, error) {
	m.logCall("UserByLogin")
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[login]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m *mockStore) CreateUser(_ context.Context, u domain.User) (*domain.User, error) {
	m.logCall("CreateUser")
	if err := m.createUserErr[u.Login]; err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Login] = u
	return &u, nil
}

func (m *mockStore) SaveItems(_ context.Context, items []domain.ToDoItem) (int, error) {
	m.logCall("SaveItems")
	if m.saveItemsErr != nil {
		return 0, m.saveItemsErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
	m.batches++
	return len(items), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestPipeline_SeedsUsersAndItems(t *testing.T) {
	store := newMockStore()
	cfg := Config{Logins: []string{"alice", "bob"}, ItemsPerUser: 3, UnownedItems: 2, BatchSize: 4}

	p := NewPipeline(testLogger(), store, cfg)
	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HasErrors() {
		t.Fatalf("unexpected phase errors: %+v", p.Results())
	}

	if got := p.Results()["users"].Inserted; got != 2 {
		t.Errorf("expected 2 users inserted, got %d", got)
	}
	if got := p.Results()["items"].Inserted; got != 8 {
		t.Errorf("expected 8 items inserted, got %d", got)
	}
	if store.batches != 2 {
		t.Errorf("expected 2 batches, got %d", store.batches)
	}

	owned := make(map[uuid.UUID]int)
	unowned := 0
	for _, item := range store.items {
		if !item.IsNew() {
			t.Errorf("seeded item must not carry an id, got %d", item.ID)
		}
		if !item.Status.IsValid() {
			t.Errorf("invalid status %q", item.Status)
		}
		if item.UserID == nil {
			unowned++
			continue
		}
		owned[*item.UserID]++
	}
	if unowned != 2 {
		t.Errorf("expected 2 unowned items, got %d", unowned)
	}
	for _, login := range cfg.Logins {
		if n := owned[store.users[login].ID]; n != 3 {
			t.Errorf("expected 3 items for %s, got %d", login, n)
		}
	}

	users := p.Users()
	if len(users) != 2 || users[0].Login != "alice" || users[1].Login != "bob" {
		t.Errorf("expected users in config order, got %+v", users)
	}
}

func TestPipeline_ExistingUsersAreReused(t *testing.T) {
	store := newMockStore()
	alice := domain.User{ID: uuid.New(), Login: "alice"}
	store.users["alice"] = alice

	p := NewPipeline(testLogger(), store, Config{Logins: []string{"alice"}, ItemsPerUser: 1})
	if err := p.Run(context.Background(), []string{"users"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := p.Results()["users"]
	if res.Inserted != 0 || res.Skipped != 1 {
		t.Errorf("expected 0 inserted and 1 skipped, got %+v", res)
	}
	for _, call := range store.callLog {
		if call == "CreateUser" {
			t.Error("CreateUser must not be called for an existing login")
		}
	}
	if got := p.Users(); len(got) != 1 || got[0].ID != alice.ID {
		t.Errorf("expected existing alice, got %+v", got)
	}
}

func TestPipeline_DryRunNoStoreWrites(t *testing.T) {
	store := newMockStore()
	cfg := Config{Logins: []string{"alice"}, ItemsPerUser: 2, UnownedItems: 1, DryRun: true}

	p := NewPipeline(testLogger(), store, cfg)
	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, call := range store.callLog {
		if call == "CreateUser" || call == "SaveItems" {
			t.Errorf("unexpected write %s in dry run", call)
		}
	}
	// alice was never created, so only the unowned item is counted.
	if got := p.Results()["items"].Skipped; got != 3 {
		t.Errorf("expected 3 skipped items, got %d", got)
	}
}

func TestPipeline_ErrorIsolation(t *testing.T) {
	store := newMockStore()
	store.createUserErr["bob"] = errors.New("duplicate login")

	cfg := Config{Logins: []string{"alice", "bob"}, ItemsPerUser: 1}
	p := NewPipeline(testLogger(), store, cfg)
	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
	if got := p.Results()["users"].Errors; got != 1 {
		t.Errorf("expected 1 user error, got %d", got)
	}
	// items still run for alice; bob is skipped.
	items := p.Results()["items"]
	if items.Inserted != 1 || items.Skipped != 1 {
		t.Errorf("expected 1 inserted and 1 skipped item, got %+v", items)
	}
}

func TestPipeline_LookupFailureFailsPhase(t *testing.T) {
	store := newMockStore()
	store.lookupErr = errors.New("connection refused")

	p := NewPipeline(testLogger(), store, Config{Logins: []string{"alice"}})
	if err := p.Run(context.Background(), []string{"users"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Results()["users"].Err == nil {
		t.Error("expected users phase error")
	}
}

func TestPipeline_SaveItemsError(t *testing.T) {
	store := newMockStore()
	store.saveItemsErr = errors.New("tx aborted")

	p := NewPipeline(testLogger(), store, Config{UnownedItems: 2})
	if err := p.Run(context.Background(), []string{"items"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := p.Results()["items"]
	if res.Err == nil {
		t.Fatal("expected items phase error")
	}
	if res.Inserted != 0 {
		t.Errorf("expected 0 inserted, got %d", res.Inserted)
	}
}

func TestPipeline_PhaseFilter(t *testing.T) {
	store := newMockStore()
	p := NewPipeline(testLogger(), store, Config{Logins: []string{"alice"}, ItemsPerUser: 1})

	if err := p.Run(context.Background(), []string{"items"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.Results()["users"]; ok {
		t.Error("users phase should not have run")
	}
	// alice does not exist and the users phase was filtered out.
	if got := p.Results()["items"].Skipped; got != 1 {
		t.Errorf("expected 1 skipped item, got %d", got)
	}
}

func TestPipeline_UnknownPhase(t *testing.T) {
	p := NewPipeline(testLogger(), newMockStore(), Config{})
	if err := p.Run(context.Background(), []string{"cards"}); err == nil {
		t.Fatal("expected error for unknown phase")
	}
}

func TestPipeline_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(testLogger(), newMockStore(), Config{Logins: []string{"alice"}})
	if err := p.Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBatchProcess(t *testing.T) {
	items := make([]int, 7)
	for i := range items {
		items[i] = i
	}

	var batches [][]int
	total, err := batchProcess(items, 3, func(batch []int) (int, error) {
		batches = append(batches, batch)
		return len(batch), nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 7 {
		t.Errorf("expected total 7, got %d", total)
	}
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	if len(batches[0]) != 3 {
		t.Errorf("expected first batch size 3, got %d", len(batches[0]))
	}
	if len(batches[2]) != 1 {
		t.Errorf("expected last batch size 1, got %d", len(batches[2]))
	}
}

func TestBatchProcess_EmptySlice(t *testing.T) {
	total, err := batchProcess([]int{}, 10, func(batch []int) (int, error) {
		t.Fatal("should not be called for empty input")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0, got %d", total)
	}
}

func TestBatchProcess_ErrorStops(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	callCount := 0
	total, err := batchProcess(items, 2, func(batch []int) (int, error) {
		callCount++
		if callCount == 2 {
			return 0, fmt.Errorf("batch error")
		}
		return len(batch), nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if callCount != 2 {
		t.Errorf("expected 2 calls before error, got %d", callCount)
	}
	if total != 2 {
		t.Errorf("expected 2 items saved before error, got %d", total)
	}
}
