package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"users", "items"}

var sampleTasks = []string{
	"Write the release notes",
	"Review open pull requests",
	"Rotate the staging database password",
	"Book the team retrospective",
	"Update the onboarding checklist",
	"Triage new bug reports",
	"Renew the TLS certificate",
	"Clean up stale feature branches",
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	store   Store
	cfg     Config
	users   map[string]domain.User
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store Store, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		store:   store,
		cfg:     cfg,
		users:   make(map[string]domain.User),
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Users returns the users seeded or found during the run, in config order.
func (p *Pipeline) Users() []domain.User {
	out := make([]domain.User, 0, len(p.users))
	for _, login := range p.cfg.Logins {
		if u, ok := p.users[login]; ok {
			out = append(out, u)
		}
	}
	return out
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
				delete(filter, ph)
			}
		}
		for ph := range filter {
			return fmt.Errorf("unknown phase %q", ph)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "items":
			result = p.runItems(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runUsers creates every configured login that does not exist yet.
func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	var result PhaseResult
	for _, login := range p.cfg.Logins {
		existing, err := p.store.UserByLogin(ctx, login)
		switch {
		case err == nil:
			p.users[login] = *existing
			result.Skipped++
			continue
		case !errors.Is(err, domain.ErrNotFound):
			return PhaseResult{Err: fmt.Errorf("lookup user %q: %w", login, err)}
		}

		if p.cfg.DryRun {
			result.Skipped++
			continue
		}

		created, err := p.store.CreateUser(ctx, domain.User{
			ID:    uuid.New(),
			Login: login,
			Email: login + "@localhost",
		})
		if err != nil {
			p.log.Warn("create user failed", slog.String("login", login), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		p.users[login] = *created
		result.Inserted++
	}
	return result
}

// runItems creates ItemsPerUser items for each known user plus UnownedItems
// items without an owner.
func (p *Pipeline) runItems(ctx context.Context) PhaseResult {
	var result PhaseResult
	var items []domain.ToDoItem

	for _, login := range p.cfg.Logins {
		u, ok := p.users[login]
		if !ok {
			found, err := p.store.UserByLogin(ctx, login)
			if errors.Is(err, domain.ErrNotFound) {
				p.log.Debug("user not seeded, skipping its items", slog.String("login", login))
				result.Skipped += p.cfg.ItemsPerUser
				continue
			}
			if err != nil {
				return PhaseResult{Err: fmt.Errorf("lookup user %q: %w", login, err)}
			}
			u = *found
			p.users[login] = u
		}
		for range p.cfg.ItemsPerUser {
			items = append(items, sampleItem(len(items), &u.ID))
		}
	}
	for range p.cfg.UnownedItems {
		items = append(items, sampleItem(len(items), nil))
	}

	if p.cfg.DryRun {
		result.Skipped += len(items)
		return result
	}

	inserted, err := batchProcess(items, p.cfg.BatchSize, func(batch []domain.ToDoItem) (int, error) {
		return p.store.SaveItems(ctx, batch)
	})
	result.Inserted = inserted
	if err != nil {
		result.Err = fmt.Errorf("save items: %w", err)
	}
	return result
}

func sampleItem(n int, owner *uuid.UUID) domain.ToDoItem {
	desc := sampleTasks[n%len(sampleTasks)]
	return domain.ToDoItem{
		Description: &desc,
		Status:      domain.ItemStatuses[n%len(domain.ItemStatuses)],
		UserID:      owner,
	}
}

func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
