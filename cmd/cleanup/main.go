// Command cleanup deletes Done to-do items that have not changed for the
// retention period (cleanup.done_retention_days). Run it from cron.
//
// Flags:
//
//	--dry-run         count the items that would be deleted
//	--retention-days  override the configured retention
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/adapter/postgres/todoitem"
	"github.com/heartmarshall/todo-backend/internal/app"
	"github.com/heartmarshall/todo-backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "count the items that would be deleted")
	retention := flag.Int("retention-days", 0, "override cleanup.done_retention_days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cleanup: %v", err)
	}
	if *retention > 0 {
		cfg.Cleanup.DoneRetentionDays = *retention
	}

	logger := app.NewLogger(cfg.Log, "cleanup")
	if err := run(logger, cfg, *dryRun); err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, dryRun bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.App.Name+"-cleanup")
	if err != nil {
		return err
	}
	defer pool.Close()

	items := todoitem.New()
	threshold := time.Now().AddDate(0, 0, -cfg.Cleanup.DoneRetentionDays)
	logger = logger.With(
		slog.Time("threshold", threshold),
		slog.Int("retention_days", cfg.Cleanup.DoneRetentionDays),
	)

	if dryRun {
		n, err := items.CountDone(ctx, pool, threshold)
		if err != nil {
			return err
		}
		logger.Info("dry run: done items eligible for deletion", slog.Int64("count", n))
		return nil
	}

	n, err := items.PurgeDone(ctx, pool, threshold)
	if err != nil {
		return err
	}
	logger.Info("done items deleted", slog.Int64("deleted", n))
	return nil
}
