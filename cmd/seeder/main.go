// Command seeder fills a development database with users and to-do items
// and prints a bearer token for every seeded user.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        report what would be written without touching the DB
//	--seeder-config  path to seeder YAML config file
//	--token-ttl      lifetime of the printed tokens (default: 24h)
//
// Exit codes: 0 = success, 1 = error, 2 = some phases failed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/app"
	"github.com/heartmarshall/todo-backend/internal/app/seeder"
	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

var errPartial = errors.New("pipeline completed with errors")

type options struct {
	phases   []string
	dryRun   bool
	cfgPath  string
	tokenTTL time.Duration
}

func main() {
	var opts options
	phase := flag.String("phase", "", "comma-separated phases to run (default: all)")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "report what would be written without touching the DB")
	flag.StringVar(&opts.cfgPath, "seeder-config", "", "path to seeder YAML config file")
	flag.DurationVar(&opts.tokenTTL, "token-ttl", 24*time.Hour, "lifetime of the printed bearer tokens")
	flag.Parse()
	opts.phases = splitPhases(*phase)

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("seeder: %v", err)
	}
	logger := app.NewLogger(appCfg.Log, "seeder")

	switch err := run(logger, appCfg, opts, os.Stdout); {
	case errors.Is(err, errPartial):
		logger.Warn(err.Error())
		os.Exit(2)
	case err != nil:
		logger.Error("seeder failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("pipeline completed successfully")
}

func run(logger *slog.Logger, appCfg *config.Config, opts options, out io.Writer) error {
	cfg, err := seeder.LoadConfig(opts.cfgPath)
	if err != nil {
		return err
	}
	if opts.dryRun {
		cfg.DryRun = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database, appCfg.App.Name+"-seeder")
	if err != nil {
		return err
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, seeder.NewDBStore(pool, postgres.NewTxManager(pool)), *cfg)
	if err := pipeline.Run(ctx, opts.phases); err != nil {
		return err
	}

	tokens := auth.NewJWTManager(appCfg.Auth.JWTSecret, appCfg.Auth.JWTIssuer, opts.tokenTTL)
	if err := printTokens(out, tokens, pipeline.Users()); err != nil {
		return err
	}

	if pipeline.HasErrors() {
		return errPartial
	}
	return nil
}

// printTokens writes tab-separated LOGIN, ID and TOKEN columns so the
// output can be piped into cut or a shell loop.
func printTokens(out io.Writer, tokens *auth.JWTManager, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}
	fmt.Fprintln(out, "LOGIN\tID\tTOKEN")
	for _, u := range users {
		token, err := tokens.GenerateAccessToken(u.ID)
		if err != nil {
			return fmt.Errorf("token for %s: %w", u.Login, err)
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", u.Login, u.ID, token)
	}
	return nil
}

func splitPhases(s string) []string {
	if s == "" {
		return nil
	}
	var phases []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			phases = append(phases, p)
		}
	}
	return phases
}
