// Command todoctl is a terminal client for the to-do item API.
//
// Connection settings come from TODO_API_URL, TODO_API_TOKEN and
// TODO_API_TIMEOUT; the --url and --token flags override them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/config"
)

var Version = "dev"

type cli struct {
	out     io.Writer
	errOut  io.Writer
	url     string
	token   string
	asJSON  bool
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "todoctl",
		Short:         "Manage to-do items from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&c.url, "url", "", "API base URL (overrides TODO_API_URL)")
	root.PersistentFlags().StringVar(&c.token, "token", "", "bearer token (overrides TODO_API_TOKEN)")
	root.PersistentFlags().BoolVarP(&c.asJSON, "json", "j", false, "print JSON instead of a table")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		c.listCmd(),
		c.getCmd(),
		c.createCmd(),
		c.updateCmd(),
		c.patchCmd(),
		c.deleteCmd(),
		c.usersCmd(),
		c.accountCmd(),
		c.tuiCmd(),
	)
	return root
}

func (c *cli) logger() *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: level}))
}

func (c *cli) client() (*client.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if c.url != "" {
		cfg.APIURL = c.url
	}
	if c.token != "" {
		cfg.Token = c.token
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return client.New(*cfg, c.logger()), nil
}
