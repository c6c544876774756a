// Package commands implements the frent terminal client.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"frent-client/cmd/frent/output"
	"frent-client/internal/app"
	"frent-client/internal/cache"
	"frent-client/internal/config"
	apperrors "frent-client/internal/errors"
	"frent-client/internal/logger"
	"frent-client/pkg/auth"

	"github.com/spf13/cobra"
)

// env is the state shared by every command of one invocation.
type env struct {
	out     io.Writer
	verbose bool
	asJSON  bool

	app   *app.App
	guard *auth.Guard
	print *output.Printer
}

// NewRootCommand builds the command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	e := &env{out: out}

	root := &cobra.Command{
		Use:   "frent",
		Short: "frent - rent movies from the terminal",
		Long: `frent talks to the frent movie rental service.

Log in once; the session token is kept between runs until it expires
or you log out.

Examples:
  frent login --email jdoe@example.com
  frent movies search heat
  frent cart add 657a1f77bcf86cd799439011
  frent cart rent`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.RunE == nil {
				return nil // help and command groups
			}
			if err := e.setup(cmd.Context()); err != nil {
				e.close()
				return err
			}
			return nil
		},
	}
	root.SetOut(out)

	// Global flags
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().BoolVar(&e.asJSON, "json", false, "Output in JSON format")

	root.AddCommand(
		newLoginCmd(e),
		newLogoutCmd(e),
		newWhoamiCmd(e),
		newRegisterCmd(e),
		newMoviesCmd(e),
		newCartCmd(e),
		newWishlistCmd(e),
		newRentalsCmd(e),
		newHistoryCmd(e),
		newAdminCmd(e),
	)

	// Wrap every RunE so resources are released on all paths.
	wrapRun(root, e)

	return root
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

func wrapRun(cmd *cobra.Command, e *env) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			defer e.close()
			return run(cmd, args)
		}
	}
	for _, child := range cmd.Commands() {
		wrapRun(child, e)
	}
}

func (e *env) setup(ctx context.Context) error {
	cfg := config.Load()

	level := "warn"
	if e.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Format: "text", Output: os.Stderr})
	if err != nil {
		return err
	}

	a, err := app.New(cfg, log, app.Options{})
	if err != nil {
		return err
	}
	e.app = a
	e.print = output.New(e.out, e.asJSON)

	store, err := e.tokenStore(cfg)
	if err != nil {
		return err
	}
	e.guard = auth.NewGuard(store)
	e.guard.OnInvalidate(func(username string) {
		if username != "" {
			a.Views.InvalidateAll(context.WithoutCancel(ctx), username)
		}
	})

	return e.guard.Restore(ctx)
}

func (e *env) tokenStore(cfg *config.Config) (auth.TokenStore, error) {
	switch cfg.TokenStore {
	case "redis":
		if cfg.RedisURI == "" {
			return nil, errors.New("TOKEN_STORE=redis requires REDIS_URI")
		}
		owner := os.Getenv("USER")
		if owner == "" {
			owner = "default"
		}
		return cache.NewTokenStore(e.app.Cache, owner, 0), nil
	case "", "file":
		return auth.NewFileStore(cfg.TokenFile)
	default:
		return nil, fmt.Errorf("unknown TOKEN_STORE %q", cfg.TokenStore)
	}
}

func (e *env) close() {
	if e.app != nil {
		e.app.Close()
		e.app = nil
	}
}

// session returns the live session, or a hint to log in.
func (e *env) session(ctx context.Context) (*auth.Session, error) {
	sess, err := e.guard.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w, run `frent login` first", err)
	}
	return sess, nil
}

// describe turns a failed command into one line for stderr.
func describe(err error) string {
	var partial *apperrors.PartialFailureError
	switch {
	case errors.As(err, &partial):
		return fmt.Sprintf("%s only partly completed (%d step(s) applied, %d failed). Check `frent cart list` and `frent rentals list` before retrying.",
			partial.Saga, len(partial.Committed), len(partial.Failed))
	case errors.Is(err, apperrors.ErrForbidden):
		return "you are not allowed to do that"
	default:
		return "error: " + apperrors.Message(err)
	}
}
