// Package main is the entry point for the todolist service. The root command
// loads an optional .env file and resolves the configuration profile; the
// serve subcommand wires all dependencies using samber/do v2 and runs the HTTP
// server until SIGINT/SIGTERM, and the migrate subcommands manage the
// PostgreSQL schema.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	envFile   string
	configDir string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "todolist",
		Short:         "Todo list HTTP API",
		Long:          "todolist serves a JSON API for todos and accounts backed by an in-memory or PostgreSQL store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.resolve()
		},
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", "",
		"configuration profile (local, dev, prod); defaults to $APP_PROFILE")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env",
		"dotenv file loaded before configuration; skipped when missing")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile files")

	root.AddCommand(newServeCommand(opts))
	root.AddCommand(newMigrateCommand(opts))

	return root
}

// resolve loads the dotenv file and settles the profile.
func (o *rootOptions) resolve() error {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return err
	}

	profile, err := config.ResolveProfile(o.profile)
	if err != nil {
		return err
	}
	o.profile = profile
	return nil
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
