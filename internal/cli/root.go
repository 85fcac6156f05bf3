// Package cli provides the command-line interface for sqltemplate.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Guadalsistema/go-sqltemplate/internal/cli/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type configKey struct{}

type loggerKey struct{}

// Option customizes the root command.
type Option func(*rootOptions)

type rootOptions struct {
	logger *slog.Logger
}

// WithLogger makes every command log to logger instead of a text handler on
// stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(o *rootOptions) { o.logger = logger }
}

// NewRootCmd creates and returns the root command.
func NewRootCmd(opts ...Option) *cobra.Command {
	var o rootOptions
	for _, opt := range opts {
		opt(&o)
	}

	var cfgFile string
	rootCmd := &cobra.Command{
		Use:   "sqltemplate",
		Short: "Render parameterized query templates",
		Long: `sqltemplate renders query templates with typed placeholders
(?, ?d, ?f, ?a, ?#) and conditional {blocks} into final query text.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := o.logger
			if logger == nil {
				logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			}
			if cfg.File != "" {
				logger.Debug("using config file", slog.String("path", cfg.File))
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().String("booleans", "", "Boolean style (numeric|legacy)")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject unused arguments")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("booleans", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"numeric", "legacy"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewRenderCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{Booleans: "numeric"}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
