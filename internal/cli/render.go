package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Guadalsistema/go-sqltemplate"
	"github.com/Guadalsistema/go-sqltemplate/internal/argfile"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var (
		query    string
		argsFile string
	)

	cmd := &cobra.Command{
		Use:   "render [template-file]",
		Short: "Render a query template",
		Long: `Render a query template with arguments read from a YAML or JSON file.

The template is taken from --query, from the file argument, or from
standard input when the file is "-". The arguments file holds a sequence
with one item per placeholder; tag an item !omit to drop its block.`,
		Example: `  # Render an inline template
  sqltemplate render -q 'SELECT * FROM t WHERE id = ?d' --args args.yaml

  # Render a template file with arguments from stdin
  printf -- '- 5\n- !omit\n' | sqltemplate render query.sql --args -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := readTemplate(cmd, query, args)
			if err != nil {
				return err
			}
			return runRender(cmd, template, argsFile)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Template text")
	cmd.Flags().StringVarP(&argsFile, "args", "a", "", `Arguments file (YAML or JSON, "-" for stdin)`)

	return cmd
}

func readTemplate(cmd *cobra.Command, query string, args []string) (string, error) {
	switch {
	case query != "" && len(args) > 0:
		return "", fmt.Errorf("use either --query or a template file, not both")
	case query != "":
		return query, nil
	case len(args) == 0:
		return "", fmt.Errorf("a template is required")
	case args[0] == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read template: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	default:
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read template: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	}
}

func runRender(cmd *cobra.Command, template, argsFile string) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	var values []any
	if argsFile != "" {
		if argsFile == "-" {
			values, err = argfile.Decode(cmd.InOrStdin())
		} else {
			values, err = argfile.ReadFile(argsFile)
		}
		if err != nil {
			return err
		}
	}

	logger.Debug("rendering template",
		slog.Int("bytes", len(template)),
		slog.Int("args", len(values)),
		slog.String("booleans", opts.Booleans.String()),
		slog.Bool("strict", opts.Strict),
	)

	out, err := sqltemplate.New(opts).Render(template, values...)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
