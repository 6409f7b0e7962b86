package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yukikurage/demodb/internal/config"
	"github.com/yukikurage/demodb/internal/constants"
	"github.com/yukikurage/demodb/internal/generator"
	"github.com/yukikurage/demodb/internal/logger"
	"github.com/yukikurage/demodb/internal/schema"
)

// stdin is where the drop confirmation is read from.
var stdin = os.Stdin

type flags struct {
	verbose          bool
	output           string
	dataProvider     string
	connectionString string
	yesToAll         bool
	schema           string
	seed             uint64
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs dbgen with args and returns the process exit code. Any error
// is printed once to stderr.
func execute(args []string, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, color.RedString("Error: %v", err))
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "dbgen",
		Short: "Create and seed a demo database",
		Long: `dbgen creates the tables of a demo schema and fills them with fake data.

Schemas: ` + strings.Join(schema.Names(), ", ") + `

Without --connection-string a SQLite file <output>/<schema>.sqlite is used.
Existing tables are dropped after confirmation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}

	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug output and SQL statements")
	cmd.Flags().StringVarP(&f.output, "output", "o", ".", "directory for the SQLite file and the seed manifest")
	cmd.Flags().StringVar(&f.dataProvider, "data-provider", "sqlite", "database provider: sqlite, postgres or mysql")
	cmd.Flags().StringVar(&f.connectionString, "connection-string", "", "database connection string (required unless sqlite)")
	cmd.Flags().BoolVarP(&f.yesToAll, "yes-to-all", "y", false, "drop existing tables without asking")
	cmd.Flags().StringVar(&f.schema, "schema", constants.VariantJiraKiller, "schema to generate")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one)")

	return cmd
}

func run(ctx context.Context, f flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger.Init(config.LoggerConfig{Level: "warn"}, os.Stderr)
	if f.verbose {
		logger.SetLevel(slog.LevelDebug)
	}

	result, err := generator.Run(ctx, generator.Options{
		Schema:           f.schema,
		Provider:         f.dataProvider,
		ConnectionString: f.connectionString,
		Output:           f.output,
		YesToAll:         f.yesToAll,
		Verbose:          f.verbose,
		Seed:             f.seed,
		Confirm:          confirmDrop,
		Logger:           logger.WithComponent("dbgen"),
	})
	if err != nil {
		return err
	}

	if result.Declined {
		color.Yellow("Cancelled; existing tables were left untouched")
		if m, err := generator.ReadManifest(result.Manifest); err == nil {
			fmt.Printf("  %s seed %d, %d rows, generated %s\n",
				color.CyanString("current data:"), m.Seed, m.TotalRows, m.GeneratedAt.Format(time.RFC3339))
		}
		return nil
	}

	color.Green("✓ Generated %s database (%s)", result.Schema, result.Provider)
	if result.Target != "" {
		fmt.Printf("  %s %s\n", color.CyanString("target:"), result.Target)
	}
	for _, t := range result.Summary {
		fmt.Printf("  %-14s %s\n", t.Table, color.YellowString("%d", t.Rows))
	}
	fmt.Printf("  %s %d\n", color.CyanString("seed:"), result.Seed)
	fmt.Printf("  %s %s\n", color.CyanString("manifest:"), result.Manifest)
	return nil
}

func confirmDrop(tables []string) (bool, error) {
	if !term.IsTerminal(int(stdin.Fd())) {
		return false, generator.ErrConfirmationRequired
	}

	var ok bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Drop existing tables?").
			Description("These tables will be dropped and recreated: " + strings.Join(tables, ", ")).
			Affirmative("Drop").
			Negative("Cancel").
			Value(&ok),
	)).WithInput(stdin).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
