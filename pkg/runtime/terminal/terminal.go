package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/spend-atlas/pkg/models/domain"
	"github.com/de-tools/spend-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/spend-atlas/pkg/services/analysis"
	"github.com/de-tools/spend-atlas/pkg/services/expense"
	"github.com/de-tools/spend-atlas/pkg/store/sqlite"
	expensestore "github.com/de-tools/spend-atlas/pkg/store/sqlite/expense"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spend-atlas",
		Short: "Spending pattern analysis tool",
	}

	cmd.AddCommand(cli.newAnalyzeCmd())

	return cmd
}

type analyzeCmd struct {
	dbPath       string
	settingsPath string
	userID       string
	days         int
	format       string
	output       io.Writer
	reporter     *Reporter
}

func (cli *CLI) newAnalyzeCmd() *cobra.Command {
	ac := &analyzeCmd{reporter: cli.reporter, output: cli.output}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a user's spending patterns",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.dbPath, "db", "spend-atlas.db", "Path to the expenses database")
	cmd.Flags().StringVar(&ac.settingsPath, "config", "", "Path to an analysis settings file")
	cmd.Flags().StringVar(&ac.userID, "user", "", "User whose expenses to analyze")
	cmd.Flags().IntVar(&ac.days, "days", 90, "Trailing window in days (minimum 30)")
	cmd.Flags().StringVar(&ac.format, "format", "text", "Output format: text or json")

	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func (ac *analyzeCmd) run(cmd *cobra.Command, _ []string) error {
	if ac.days < 30 {
		return fmt.Errorf("analysis window must cover at least 30 days, got %d", ac.days)
	}

	settings := analysis.DefaultSettings()
	if ac.settingsPath != "" {
		loaded, err := analysis.LoadSettings(ac.settingsPath)
		if err != nil {
			return err
		}
		settings = loaded
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ac.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open expense database: %w", err)
	}
	defer db.Close()

	store, err := expensestore.NewStore(db)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	window := domain.AnalysisWindow{
		Start: time.Now().AddDate(0, 0, -ac.days),
		Days:  ac.days,
	}

	records, err := expense.NewService(store).GetRecordsSince(ctx, ac.userID, window.Start)
	if err != nil {
		return err
	}

	report, err := analysis.NewEngine(settings, nil).Analyze(records, window)
	if err != nil {
		return err
	}

	if ac.format == "json" {
		return export.NewReporter(ac.output).Handle(&report)
	}
	return ac.reporter.Handle(&report)
}
