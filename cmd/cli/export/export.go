package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/report"
	"github.com/ARROM2405/hero-search-bot/internal/repositories"
	"github.com/ARROM2405/hero-search-bot/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "export",
	Title: "Report export operations",
}

func init() {
	Report.Flags().String("sqlite-url", "./hero-search-bot.sqlite", "SQLite URL")
	Report.Flags().String("out", ".", "directory for the generated report file")
}

var Report = &cobra.Command{
	Use:     "report <DD-MM-YYYY> <DD-MM-YYYY>",
	GroupID: "export",
	Short:   "Export confirmed records as CSV",
	Long:    `Exports the confirmed records created within the given date range as a semicolon-separated CSV file.`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		startDate, err := time.Parse(report.DateFormat, args[0])
		if err != nil {
			return fmt.Errorf("parse start date %q: %w", args[0], err)
		}
		endDate, err := time.Parse(report.DateFormat, args[1])
		if err != nil {
			return fmt.Errorf("parse end date %q: %w", args[1], err)
		}

		sqliteURL, err := cmd.Flags().GetString("sqlite-url")
		if err != nil {
			return err
		}
		outDir, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		db, err := sqlite.NewDatabase(cmd.Context(), sqliteURL, logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer func() { _ = db.Close() }()

		records := repositories.NewHeroRecordRepository(db, logger)
		generator := report.NewGenerator(records, outDir)
		path, err := generator.Generate(cmd.Context(), startDate, endDate)
		if err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
		cmd.Println(path)
		return nil
	},
}
