// Package report exports confirmed records as a semicolon-separated CSV
// file covering a creation-date range.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
)

// DateFormat is used both in report file names and inside report rows.
const DateFormat = "02-01-2006"

const headerLine = "Номер справи;ПІБ зниклого;Дата народження зниклого;Речі для отримання ДНК;Чи додано до бази ДНК;ПІБ родича;Коментар;Дата подання даних\n"

// RecordLister reads the records for a creation-date range. Implemented by
// repositories.HeroRecordRepository.
type RecordLister interface {
	ListByCreatedRange(ctx context.Context, from, to time.Time) ([]models.HeroRecord, error)
}

type Generator struct {
	records RecordLister
	// outDir is where report files are written; defaults to the OS temp dir.
	outDir string
}

func NewGenerator(records RecordLister, outDir string) *Generator {
	if outDir == "" {
		outDir = os.TempDir()
	}
	return &Generator{
		records: records,
		outDir:  outDir,
	}
}

// Generate writes the report for [startDate, endDate] and returns the file
// path. The range covers whole days: from midnight of startDate to the last
// instant of endDate. The caller owns the file and must delete it.
func (g *Generator) Generate(ctx context.Context, startDate, endDate time.Time) (string, error) {
	from := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	to := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), endDate.Location())

	records, err := g.records.ListByCreatedRange(ctx, from, to)
	if err != nil {
		return "", errors.Wrap(err, "list records")
	}

	fileName := fmt.Sprintf("%s_%s.csv", startDate.Format(DateFormat), endDate.Format(DateFormat))
	path := filepath.Join(g.outDir, fileName)
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create report file")
	}
	defer func() { _ = file.Close() }()

	if _, err = file.WriteString(headerLine); err != nil {
		return "", errors.Wrap(err, "write report header")
	}
	for _, record := range records {
		if _, err = file.WriteString(formatRow(record)); err != nil {
			return "", errors.Wrap(err, "write report row")
		}
	}
	return path, nil
}

func formatRow(record models.HeroRecord) string {
	heroFullName := fmt.Sprintf("%s %s %s", record.HeroLastName, record.HeroFirstName, record.HeroPatronymic)
	relativeFullName := fmt.Sprintf("%s %s %s", record.RelativeLastName, record.RelativeFirstName, record.RelativePatronymic)
	isAddedToDNADB := "Ні"
	if record.IsAddedToDNADB {
		isAddedToDNADB = "Так"
	}
	fields := []string{
		fmt.Sprintf("%d", record.CaseID),
		heroFullName,
		record.HeroDateOfBirth.Format(DateFormat),
		record.ItemUsedForDNAExtraction,
		isAddedToDNADB,
		relativeFullName,
		record.Comment,
		record.CreatedAt.Format(DateFormat),
	}
	return strings.Join(fields, ";") + "\n"
}
