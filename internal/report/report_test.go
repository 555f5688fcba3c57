package report_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordListerStub struct {
	records []models.HeroRecord
	from    time.Time
	to      time.Time
	err     error
}

func (s *recordListerStub) ListByCreatedRange(_ context.Context, from, to time.Time) ([]models.HeroRecord, error) {
	s.from, s.to = from, to
	return s.records, s.err
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()
	lister := &recordListerStub{
		records: []models.HeroRecord{
			{
				CaseID:                   42,
				HeroLastName:             "Шевченко",
				HeroFirstName:            "Тарас",
				HeroPatronymic:           "Григорович",
				HeroDateOfBirth:          time.Date(1814, time.March, 9, 0, 0, 0, 0, time.UTC),
				ItemUsedForDNAExtraction: "гребінець",
				RelativeLastName:         "Шевченко",
				RelativeFirstName:        "Микита",
				RelativePatronymic:       "Григорович",
				IsAddedToDNADB:           true,
				Comment:                  "зразок передано",
				CreatedAt:                time.Date(2023, time.August, 15, 10, 30, 0, 0, time.UTC),
			},
			{
				CaseID:          7,
				HeroLastName:    "Сірко",
				HeroFirstName:   "Іван",
				HeroPatronymic:  "Дмитрович",
				HeroDateOfBirth: time.Date(1960, time.January, 2, 0, 0, 0, 0, time.UTC),
				CreatedAt:       time.Date(2023, time.August, 3, 9, 0, 0, 0, time.UTC),
			},
		},
	}
	generator := report.NewGenerator(lister, t.TempDir())

	path, err := generator.Generate(context.Background(),
		time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.August, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "01-08-2023_31-08-2023.csv"), path)
	// The requested range is widened to whole days.
	assert.Equal(t, time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC), lister.from)
	assert.Equal(t, 31, lister.to.Day())
	assert.Equal(t, 23, lister.to.Hour())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Номер справи;ПІБ зниклого;Дата народження зниклого;Речі для отримання ДНК;Чи додано до бази ДНК;ПІБ родича;Коментар;Дата подання даних", lines[0])
	assert.Equal(t, "42;Шевченко Тарас Григорович;09-03-1814;гребінець;Так;Шевченко Микита Григорович;зразок передано;15-08-2023", lines[1])
	assert.Equal(t, "7;Сірко Іван Дмитрович;02-01-1960;;Ні;  ;;03-08-2023", lines[2])
}

func TestGenerator_GenerateEmptyRange(t *testing.T) {
	t.Parallel()
	generator := report.NewGenerator(&recordListerStub{}, t.TempDir())

	path, err := generator.Generate(context.Background(),
		time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.August, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(raw), "\n"), "header only")
}

func TestGenerator_GenerateListError(t *testing.T) {
	t.Parallel()
	generator := report.NewGenerator(&recordListerStub{err: errors.New("database gone")}, t.TempDir())

	_, err := generator.Generate(context.Background(), time.Now(), time.Now())

	require.Error(t, err)
}
