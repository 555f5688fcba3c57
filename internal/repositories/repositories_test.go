package repositories_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/repositories"
	"github.com/ARROM2405/hero-search-bot/internal/sqlite"
	"github.com/ARROM2405/hero-search-bot/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *sqlite.Database {
	t.Helper()
	db, err := sqlite.NewDatabase(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func testRecord(authorID int64, createdAt time.Time) models.HeroRecord {
	return models.HeroRecord{
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
		CreatedAt:                createdAt,
		AuthorID:                 authorID,
	}
}

func TestAuthorRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewAuthorRepository(db, testhelpers.NewLogger(io.Discard))

	created, err := repo.GetOrCreate(ctx, models.Author{
		TelegramID: 100,
		Username:   "taras",
		FirstName:  "Тарас",
		LastName:   "Шевченко",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "taras", created.Username)

	// A second call with different profile fields returns the existing row
	// untouched.
	again, err := repo.GetOrCreate(ctx, models.Author{
		TelegramID: 100,
		Username:   "renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, created, again)

	other, err := repo.GetOrCreate(ctx, models.Author{TelegramID: 200})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestHeroRecordRepository_CreateAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	logger := testhelpers.NewLogger(io.Discard)
	authors := repositories.NewAuthorRepository(db, logger)
	records := repositories.NewHeroRecordRepository(db, logger)

	author, err := authors.GetOrCreate(ctx, models.Author{TelegramID: 100, Username: "taras"})
	require.NoError(t, err)

	first := time.Date(2023, time.August, 10, 12, 0, 0, 0, time.UTC)
	second := time.Date(2023, time.August, 20, 12, 0, 0, 0, time.UTC)
	outside := time.Date(2023, time.September, 5, 12, 0, 0, 0, time.UTC)
	for _, createdAt := range []time.Time{first, second, outside} {
		var id int64
		id, err = records.Create(ctx, testRecord(author.ID, createdAt))
		require.NoError(t, err)
		assert.NotZero(t, id)
	}

	from := time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.August, 31, 23, 59, 59, 0, time.UTC)
	listed, err := records.ListByCreatedRange(ctx, from, to)
	require.NoError(t, err)

	require.Len(t, listed, 2, "records outside the range are excluded")
	// Newest first.
	assert.WithinDuration(t, second, listed[0].CreatedAt, time.Second)
	assert.WithinDuration(t, first, listed[1].CreatedAt, time.Second)
	got := listed[0]
	assert.Equal(t, int64(42), got.CaseID)
	assert.Equal(t, "Шевченко", got.HeroLastName)
	assert.WithinDuration(t, time.Date(1814, time.March, 9, 0, 0, 0, 0, time.UTC), got.HeroDateOfBirth, time.Second)
	assert.True(t, got.IsAddedToDNADB)
	assert.Equal(t, author.ID, got.AuthorID)
}

func TestHeroRecordRepository_ListEmptyRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	records := repositories.NewHeroRecordRepository(db, testhelpers.NewLogger(io.Discard))

	listed, err := records.ListByCreatedRange(ctx,
		time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.August, 31, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestAuditRepository_RecordMembershipChange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewAuditRepository(db, testhelpers.NewLogger(io.Discard))

	err := repo.RecordMembershipChange(ctx, models.MembershipChange{
		ChatID:   -200,
		ChatKind: models.ChatGroup,
		Sender:   models.Sender{ID: 100},
		Action:   models.BotRemoved,
	})
	require.NoError(t, err)

	var entries []struct {
		TelegramID int64  `db:"telegram_id"`
		ChatID     int64  `db:"chat_id"`
		ChatKind   string `db:"chat_kind"`
		Action     string `db:"action"`
	}
	stmt := `SELECT telegram_id, chat_id, chat_kind, action FROM membership_audit`
	require.NoError(t, db.ReadOnly.SelectContext(ctx, &entries, stmt))
	require.Len(t, entries, 1)
	assert.Equal(t, int64(100), entries[0].TelegramID)
	assert.Equal(t, int64(-200), entries[0].ChatID)
	assert.Equal(t, string(models.ChatGroup), entries[0].ChatKind)
	assert.Equal(t, string(models.BotRemoved), entries[0].Action)
}
