package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/sqlite"
)

type AuthorRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewAuthorRepository(dbs *sqlite.Database, logger *slog.Logger) *AuthorRepository {
	return &AuthorRepository{
		dbs:    dbs,
		logger: logger.With("source", "AuthorRepository"),
	}
}

// GetOrCreate returns the author with the given Telegram id, creating it
// with the provided profile fields when none exists. Profile fields of an
// existing author are left untouched.
func (r *AuthorRepository) GetOrCreate(ctx context.Context, author models.Author) (models.Author, error) {
	var existing models.Author
	stmt := `SELECT id, telegram_id, username, first_name, last_name FROM authors WHERE telegram_id = ?`
	err := r.dbs.ReadOnly.GetContext(ctx, &existing, stmt, author.TelegramID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Author{}, errors.Wrap(err, "read author")
	}

	stmt = `INSERT INTO authors (telegram_id, username, first_name, last_name)
	VALUES (:telegram_id, :username, :first_name, :last_name)
	ON CONFLICT (telegram_id) DO NOTHING`
	if _, err = r.dbs.ReadWrite.NamedExecContext(ctx, stmt, author); err != nil {
		return models.Author{}, errors.Wrap(err, "insert author")
	}

	// Re-read instead of using the insert id so that a concurrent insert
	// resolved by the conflict clause still returns the winning row.
	stmt = `SELECT id, telegram_id, username, first_name, last_name FROM authors WHERE telegram_id = ?`
	if err = r.dbs.ReadOnly.GetContext(ctx, &existing, stmt, author.TelegramID); err != nil {
		return models.Author{}, errors.Wrap(err, "read author after insert")
	}
	return existing, nil
}
