package repositories

import (
	"context"
	"log/slog"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/sqlite"
)

// AuditRepository records chat membership changes so that administrators can
// see where the bot was added and removed.
type AuditRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewAuditRepository(dbs *sqlite.Database, logger *slog.Logger) *AuditRepository {
	return &AuditRepository{
		dbs:    dbs,
		logger: logger.With("source", "AuditRepository"),
	}
}

func (r *AuditRepository) RecordMembershipChange(ctx context.Context, change models.MembershipChange) error {
	stmt := `INSERT INTO membership_audit (telegram_id, chat_id, chat_kind, action)
	VALUES (?, ?, ?, ?)`
	if _, err := r.dbs.ReadWrite.ExecContext(ctx, stmt,
		change.Sender.ID, change.ChatID, string(change.ChatKind), string(change.Action)); err != nil {
		return errors.Wrap(err, "insert membership audit entry")
	}
	return nil
}
