package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/sqlite"
)

type HeroRecordRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewHeroRecordRepository(dbs *sqlite.Database, logger *slog.Logger) *HeroRecordRepository {
	return &HeroRecordRepository{
		dbs:    dbs,
		logger: logger.With("source", "HeroRecordRepository"),
	}
}

// Create persists a confirmed record and returns its id.
func (r *HeroRecordRepository) Create(ctx context.Context, record models.HeroRecord) (int64, error) {
	stmt := `INSERT INTO hero_records (case_id,
                          hero_last_name,
                          hero_first_name,
                          hero_patronymic,
                          hero_date_of_birth,
                          item_used_for_dna_extraction,
                          relative_last_name,
                          relative_first_name,
                          relative_patronymic,
                          is_added_to_dna_db,
                          comment,
                          created_at,
                          author_id)
	VALUES (:case_id, :hero_last_name, :hero_first_name, :hero_patronymic, :hero_date_of_birth,
	        :item_used_for_dna_extraction, :relative_last_name, :relative_first_name,
	        :relative_patronymic, :is_added_to_dna_db, :comment, :created_at, :author_id)`
	result, err := r.dbs.ReadWrite.NamedExecContext(ctx, stmt, record)
	if err != nil {
		return 0, errors.Wrap(err, "insert hero record")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "read insert id")
	}
	return id, nil
}

// ListByCreatedRange returns records created between from and to inclusive,
// newest first.
func (r *HeroRecordRepository) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]models.HeroRecord, error) {
	var records []models.HeroRecord
	stmt := `SELECT id,
       case_id,
       hero_last_name,
       hero_first_name,
       hero_patronymic,
       hero_date_of_birth,
       item_used_for_dna_extraction,
       relative_last_name,
       relative_first_name,
       relative_patronymic,
       is_added_to_dna_db,
       comment,
       created_at,
       author_id
	FROM hero_records
	WHERE created_at BETWEEN ? AND ?
	ORDER BY created_at DESC`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &records, stmt, from, to); err != nil {
		return nil, errors.Wrap(err, "select hero records")
	}
	return records, nil
}
